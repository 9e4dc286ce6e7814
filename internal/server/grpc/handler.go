package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/zkauth/internal/common"
	pb "github.com/dmitrijs2005/zkauth/internal/proto"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if err := s.auth.Register(ctx, req.GetIdentity(), req.GetY1(), req.GetY2()); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "identity", req.GetIdentity())
	return &pb.RegisterResponse{}, nil
}

func (s *GRPCServer) CreateChallenge(ctx context.Context, req *pb.CreateChallengeRequest) (*pb.CreateChallengeResponse, error) {
	ch, err := s.auth.CreateChallenge(ctx, req.GetIdentity(), req.GetR1(), req.GetR2())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.CreateChallengeResponse{ChallengeID: ch.ID, Challenge: ch.Value}, nil
}

func (s *GRPCServer) VerifyResponse(ctx context.Context, req *pb.VerifyResponseRequest) (*pb.VerifyResponseResponse, error) {
	token, err := s.auth.VerifyResponse(ctx, req.GetChallengeID(), req.GetResponse())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.VerifyResponseResponse{SessionToken: token}, nil
}

var statusMapping = []struct {
	err    error
	code   codes.Code
	reason string
}{
	{common.ErrMalformedInput, codes.InvalidArgument, common.ReasonMalformedInput},
	{common.ErrUnknownIdentity, codes.NotFound, common.ReasonUnknownIdentity},
	{common.ErrUnknownChallenge, codes.InvalidArgument, common.ReasonUnknownChallenge},
	{common.ErrProofRejected, codes.PermissionDenied, common.ReasonProofRejected},
	{common.ErrIdentityExists, codes.AlreadyExists, common.ReasonIdentityExists},
	{common.ErrTokenExpired, codes.Unauthenticated, common.ReasonTokenExpired},
	{common.ErrInvalidToken, codes.Unauthenticated, common.ReasonInvalidToken},
}

// toStatus converts a service error into a gRPC status carrying an
// ErrorInfo detail. Unrecognised errors become Internal and their text is
// only logged, never returned.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	code, reason, msg := codes.Internal, common.ReasonInternalInconsistency, "internal error"
	for _, m := range statusMapping {
		if errors.Is(err, m.err) {
			code, reason, msg = m.code, m.reason, err.Error()
			break
		}
	}

	if code == codes.Internal {
		s.logger.Error(ctx, "request failed", "error", err.Error())
	}

	st := status.New(code, msg)
	detailed, derr := st.WithDetails(&errdetails.ErrorInfo{Reason: reason, Domain: common.ErrorDomain})
	if derr != nil {
		return st.Err()
	}
	return detailed.Err()
}
