package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/common"
	pb "github.com/dmitrijs2005/zkauth/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.AuthClient
}

// reasonErrors maps ErrorInfo reasons back to the sentinels the server
// started from.
var reasonErrors = map[string]error{
	common.ReasonUnknownIdentity:       common.ErrUnknownIdentity,
	common.ReasonUnknownChallenge:      common.ErrUnknownChallenge,
	common.ReasonProofRejected:         common.ErrProofRejected,
	common.ReasonMalformedInput:        common.ErrMalformedInput,
	common.ReasonIdentityExists:        common.ErrIdentityExists,
	common.ReasonInternalInconsistency: common.ErrInternalInconsistency,
	common.ReasonInvalidToken:          common.ErrInvalidToken,
	common.ReasonTokenExpired:          common.ErrTokenExpired,
}

// requestIDInterceptor tags each outgoing call with a fresh request id
// unless the caller already set one.
func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) == 0 {
		ctx = metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewZKAuthClient connects lazily to endpointURL. Every call is bounded by
// timeout when it is positive. Extra dial options are appended to the
// defaults (plaintext transport, request id interceptor).
func NewZKAuthClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewAuthClient(conn)
	return c, nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Register(ctx context.Context, identity string, y1, y2 []byte) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.Register(ctx, &pb.RegisterRequest{Identity: identity, Y1: y1, Y2: y2})
	return s.mapError(err)
}

func (s *GRPCClient) CreateChallenge(ctx context.Context, identity string, r1, r2 []byte) (string, []byte, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.CreateChallenge(ctx, &pb.CreateChallengeRequest{Identity: identity, R1: r1, R2: r2})
	if err != nil {
		return "", nil, s.mapError(err)
	}
	return resp.GetChallengeID(), resp.GetChallenge(), nil
}

func (s *GRPCClient) VerifyResponse(ctx context.Context, challengeID string, response []byte) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.VerifyResponse(ctx, &pb.VerifyResponseRequest{ChallengeID: challengeID, Response: response})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetSessionToken(), nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// mapError turns a gRPC status into a common sentinel using its ErrorInfo
// reason. Transport failures become ErrUnavailable.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	}

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != common.ErrorDomain {
			continue
		}
		if sentinel, ok := reasonErrors[info.GetReason()]; ok {
			return fmt.Errorf("%w: %s", sentinel, st.Message())
		}
	}
	return fmt.Errorf("rpc error: %w", err)
}
