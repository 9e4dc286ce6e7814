// Package grpc exposes AuthService as the zkauth.Auth gRPC service.
package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/zkauth/internal/logging"
	pb "github.com/dmitrijs2005/zkauth/internal/proto"
	"github.com/dmitrijs2005/zkauth/internal/server/services"
	"google.golang.org/grpc"
)

// authService is the subset of services.AuthService the handlers use.
type authService interface {
	Register(ctx context.Context, identity string, y1, y2 []byte) error
	CreateChallenge(ctx context.Context, identity string, r1, r2 []byte) (*services.Challenge, error)
	VerifyResponse(ctx context.Context, challengeID string, response []byte) (string, error)
	Identify(ctx context.Context, token string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	address string
	auth    authService
	logger  logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, auth authService) *GRPCServer {
	return &GRPCServer{
		address: address,
		auth:    auth,
		logger:  l.With("module", "grpc_server"),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestIDInterceptor,
		s.sessionInterceptor,
		s.loggingInterceptor,
	))
	pb.RegisterAuthServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully, letting in-flight calls finish.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
