package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/common"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	requestIDKey       ctxKey = "requestID"
	sessionIdentityKey ctxKey = "sessionIdentity"
)

// RequestIDFromContext returns the id assigned by requestIDInterceptor.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// SessionIdentityFromContext returns the identity of a caller that presented
// a valid session token.
func SessionIdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(sessionIdentityKey).(string)
	return identity, ok
}

// requestIDInterceptor takes the caller's request id from metadata, or
// generates one, stores it in the context and echoes it in the response
// header.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	var requestID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.RequestIDHeaderName); len(values) > 0 {
			requestID = values[0]
		}
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctx = context.WithValue(ctx, requestIDKey, requestID)
	if err := grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID)); err != nil {
		s.logger.Debug(ctx, "request id header not sent", "method", info.FullMethod, "error", err.Error())
	}

	return handler(ctx, req)
}

// sessionInterceptor validates a session token sent in metadata and stores
// its identity in the context. Calls without a token pass through untouched;
// a token that does not validate fails the call with Unauthenticated.
func (s *GRPCServer) sessionInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.SessionTokenHeaderName); len(values) > 0 {
			token = values[0]
		}
	}
	if token == "" {
		return handler(ctx, req)
	}

	identity, err := s.auth.Identify(ctx, token)
	if err != nil {
		requestID, _ := RequestIDFromContext(ctx)
		s.logger.Info(ctx, "session rejected", "method", info.FullMethod, "request_id", requestID, "error", err.Error())
		return nil, s.toStatus(ctx, err)
	}

	return handler(context.WithValue(ctx, sessionIdentityKey, identity), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	requestID, _ := RequestIDFromContext(ctx)
	args := []any{
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start).String(),
		"request_id", requestID,
	}
	if identity, ok := SessionIdentityFromContext(ctx); ok {
		args = append(args, "session_identity", identity)
	}
	s.logger.Info(ctx, "rpc", args...)
	return resp, err
}
