package grpc

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/zkauth/internal/common"
	"github.com/dmitrijs2005/zkauth/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type record struct {
	msg  string
	args []any
}

type recordingLogger struct {
	mu      sync.Mutex
	records []record
}

func (l *recordingLogger) add(msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record{msg: msg, args: args})
}

func (l *recordingLogger) Debug(_ context.Context, msg string, args ...any) { l.add(msg, args) }
func (l *recordingLogger) Info(_ context.Context, msg string, args ...any)  { l.add(msg, args) }
func (l *recordingLogger) Warn(_ context.Context, msg string, args ...any)  { l.add(msg, args) }
func (l *recordingLogger) Error(_ context.Context, msg string, args ...any) { l.add(msg, args) }
func (l *recordingLogger) With(...any) logging.Logger                       { return l }

func attr(args []any, key string) any {
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == key {
			return args[i+1]
		}
	}
	return nil
}

func TestRequestIDInterceptor_UsesIncomingID(t *testing.T) {
	s := newServer(&fakeAuth{})
	md := metadata.New(map[string]string{common.RequestIDHeaderName: "req-42"})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	var seen string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen, _ = RequestIDFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.requestIDInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/zkauth.Auth/Register"}, h)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, "req-42", seen)
}

func TestRequestIDInterceptor_GeneratesID(t *testing.T) {
	s := newServer(&fakeAuth{})

	var seen string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen, _ = RequestIDFromContext(ctx)
		return nil, nil
	}

	_, err := s.requestIDInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, h)
	require.NoError(t, err)
	_, perr := uuid.Parse(seen)
	assert.NoError(t, perr)
}

func TestLoggingInterceptor_LogsMethodAndCode(t *testing.T) {
	rl := &recordingLogger{}
	s := NewGRPCServer("", rl, &fakeAuth{})
	ctx := context.WithValue(context.Background(), requestIDKey, "req-1")

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.NotFound, "nope")
	}

	_, err := s.loggingInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/zkauth.Auth/CreateChallenge"}, h)
	require.Error(t, err)

	require.Len(t, rl.records, 1)
	r := rl.records[0]
	assert.Equal(t, "rpc", r.msg)
	assert.Equal(t, "/zkauth.Auth/CreateChallenge", attr(r.args, "method"))
	assert.Equal(t, codes.NotFound.String(), attr(r.args, "code"))
	assert.Equal(t, "req-1", attr(r.args, "request_id"))
	assert.NotNil(t, attr(r.args, "duration"))
}

func TestRequestIDInterceptor_LogsHeaderFailure(t *testing.T) {
	rl := &recordingLogger{}
	s := NewGRPCServer("", rl, &fakeAuth{})

	h := func(ctx context.Context, req interface{}) (interface{}, error) { return nil, nil }

	// No transport stream behind a plain context, so SetHeader fails.
	_, err := s.requestIDInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/zkauth.Auth/Register"}, h)
	require.NoError(t, err)

	require.Len(t, rl.records, 1)
	assert.Equal(t, "request id header not sent", rl.records[0].msg)
	assert.Equal(t, "/zkauth.Auth/Register", attr(rl.records[0].args, "method"))
	assert.NotNil(t, attr(rl.records[0].args, "error"))
}

func TestSessionInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/zkauth.Auth/Register"}
	withToken := func(token string) context.Context {
		md := metadata.New(map[string]string{common.SessionTokenHeaderName: token})
		return metadata.NewIncomingContext(context.Background(), md)
	}

	tests := []struct {
		name         string
		ctx          context.Context
		auth         *fakeAuth
		wantCalled   bool
		wantIdentity string
		wantCode     codes.Code
		wantReason   string
	}{
		{
			name:       "no token passes through",
			ctx:        context.Background(),
			auth:       &fakeAuth{},
			wantCalled: true,
			wantCode:   codes.OK,
		},
		{
			name:         "valid token sets identity",
			ctx:          withToken("tok-alice"),
			auth:         &fakeAuth{sessions: map[string]string{"tok-alice": "alice"}},
			wantCalled:   true,
			wantIdentity: "alice",
			wantCode:     codes.OK,
		},
		{
			name:       "unknown token rejected",
			ctx:        withToken("forged"),
			auth:       &fakeAuth{},
			wantCode:   codes.Unauthenticated,
			wantReason: common.ReasonInvalidToken,
		},
		{
			name:       "expired token rejected",
			ctx:        withToken("old"),
			auth:       &fakeAuth{identifyErr: common.ErrTokenExpired},
			wantCode:   codes.Unauthenticated,
			wantReason: common.ReasonTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(tt.auth)

			called := false
			var identity string
			h := func(ctx context.Context, req interface{}) (interface{}, error) {
				called = true
				identity, _ = SessionIdentityFromContext(ctx)
				return "ok", nil
			}

			_, err := s.sessionInterceptor(tt.ctx, nil, info, h)
			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantIdentity, identity)
			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, errorReason(t, err))
			}
		})
	}
}

func TestLoggingInterceptor_LogsSessionIdentity(t *testing.T) {
	rl := &recordingLogger{}
	s := NewGRPCServer("", rl, &fakeAuth{})
	ctx := context.WithValue(context.Background(), sessionIdentityKey, "alice")

	h := func(ctx context.Context, req interface{}) (interface{}, error) { return nil, nil }

	_, err := s.loggingInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/zkauth.Auth/Register"}, h)
	require.NoError(t, err)

	require.Len(t, rl.records, 1)
	assert.Equal(t, "alice", attr(rl.records[0].args, "session_identity"))
	assert.Equal(t, codes.OK.String(), attr(rl.records[0].args, "code"))
}
