package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dpetrovs/zkpauth/internal/logging"
)

type captureLogger struct {
	infos []string
	warns []string
}

func (c *captureLogger) Debug(context.Context, string, ...any) {}
func (c *captureLogger) Info(_ context.Context, msg string, _ ...any) {
	c.infos = append(c.infos, msg)
}
func (c *captureLogger) Warn(_ context.Context, msg string, _ ...any) {
	c.warns = append(c.warns, msg)
}
func (c *captureLogger) Error(context.Context, string, ...any) {}
func (c *captureLogger) With(...any) logging.Logger            { return c }

func TestLoggingInterceptor_Success(t *testing.T) {
	logger := &captureLogger{}
	s := &GRPCServer{logger: logger}

	info := &grpc.UnaryServerInfo{FullMethod: "/zkp_auth.Auth/Register"}
	handler := func(ctx context.Context, req any) (any, error) {
		return "resp", nil
	}

	resp, err := s.loggingInterceptor(context.Background(), "req", info, handler)
	if err != nil {
		t.Fatalf("interceptor error: %v", err)
	}
	if resp != "resp" {
		t.Fatalf("response not passed through: %v", resp)
	}
	if len(logger.infos) != 1 || len(logger.warns) != 0 {
		t.Fatalf("unexpected log calls: infos=%d warns=%d", len(logger.infos), len(logger.warns))
	}
}

func TestLoggingInterceptor_Failure(t *testing.T) {
	logger := &captureLogger{}
	s := &GRPCServer{logger: logger}

	wantErr := status.Error(codes.NotFound, "user not found")
	info := &grpc.UnaryServerInfo{FullMethod: "/zkp_auth.Auth/CreateAuthenticationChallenge"}
	handler := func(ctx context.Context, req any) (any, error) {
		return nil, wantErr
	}

	_, err := s.loggingInterceptor(context.Background(), "req", info, handler)
	if !errors.Is(err, wantErr) {
		t.Fatalf("error not passed through: %v", err)
	}
	if len(logger.warns) != 1 || len(logger.infos) != 0 {
		t.Fatalf("unexpected log calls: infos=%d warns=%d", len(logger.infos), len(logger.warns))
	}
}
