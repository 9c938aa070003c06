package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// loggingInterceptor records every unary call with its method, outcome
// code and duration.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	start := time.Now()
	resp, err := handler(ctx, req)
	elapsed := time.Since(start)

	code := status.Code(err)
	if err != nil {
		s.logger.Warn(ctx, "request failed",
			"method", info.FullMethod, "code", code.String(), "duration", elapsed.String(), "error", err.Error())
	} else {
		s.logger.Info(ctx, "request handled",
			"method", info.FullMethod, "code", code.String(), "duration", elapsed.String())
	}

	return resp, err
}
