// Package grpc exposes the authentication service over gRPC.
package grpc

import (
	"context"
	"math/big"
	"net"

	"google.golang.org/grpc"

	"github.com/dpetrovs/zkpauth/internal/chaumpedersen"
	"github.com/dpetrovs/zkpauth/internal/logging"
	pb "github.com/dpetrovs/zkpauth/internal/proto"
	"github.com/dpetrovs/zkpauth/internal/server/auth"
	"github.com/dpetrovs/zkpauth/internal/server/models"
)

// authService is the slice of auth.Service the transport needs.
type authService interface {
	Register(ctx context.Context, userID string, y1, y2 *big.Int) error
	CreateAuthenticationChallenge(ctx context.Context, userID string, r1, r2 *big.Int) (*models.Challenge, error)
	VerifyAuthentication(ctx context.Context, authID string, answer *big.Int) (*models.Session, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	address string
	auth    authService
	params  *chaumpedersen.Params
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, svc *auth.Service, params *chaumpedersen.Params) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    svc,
		params:  params,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	// registers service
	pb.RegisterAuthServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
