package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dpetrovs/zkpauth/internal/chaumpedersen"
	"github.com/dpetrovs/zkpauth/internal/common"
	pb "github.com/dpetrovs/zkpauth/internal/proto"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	y1, err := chaumpedersen.DecodeGroupElement(s.params, req.GetY1())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid y1")
	}
	y2, err := chaumpedersen.DecodeGroupElement(s.params, req.GetY2())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid y2")
	}

	if err := s.auth.Register(ctx, req.GetUser(), y1, y2); err != nil {
		return nil, rpcError(err)
	}

	s.logger.Info(ctx, "user registered", "user", req.GetUser())
	return &pb.RegisterResponse{}, nil
}

func (s *GRPCServer) CreateAuthenticationChallenge(ctx context.Context, req *pb.AuthenticationChallengeRequest) (*pb.AuthenticationChallengeResponse, error) {

	r1, err := chaumpedersen.DecodeGroupElement(s.params, req.GetR1())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid r1")
	}
	r2, err := chaumpedersen.DecodeGroupElement(s.params, req.GetR2())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid r2")
	}

	ch, err := s.auth.CreateAuthenticationChallenge(ctx, req.GetUser(), r1, r2)
	if err != nil {
		return nil, rpcError(err)
	}

	s.logger.Debug(ctx, "challenge issued", "user", req.GetUser(), "auth_id", ch.AuthID)
	return &pb.AuthenticationChallengeResponse{
		AuthId: ch.AuthID,
		C:      chaumpedersen.EncodeInt(ch.C),
	}, nil
}

func (s *GRPCServer) VerifyAuthentication(ctx context.Context, req *pb.AuthenticationAnswerRequest) (*pb.AuthenticationAnswerResponse, error) {

	answer, err := chaumpedersen.DecodeScalar(s.params, req.GetS())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid s")
	}

	sess, err := s.auth.VerifyAuthentication(ctx, req.GetAuthId(), answer)
	if err != nil {
		return nil, rpcError(err)
	}

	s.logger.Info(ctx, "authentication verified", "user", sess.UserID, "session_id", sess.ID)
	return &pb.AuthenticationAnswerResponse{
		SessionId:    sess.ID,
		SessionToken: sess.Token,
	}, nil
}

// rpcError converts service errors to gRPC statuses. Everything on the
// verification path shares one message so a caller cannot tell a bad
// proof from a spent or vanished round.
func rpcError(err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, "invalid argument")
	case errors.Is(err, common.ErrAlreadyRegistered):
		return status.Error(codes.AlreadyExists, "user already registered")
	case errors.Is(err, common.ErrUserNotFound):
		return status.Error(codes.NotFound, "user not found")
	case errors.Is(err, common.ErrChallengeNotFound):
		return status.Error(codes.NotFound, "authentication failed")
	case errors.Is(err, common.ErrRegistrationMissing),
		errors.Is(err, common.ErrAuthenticationFailed):
		return status.Error(codes.Unauthenticated, "authentication failed")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
