package client

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/dpetrovs/zkpauth/internal/chaumpedersen"
	"github.com/dpetrovs/zkpauth/internal/client/models"
	pb "github.com/dpetrovs/zkpauth/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL    string
	requestTimeout time.Duration
	conn           *grpc.ClientConn
	client         pb.AuthClient
}

func NewAuthClient(endpointURL string, requestTimeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, requestTimeout: requestTimeout}
	err := c.initGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthClient(conn)
	return nil
}

func (s *GRPCClient) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.requestTimeout)
}

func (s *GRPCClient) Register(ctx context.Context, username string, y1, y2 *big.Int) error {

	ctx, cancel := s.callContext(ctx)
	defer cancel()

	req := &pb.RegisterRequest{
		User: username,
		Y1:   chaumpedersen.EncodeInt(y1),
		Y2:   chaumpedersen.EncodeInt(y2),
	}

	_, err := s.client.Register(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) CreateAuthenticationChallenge(ctx context.Context, username string, r1, r2 *big.Int) (*models.Challenge, error) {

	ctx, cancel := s.callContext(ctx)
	defer cancel()

	req := &pb.AuthenticationChallengeRequest{
		User: username,
		R1:   chaumpedersen.EncodeInt(r1),
		R2:   chaumpedersen.EncodeInt(r2),
	}

	resp, err := s.client.CreateAuthenticationChallenge(ctx, req)

	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.Challenge{AuthID: resp.AuthId, C: chaumpedersen.DecodeInt(resp.C)}, nil
}

func (s *GRPCClient) VerifyAuthentication(ctx context.Context, authID string, answer *big.Int) (*models.Session, error) {

	ctx, cancel := s.callContext(ctx)
	defer cancel()

	req := &pb.AuthenticationAnswerRequest{AuthId: authID, S: chaumpedersen.EncodeInt(answer)}

	resp, err := s.client.VerifyAuthentication(ctx, req)

	if err != nil {
		// The server answers NotFound for spent or expired rounds; to the
		// caller that is just a failed login.
		if status.Code(err) == codes.NotFound {
			return nil, ErrAuthenticationFailed
		}
		return nil, s.mapError(err)
	}

	return &models.Session{ID: resp.SessionId, Token: resp.SessionToken}, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrAuthenticationFailed
	case codes.NotFound:
		return ErrUserNotFound
	case codes.AlreadyExists:
		return ErrAlreadyRegistered
	case codes.InvalidArgument:
		return ErrInvalidInput
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
