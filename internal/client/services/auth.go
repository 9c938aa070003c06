// Package services contains application services for the CLI client.
// This file defines the authentication service: registration and login
// over the sigma protocol, with cleanup of secret material.
package services

import (
	"context"
	"fmt"

	"github.com/dpetrovs/zkpauth/internal/chaumpedersen"
	"github.com/dpetrovs/zkpauth/internal/client/client"
	"github.com/dpetrovs/zkpauth/internal/client/models"
	"github.com/dpetrovs/zkpauth/internal/cryptox"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: derive the secret from the password and publish the pair
//     y1 = g^x, y2 = h^x on the server.
//   - Login: run one protocol round and return the issued session.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts. Passwords and
// derived secrets are wiped before the methods return.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) (*models.Session, error)
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client.
type authService struct {
	client client.Client
	params *chaumpedersen.Params
}

// NewAuthService constructs an AuthService bound to the given API client
// and group parameters.
func NewAuthService(client client.Client, params *chaumpedersen.Params) AuthService {
	return &authService{client: client, params: params}
}

// Register derives the long-term secret x from the password and sends the
// public pair to the server. Neither the password nor x leaves the process.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	defer cryptox.WipeBytes(password)

	x := cryptox.DeriveSecret(username, password, a.params.Q)
	defer cryptox.WipeInt(x)

	y1, y2 := chaumpedersen.Commit(a.params, x)

	return a.client.Register(ctx, username, y1, y2)
}

// Login runs one authentication round: commit with a fresh nonce, fetch
// the challenge, answer it, and collect the session the server issues on
// success.
func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.Session, error) {
	defer cryptox.WipeBytes(password)

	x := cryptox.DeriveSecret(username, password, a.params.Q)
	defer cryptox.WipeInt(x)

	k, err := chaumpedersen.RandomExponent(a.params)
	if err != nil {
		return nil, fmt.Errorf("nonce error: %w", err)
	}
	defer cryptox.WipeInt(k)

	r1, r2 := chaumpedersen.Commit(a.params, k)

	challenge, err := a.client.CreateAuthenticationChallenge(ctx, username, r1, r2)
	if err != nil {
		return nil, fmt.Errorf("challenge error: %w", err)
	}

	s := chaumpedersen.Respond(a.params, k, challenge.C, x)

	session, err := a.client.VerifyAuthentication(ctx, challenge.AuthID, s)
	if err != nil {
		return nil, fmt.Errorf("verification error: %w", err)
	}

	return session, nil
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
