package auth

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"aitoolhub-server/services/hub-api/internal/domain/user"
)

const googleIssuer = "https://accounts.google.com"

// GoogleVerifier validates Google Sign-In ID tokens against Google's JWKS.
type GoogleVerifier struct {
	clientID     string
	jwksURL      string
	logger       *zerolog.Logger
	refreshEvery time.Duration
	jwks         atomic.Pointer[keyfunc.JWKS]
}

// NewGoogleVerifier initialises JWKS fetching and returns a verifier.
func NewGoogleVerifier(ctx context.Context, jwksURL, clientID string, refreshEvery time.Duration, logger *zerolog.Logger) (*GoogleVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("jwks url is required")
	}
	if clientID == "" {
		return nil, errors.New("google client id is required")
	}

	v := &GoogleVerifier{
		clientID:     clientID,
		jwksURL:      jwksURL,
		logger:       logger,
		refreshEvery: refreshEvery,
	}

	options := keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   refreshEvery,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			if err != nil {
				logger.Error().Err(err).Msg("google jwks refresh failed")
			}
		},
	}
	jwks, err := keyfunc.Get(jwksURL, options)
	if err != nil {
		return nil, fmt.Errorf("fetch google jwks: %w", err)
	}
	v.jwks.Store(jwks)
	return v, nil
}

// Verify parses and validates a Google ID token, returning the identity.
func (v *GoogleVerifier) Verify(_ context.Context, rawToken string) (*user.GoogleIdentity, error) {
	jwks := v.jwks.Load()
	if jwks == nil {
		return nil, errors.New("jwks not initialised")
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(googleIssuer),
		jwt.WithAudience(v.clientID),
		jwt.WithExpirationRequired(),
	)
	token, err := parser.ParseWithClaims(rawToken, jwt.MapClaims{}, jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return nil, errors.New("sub claim missing")
	}
	email, _ := mapClaims["email"].(string)
	if verified, ok := mapClaims["email_verified"].(bool); ok && !verified {
		return nil, errors.New("email not verified")
	}
	name, _ := mapClaims["name"].(string)
	picture, _ := mapClaims["picture"].(string)

	return &user.GoogleIdentity{
		Subject: sub,
		Email:   email,
		Name:    name,
		Picture: picture,
	}, nil
}
