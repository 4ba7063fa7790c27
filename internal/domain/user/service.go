package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"aitoolhub-server/services/hub-api/internal/domain/credit"
	"aitoolhub-server/services/hub-api/internal/infrastructure/logger"
)

// SignupCredits is the balance granted to every new account.
var SignupCredits = decimal.RequireFromString("10.0")

// GoogleIdentity is a verified Google ID-token payload.
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// Service implements account lifecycle and admin credit operations.
type Service struct {
	repo   Repository
	ledger *credit.Service
}

// NewService creates a user service.
func NewService(repo Repository, ledger *credit.Service) *Service {
	return &Service{repo: repo, ledger: ledger}
}

// Register creates an email/password account with the signup credit grant.
func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("username, email and password are required")
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	hashStr := string(hash)

	created, err := s.repo.Create(ctx, &User{
		Username:        username,
		Email:           email,
		PasswordHash:    &hashStr,
		IsActive:        true,
		Credits:         SignupCredits,
		LifetimeCredits: SignupCredits,
	})
	if err != nil {
		return nil, err
	}

	logger.GetLogger().Info().
		Uint("user_id", created.ID).
		Str("email", created.Email).
		Msg("registered new user")
	return created, nil
}

// Authenticate verifies an email/password pair and stamps last_login.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	usr, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usr == nil || usr.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	usr.LastLogin = &now
	if err := s.repo.Update(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// AuthenticateGoogle finds or creates an account for a verified Google
// identity. Existing email accounts are linked by attaching the Google id.
func (s *Service) AuthenticateGoogle(ctx context.Context, identity GoogleIdentity) (*User, error) {
	usr, err := s.repo.FindByGoogleID(ctx, identity.Subject)
	if err != nil {
		return nil, err
	}

	if usr == nil && identity.Email != "" {
		usr, err = s.repo.FindByEmail(ctx, strings.ToLower(identity.Email))
		if err != nil {
			return nil, err
		}
		if usr != nil {
			sub := identity.Subject
			usr.GoogleID = &sub
			usr.IsVerified = true
		}
	}

	now := time.Now()
	if usr == nil {
		sub := identity.Subject
		var picture *string
		if identity.Picture != "" {
			picture = &identity.Picture
		}
		username := identity.Name
		if username == "" {
			username = identity.Email
		}
		usr, err = s.repo.Create(ctx, &User{
			Username:        username,
			Email:           strings.ToLower(identity.Email),
			GoogleID:        &sub,
			ProfilePicture:  picture,
			IsVerified:      true,
			IsActive:        true,
			Credits:         SignupCredits,
			LifetimeCredits: SignupCredits,
			LastLogin:       &now,
		})
		return usr, err
	}

	usr.LastLogin = &now
	if err := s.repo.Update(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// Get returns a user by id, ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id uint) (*User, error) {
	usr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrNotFound
	}
	return usr, nil
}

// List returns a page of users for admin views.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*User, int64, error) {
	return s.repo.List(ctx, limit, offset)
}

// AdjustCredits applies an admin credit change and records it in the ledger.
// Negative amounts use the conditional spend path so balances stay non-negative.
func (s *Service) AdjustCredits(ctx context.Context, userID uint, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	usr, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	if usr == nil {
		return decimal.Zero, ErrNotFound
	}

	var balance decimal.Decimal
	if amount.IsNegative() {
		balance, err = s.repo.SpendCredits(ctx, userID, amount.Neg())
	} else {
		balance, err = s.repo.AddCredits(ctx, userID, amount)
	}
	if err != nil {
		return decimal.Zero, err
	}

	if err := s.ledger.Record(ctx, userID, amount, credit.TransactionAdmin, description); err != nil {
		logger.GetLogger().Error().Err(err).
			Uint("user_id", userID).
			Msg("failed to record admin credit transaction")
	}
	return balance, nil
}
