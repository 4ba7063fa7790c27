package user

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"aitoolhub-server/services/hub-api/internal/domain/credit"
)

type memUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uint]*User{}}
}

func (r *memUserRepo) FindByID(_ context.Context, id uint) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	usr, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *usr
	return &cp, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, usr := range r.users {
		if usr.Email == email {
			cp := *usr
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByGoogleID(_ context.Context, googleID string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, usr := range r.users {
		if usr.GoogleID != nil && *usr.GoogleID == googleID {
			cp := *usr
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Create(_ context.Context, u *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, ErrEmailTaken
		}
	}
	r.nextID++
	cp := *u
	cp.ID = r.nextID
	r.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memUserRepo) Update(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) SpendCredits(_ context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	usr, ok := r.users[userID]
	if !ok {
		return decimal.Zero, ErrNotFound
	}
	if usr.Credits.LessThan(amount) {
		return decimal.Zero, ErrInsufficientCredits
	}
	usr.Credits = usr.Credits.Sub(amount)
	return usr.Credits, nil
}

func (r *memUserRepo) AddCredits(_ context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	usr, ok := r.users[userID]
	if !ok {
		return decimal.Zero, ErrNotFound
	}
	usr.Credits = usr.Credits.Add(amount)
	if amount.IsPositive() {
		usr.LifetimeCredits = usr.LifetimeCredits.Add(amount)
	}
	return usr.Credits, nil
}

func (r *memUserRepo) List(_ context.Context, limit, offset int) ([]*User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*User, 0, len(r.users))
	for _, usr := range r.users {
		cp := *usr
		out = append(out, &cp)
	}
	return out, int64(len(r.users)), nil
}

func newUserTestService() (*Service, *memUserRepo, *memLedgerRepo) {
	repo := newMemUserRepo()
	ledger := &memLedgerRepo{}
	return NewService(repo, credit.NewService(ledger)), repo, ledger
}

type memLedgerRepo struct {
	mu  sync.Mutex
	txs []*credit.Transaction
}

func (r *memLedgerRepo) CreateTransaction(_ context.Context, tx *credit.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs = append(r.txs, tx)
	return nil
}

func (r *memLedgerRepo) ListTransactions(_ context.Context, _ uint, _, _ int) ([]*credit.Transaction, int64, error) {
	return nil, 0, nil
}

func (r *memLedgerRepo) CreateToolUsage(_ context.Context, _ *credit.ToolUsage) error {
	return nil
}

func (r *memLedgerRepo) ListToolUsage(_ context.Context, _ uint, _, _ int) ([]*credit.ToolUsage, int64, error) {
	return nil, 0, nil
}

func TestRegisterGrantsSignupCredits(t *testing.T) {
	svc, _, _ := newUserTestService()
	ctx := context.Background()

	usr, err := svc.Register(ctx, "alice", "Alice@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if usr.Email != "alice@example.com" {
		t.Errorf("email = %q, want lowercased", usr.Email)
	}
	if !usr.Credits.Equal(SignupCredits) {
		t.Errorf("credits = %s, want %s", usr.Credits, SignupCredits)
	}
	if usr.PasswordHash == nil || *usr.PasswordHash == "hunter22" {
		t.Error("password stored unhashed")
	}
	if !usr.IsActive {
		t.Error("new user not active")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newUserTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, "alice2", "ALICE@example.com", "hunter22"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate register = %v, want ErrEmailTaken", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _, _ := newUserTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("register: %v", err)
	}

	usr, err := svc.Authenticate(ctx, "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if usr.LastLogin == nil {
		t.Error("LastLogin not stamped")
	}

	if _, err := svc.Authenticate(ctx, "alice@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email = %v, want ErrInvalidCredentials", err)
	}
}

func TestGetMissingUser(t *testing.T) {
	svc, _, _ := newUserTestService()

	// Stores report a lookup miss as (nil, nil); only the service layer
	// promotes absence to ErrNotFound.
	if _, err := svc.Get(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing = %v, want ErrNotFound", err)
	}
}

func TestAuthenticateGoogleCreatesAccount(t *testing.T) {
	svc, _, _ := newUserTestService()
	ctx := context.Background()

	usr, err := svc.AuthenticateGoogle(ctx, GoogleIdentity{
		Subject: "google-sub-1",
		Email:   "Bob@Example.com",
		Name:    "Bob",
	})
	if err != nil {
		t.Fatalf("AuthenticateGoogle: %v", err)
	}
	if usr.GoogleID == nil || *usr.GoogleID != "google-sub-1" {
		t.Errorf("GoogleID = %v, want google-sub-1", usr.GoogleID)
	}
	if !usr.IsVerified {
		t.Error("google account not marked verified")
	}
	if !usr.Credits.Equal(SignupCredits) {
		t.Errorf("credits = %s, want signup grant", usr.Credits)
	}

	again, err := svc.AuthenticateGoogle(ctx, GoogleIdentity{Subject: "google-sub-1", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("repeat AuthenticateGoogle: %v", err)
	}
	if again.ID != usr.ID {
		t.Errorf("repeat sign-in created a new account: %d vs %d", again.ID, usr.ID)
	}
}

func TestAuthenticateGoogleLinksExistingEmail(t *testing.T) {
	svc, _, _ := newUserTestService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "carol", "carol@example.com", "hunter22")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	linked, err := svc.AuthenticateGoogle(ctx, GoogleIdentity{Subject: "google-sub-2", Email: "carol@example.com"})
	if err != nil {
		t.Fatalf("AuthenticateGoogle: %v", err)
	}
	if linked.ID != registered.ID {
		t.Fatalf("linked to id %d, want existing %d", linked.ID, registered.ID)
	}
	if linked.GoogleID == nil || *linked.GoogleID != "google-sub-2" {
		t.Errorf("GoogleID = %v, want google-sub-2", linked.GoogleID)
	}
}

func TestAdjustCredits(t *testing.T) {
	svc, _, ledger := newUserTestService()
	ctx := context.Background()

	usr, err := svc.Register(ctx, "dave", "dave@example.com", "hunter22")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	balance, err := svc.AdjustCredits(ctx, usr.ID, decimal.NewFromInt(50), "manual top-up")
	if err != nil {
		t.Fatalf("AdjustCredits grant: %v", err)
	}
	if !balance.Equal(SignupCredits.Add(decimal.NewFromInt(50))) {
		t.Errorf("balance = %s, want %s", balance, SignupCredits.Add(decimal.NewFromInt(50)))
	}

	balance, err = svc.AdjustCredits(ctx, usr.ID, decimal.NewFromInt(-30), "correction")
	if err != nil {
		t.Fatalf("AdjustCredits revoke: %v", err)
	}
	if !balance.Equal(SignupCredits.Add(decimal.NewFromInt(20))) {
		t.Errorf("balance = %s, want %s", balance, SignupCredits.Add(decimal.NewFromInt(20)))
	}

	if _, err := svc.AdjustCredits(ctx, usr.ID, decimal.NewFromInt(-1000), "over-revoke"); !errors.Is(err, ErrInsufficientCredits) {
		t.Fatalf("over-revoke = %v, want ErrInsufficientCredits", err)
	}

	if _, err := svc.AdjustCredits(ctx, 999, decimal.NewFromInt(5), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing user = %v, want ErrNotFound", err)
	}

	if len(ledger.txs) != 2 {
		t.Fatalf("ledger entries = %d, want 2", len(ledger.txs))
	}
	for _, tx := range ledger.txs {
		if tx.Type != credit.TransactionAdmin {
			t.Errorf("tx type = %s, want admin", tx.Type)
		}
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	svc, _, _ := newUserTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "", "x@example.com", "pw"); err == nil || strings.Contains(err.Error(), "hash") {
		t.Fatalf("empty username = %v, want validation error", err)
	}
}
