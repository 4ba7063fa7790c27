package generation_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"aitoolhub-server/services/hub-api/internal/domain/catalog"
	"aitoolhub-server/services/hub-api/internal/domain/credit"
	"aitoolhub-server/services/hub-api/internal/domain/generation"
	"aitoolhub-server/services/hub-api/internal/domain/tool"
	"aitoolhub-server/services/hub-api/internal/domain/user"
)

// memCreditStore is an atomic in-memory credit store.
type memCreditStore struct {
	mu       sync.Mutex
	balances map[uint]decimal.Decimal
}

func newMemCreditStore(userID uint, balance string) *memCreditStore {
	return &memCreditStore{
		balances: map[uint]decimal.Decimal{userID: decimal.RequireFromString(balance)},
	}
}

func (m *memCreditStore) SpendCredits(ctx context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	balance := m.balances[userID]
	if balance.LessThan(amount) {
		return decimal.Zero, user.ErrInsufficientCredits
	}
	balance = balance.Sub(amount)
	m.balances[userID] = balance
	return balance, nil
}

func (m *memCreditStore) AddCredits(ctx context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	balance := m.balances[userID].Add(amount)
	m.balances[userID] = balance
	return balance, nil
}

func (m *memCreditStore) balance(userID uint) decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[userID]
}

// memLedgerRepo records ledger calls without persistence.
type memLedgerRepo struct {
	mu           sync.Mutex
	transactions []*credit.Transaction
	usages       []*credit.ToolUsage
}

func (m *memLedgerRepo) CreateTransaction(ctx context.Context, tx *credit.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, tx)
	return nil
}

func (m *memLedgerRepo) ListTransactions(ctx context.Context, userID uint, limit, offset int) ([]*credit.Transaction, int64, error) {
	return nil, 0, nil
}

func (m *memLedgerRepo) CreateToolUsage(ctx context.Context, usage *credit.ToolUsage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usages = append(m.usages, usage)
	return nil
}

func (m *memLedgerRepo) ListToolUsage(ctx context.Context, userID uint, limit, offset int) ([]*credit.ToolUsage, int64, error) {
	return nil, 0, nil
}

// stubAdapter returns canned results and counts calls.
type stubAdapter struct {
	name      string
	caps      generation.CapabilitySet
	result    generation.Result
	mu        sync.Mutex
	textCalls int
}

func (a *stubAdapter) Name() string                           { return a.name }
func (a *stubAdapter) Capabilities() generation.CapabilitySet { return a.caps }
func (a *stubAdapter) GenerateText(ctx context.Context, req generation.TextRequest) generation.Result {
	a.mu.Lock()
	a.textCalls++
	a.mu.Unlock()
	return a.result
}
func (a *stubAdapter) GenerateImage(ctx context.Context, req generation.ImageRequest) generation.Result {
	return a.result
}

type stubRegistry struct {
	adapters map[string]generation.Adapter
}

func (r *stubRegistry) Adapter(provider string) (generation.Adapter, bool) {
	a, ok := r.adapters[provider]
	return a, ok
}

func fixtureToolRegistry() *tool.Registry {
	selector := catalog.NewSelector(catalog.Catalogs{
		Tools: map[string]catalog.ToolEntry{
			"text_generation": {
				OptimalModels: map[string]map[string]string{
					"openai": {"default": "gpt-4"},
				},
				BestProviders: []string{"openai"},
			},
		},
		Models: catalog.ModelEntries{
			LanguageModels: map[string]catalog.ModelInfo{
				"gpt-4": {ContextLength: 128000, Capabilities: []string{"creative"}},
			},
		},
	})
	tools := []tool.Tool{
		{
			ID:        "text-generation",
			Name:      "Text Generation",
			Cost:      decimal.RequireFromString("1.0"),
			Providers: []string{"openai", "openrouter"},
		},
		{
			ID:        "image-generation",
			Name:      "Image Generation",
			Cost:      decimal.RequireFromString("5.0"),
			Providers: []string{"openai"},
		},
	}
	return tool.NewRegistry(tools, selector)
}

func newOrchestrator(store *memCreditStore, adapters map[string]generation.Adapter) *generation.Service {
	ledger := credit.NewService(&memLedgerRepo{})
	return generation.NewService(fixtureToolRegistry(), &stubRegistry{adapters: adapters}, store, ledger, time.Second)
}

func TestProcessToolNotFound(t *testing.T) {
	store := newMemCreditStore(1, "10")
	svc := newOrchestrator(store, nil)

	_, err := svc.Process(context.Background(), generation.Request{UserID: 1, ToolID: "nope", Provider: "openai", Prompt: "hi"})
	if !errors.Is(err, generation.ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}

func TestProcessInvalidProvider(t *testing.T) {
	store := newMemCreditStore(1, "10")
	svc := newOrchestrator(store, nil)

	_, err := svc.Process(context.Background(), generation.Request{UserID: 1, ToolID: "text-generation", Provider: "replicate", Prompt: "hi"})
	if !errors.Is(err, generation.ErrInvalidProvider) {
		t.Fatalf("expected ErrInvalidProvider, got %v", err)
	}
}

func TestProcessLoginRequired(t *testing.T) {
	store := newMemCreditStore(1, "10")
	svc := newOrchestrator(store, nil)

	_, err := svc.Process(context.Background(), generation.Request{ToolID: "text-generation", Provider: "openai", Prompt: "hi"})
	if !errors.Is(err, generation.ErrLoginRequired) {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}
}

func TestProcessInsufficientCreditsSkipsDispatch(t *testing.T) {
	store := newMemCreditStore(1, "0.5")
	adapter := &stubAdapter{
		name:   "openai",
		caps:   generation.NewCapabilitySet(generation.CapabilityText),
		result: generation.Result{Success: true, Text: "ok", Model: "gpt-4", Provider: "openai"},
	}
	svc := newOrchestrator(store, map[string]generation.Adapter{"openai": adapter})

	_, err := svc.Process(context.Background(), generation.Request{UserID: 1, ToolID: "text-generation", Provider: "openai", Prompt: "hi"})
	if !errors.Is(err, user.ErrInsufficientCredits) {
		t.Fatalf("expected ErrInsufficientCredits, got %v", err)
	}
	if adapter.textCalls != 0 {
		t.Fatalf("dispatch must not run on insufficient credits, got %d calls", adapter.textCalls)
	}
	if !store.balance(1).Equal(decimal.RequireFromString("0.5")) {
		t.Fatalf("balance must be unchanged, got %s", store.balance(1))
	}
}

func TestProcessProviderFailureRefunds(t *testing.T) {
	store := newMemCreditStore(1, "10")
	adapter := &stubAdapter{
		name:   "openai",
		caps:   generation.NewCapabilitySet(generation.CapabilityText),
		result: generation.Result{Success: false, Error: "upstream 500", Model: "gpt-4", Provider: "openai"},
	}
	svc := newOrchestrator(store, map[string]generation.Adapter{"openai": adapter})

	_, err := svc.Process(context.Background(), generation.Request{UserID: 1, ToolID: "text-generation", Provider: "openai", Prompt: "hi"})

	var genErr *generation.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Message != "upstream 500" {
		t.Fatalf("unexpected message: %s", genErr.Message)
	}
	if !store.balance(1).Equal(decimal.NewFromInt(10)) {
		t.Fatalf("balance must be unchanged after failure, got %s", store.balance(1))
	}
}

func TestProcessSuccessDeductsOnce(t *testing.T) {
	store := newMemCreditStore(1, "10")
	adapter := &stubAdapter{
		name:   "openai",
		caps:   generation.NewCapabilitySet(generation.CapabilityText),
		result: generation.Result{Success: true, Text: "a story", Model: "gpt-4", Provider: "openai", Tokens: generation.TokenCounts{Prompt: 5, Completion: 50, Total: 55}},
	}
	svc := newOrchestrator(store, map[string]generation.Adapter{"openai": adapter})

	resp, err := svc.Process(context.Background(), generation.Request{UserID: 1, ToolID: "text-generation", Provider: "openai", Prompt: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ModelUsed != "gpt-4" {
		t.Fatalf("expected catalog default gpt-4, got %s", resp.ModelUsed)
	}
	if !resp.Balance.Equal(decimal.NewFromInt(9)) {
		t.Fatalf("expected balance 9 after deduction, got %s", resp.Balance)
	}
	if !store.balance(1).Equal(decimal.NewFromInt(9)) {
		t.Fatalf("expected stored balance 9, got %s", store.balance(1))
	}
	if resp.Type != generation.ResultTypeText {
		t.Fatalf("unexpected result type %s", resp.Type)
	}
}

func TestProcessCapabilityUnsupported(t *testing.T) {
	store := newMemCreditStore(1, "10")
	adapter := &stubAdapter{
		name: "openai",
		caps: generation.NewCapabilitySet(generation.CapabilityText), // no image support
	}
	svc := newOrchestrator(store, map[string]generation.Adapter{"openai": adapter})

	_, err := svc.Process(context.Background(), generation.Request{UserID: 1, ToolID: "image-generation", Provider: "openai", Prompt: "a cat"})
	if !errors.Is(err, generation.ErrCapabilityUnsupported) {
		t.Fatalf("expected ErrCapabilityUnsupported, got %v", err)
	}
	if !store.balance(1).Equal(decimal.NewFromInt(10)) {
		t.Fatalf("balance must be unchanged, got %s", store.balance(1))
	}
}

func TestProcessProviderUnavailable(t *testing.T) {
	store := newMemCreditStore(1, "10")
	svc := newOrchestrator(store, map[string]generation.Adapter{})

	_, err := svc.Process(context.Background(), generation.Request{UserID: 1, ToolID: "text-generation", Provider: "openai", Prompt: "hi"})
	if !errors.Is(err, generation.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if !store.balance(1).Equal(decimal.NewFromInt(10)) {
		t.Fatalf("balance must be unchanged, got %s", store.balance(1))
	}
}

func TestProcessConcurrentSpendsNeverGoNegative(t *testing.T) {
	// Balance 5, cost 1, 20 concurrent requests: at most 5 may succeed and
	// the balance must never go negative.
	store := newMemCreditStore(1, "5")
	adapter := &stubAdapter{
		name:   "openai",
		caps:   generation.NewCapabilitySet(generation.CapabilityText),
		result: generation.Result{Success: true, Text: "ok", Model: "gpt-4", Provider: "openai"},
	}
	svc := newOrchestrator(store, map[string]generation.Adapter{"openai": adapter})

	const n = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes, rejections := 0, 0

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Process(context.Background(), generation.Request{UserID: 1, ToolID: "text-generation", Provider: "openai", Prompt: "hi"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, user.ErrInsufficientCredits):
				rejections++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 5 {
		t.Fatalf("expected exactly 5 successful deductions, got %d", successes)
	}
	if rejections != n-5 {
		t.Fatalf("expected %d rejections, got %d", n-5, rejections)
	}
	if store.balance(1).IsNegative() {
		t.Fatalf("balance went negative: %s", store.balance(1))
	}
	if !store.balance(1).Equal(decimal.Zero) {
		t.Fatalf("expected zero balance, got %s", store.balance(1))
	}
}

func TestClassifyTool(t *testing.T) {
	tests := []struct {
		toolID string
		want   generation.ResultType
	}{
		{"image-generation", generation.ResultTypeImage},
		{"ai-logo-creator", generation.ResultTypeImage},
		{"ai-avatar-generator", generation.ResultTypeImage},
		{"code-generation", generation.ResultTypeCode},
		{"ai-debugging-assistant", generation.ResultTypeCode},
		{"chatbot-assistant", generation.ResultTypeChat},
		{"blog-writer", generation.ResultTypeText},
	}
	for _, tt := range tests {
		if got := generation.ClassifyTool(tt.toolID); got != tt.want {
			t.Fatalf("%s: expected %s, got %s", tt.toolID, tt.want, got)
		}
	}
}
