package prompttemplate

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
)

type memTemplateRepo struct {
	mu        sync.Mutex
	templates map[string]*PromptTemplate
}

func newMemTemplateRepo() *memTemplateRepo {
	return &memTemplateRepo{templates: map[string]*PromptTemplate{}}
}

func (r *memTemplateRepo) Create(_ context.Context, t *PromptTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.templates[t.ID] = &cp
	return nil
}

func (r *memTemplateRepo) Update(_ context.Context, t *PromptTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[t.ID]; !ok {
		return ErrNotFound
	}
	cp := *t
	r.templates[t.ID] = &cp
	return nil
}

func (r *memTemplateRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[id]; !ok {
		return ErrNotFound
	}
	delete(r.templates, id)
	return nil
}

func (r *memTemplateRepo) FindByID(_ context.Context, id string) (*PromptTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.templates[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memTemplateRepo) FindByFilter(_ context.Context, filter Filter, limit, offset int) ([]*PromptTemplate, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*PromptTemplate
	for _, t := range r.templates {
		if filter.ToolID != nil && t.ToolID != *filter.ToolID {
			continue
		}
		if filter.CreatorID != nil && (t.CreatorID == nil || *t.CreatorID != *filter.CreatorID) {
			continue
		}
		if filter.Search != nil && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(*filter.Search)) {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	total := int64(len(out))
	if offset < len(out) {
		out = out[offset:]
	} else {
		out = nil
	}
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *memTemplateRepo) Trending(_ context.Context, limit int) ([]*PromptTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*PromptTemplate, 0, len(r.templates))
	for _, t := range r.templates {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UsageCount > out[j].UsageCount })
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memTemplateRepo) IncrementUsage(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.templates[id]
	if !ok {
		return ErrNotFound
	}
	t.UsageCount++
	return nil
}

func (r *memTemplateRepo) AddRating(_ context.Context, id string, rating int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.templates[id]
	if !ok {
		return ErrNotFound
	}
	t.RatingSum += int64(rating)
	t.RatingCount++
	return nil
}

func (r *memTemplateRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.templates)), nil
}

func TestCreateAssignsID(t *testing.T) {
	svc := NewService(newMemTemplateRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Launch Email", "Write a launch email for {{product}}.", "email-generator", nil, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(created.ID, "tmpl") {
		t.Errorf("ID = %q, want tmpl prefix", created.ID)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Launch Email" {
		t.Errorf("Title = %q", got.Title)
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	svc := NewService(newMemTemplateRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "", "content", "tool", nil, nil); err == nil {
		t.Error("empty title accepted")
	}
	if _, err := svc.Create(ctx, "title", "", "tool", nil, nil); err == nil {
		t.Error("empty content accepted")
	}
	if _, err := svc.Create(ctx, "title", "content", "", nil, nil); err == nil {
		t.Error("empty tool id accepted")
	}
}

func TestGetMissing(t *testing.T) {
	svc := NewService(newMemTemplateRepo())
	if _, err := svc.Get(context.Background(), "tmpl-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing = %v, want ErrNotFound", err)
	}
}

func TestRateBounds(t *testing.T) {
	repo := newMemTemplateRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "t", "c", "tool", nil, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, bad := range []int{0, -1, 6} {
		if err := svc.Rate(ctx, created.ID, bad); err == nil {
			t.Errorf("rating %d accepted", bad)
		}
	}

	if err := svc.Rate(ctx, created.ID, 5); err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if err := svc.Rate(ctx, created.ID, 2); err != nil {
		t.Fatalf("Rate: %v", err)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if avg := got.AverageRating(); avg != 3.5 {
		t.Errorf("AverageRating = %v, want 3.5", avg)
	}
}

func TestTrendingOrdersByUsage(t *testing.T) {
	repo := newMemTemplateRepo()
	svc := NewService(repo)
	ctx := context.Background()

	quiet, _ := svc.Create(ctx, "quiet", "c", "tool", nil, nil)
	busy, _ := svc.Create(ctx, "busy", "c", "tool", nil, nil)
	for i := 0; i < 5; i++ {
		if err := svc.RecordUsage(ctx, busy.ID); err != nil {
			t.Fatalf("RecordUsage: %v", err)
		}
	}

	trending, err := svc.Trending(ctx, 10)
	if err != nil {
		t.Fatalf("Trending: %v", err)
	}
	if len(trending) != 2 {
		t.Fatalf("len = %d, want 2", len(trending))
	}
	if trending[0].ID != busy.ID || trending[1].ID != quiet.ID {
		t.Errorf("order = %s, %s; want busy first", trending[0].ID, trending[1].ID)
	}
}

func TestSeedDefaultsSkipsNonEmptyMarketplace(t *testing.T) {
	repo := newMemTemplateRepo()
	svc := NewService(repo)
	ctx := context.Background()

	defaults := []*PromptTemplate{
		{Title: "a", Content: "c", ToolID: "tool"},
		{Title: "b", Content: "c", ToolID: "tool"},
	}
	if err := svc.SeedDefaults(ctx, defaults); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}
	count, _ := repo.Count(ctx)
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	for _, d := range defaults {
		if d.ID == "" {
			t.Error("seeded template missing generated id")
		}
	}

	// Second run must be a no-op.
	if err := svc.SeedDefaults(ctx, []*PromptTemplate{{Title: "x", Content: "c", ToolID: "tool"}}); err != nil {
		t.Fatalf("repeat SeedDefaults: %v", err)
	}
	count, _ = repo.Count(ctx)
	if count != 2 {
		t.Errorf("count after repeat = %d, want 2", count)
	}
}

func TestListSearchFilter(t *testing.T) {
	svc := NewService(newMemTemplateRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "SEO Blog Outline", "c", "blog-writer", nil, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, "Cold Outreach", "c", "email-generator", nil, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	search := "blog"
	results, total, err := svc.List(ctx, Filter{Search: &search}, 20, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(results) != 1 {
		t.Fatalf("total = %d, len = %d, want 1", total, len(results))
	}
	if results[0].Title != "SEO Blog Outline" {
		t.Errorf("Title = %q", results[0].Title)
	}
}
