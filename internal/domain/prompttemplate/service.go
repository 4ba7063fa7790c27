package prompttemplate

import (
	"context"
	"fmt"

	"aitoolhub-server/services/hub-api/internal/utils/idgen"
)

// Service provides marketplace business logic.
type Service struct {
	repo Repository
}

// NewService creates a prompt template service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create publishes a new template.
func (s *Service) Create(ctx context.Context, title, content, toolID string, description *string, creatorID *uint) (*PromptTemplate, error) {
	if title == "" || content == "" || toolID == "" {
		return nil, fmt.Errorf("title, content and tool id are required")
	}

	id, err := idgen.GenerateSecureID("tmpl", 12)
	if err != nil {
		return nil, err
	}

	t := &PromptTemplate{
		ID:          id,
		Title:       title,
		Content:     content,
		Description: description,
		ToolID:      toolID,
		CreatorID:   creatorID,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Get returns a template by id.
func (s *Service) Get(ctx context.Context, id string) (*PromptTemplate, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

// List returns a filtered page of templates.
func (s *Service) List(ctx context.Context, filter Filter, limit, offset int) ([]*PromptTemplate, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.FindByFilter(ctx, filter, limit, offset)
}

// ForTool returns templates published for a tool.
func (s *Service) ForTool(ctx context.Context, toolID string, limit int) ([]*PromptTemplate, error) {
	templates, _, err := s.repo.FindByFilter(ctx, Filter{ToolID: &toolID}, limit, 0)
	return templates, err
}

// Trending returns the most used templates.
func (s *Service) Trending(ctx context.Context, limit int) ([]*PromptTemplate, error) {
	if limit <= 0 || limit > 20 {
		limit = 5
	}
	return s.repo.Trending(ctx, limit)
}

// RecordUsage bumps a template's usage counter.
func (s *Service) RecordUsage(ctx context.Context, id string) error {
	return s.repo.IncrementUsage(ctx, id)
}

// Rate folds a 1-5 rating into a template.
func (s *Service) Rate(ctx context.Context, id string, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return s.repo.AddRating(ctx, id, rating)
}

// Delete removes a template. Only the creator or an admin may delete;
// ownership is checked by the handler.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SeedDefaults installs system templates when the marketplace is empty.
func (s *Service) SeedDefaults(ctx context.Context, defaults []*PromptTemplate) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, t := range defaults {
		if t.ID == "" {
			id, err := idgen.GenerateSecureID("tmpl", 12)
			if err != nil {
				return err
			}
			t.ID = id
		}
		if err := s.repo.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
