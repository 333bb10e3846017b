package faq

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAll(ctx context.Context) ([]Entry, error) {
	return s.repo.All(ctx)
}

// GetByCategory matches the category label exactly; an unknown category is
// an empty result, not an error.
func (s *Service) GetByCategory(ctx context.Context, category string) ([]Entry, error) {
	return s.repo.ByCategory(ctx, category)
}

func (s *Service) GetPopular(ctx context.Context) ([]Entry, error) {
	return s.repo.Popular(ctx)
}

// Search returns entries whose lowercased question+answer+keywords text
// contains any space-separated token of the lowercased query as a literal
// substring. Results keep store insertion order; there is no relevance
// scoring, so the first match is simply the earliest-inserted match. Short
// common tokens over-match on purpose: this mirrors the matching contract
// clients already depend on. An empty or whitespace-only query yields an
// empty result.
func (s *Service) Search(ctx context.Context, query string) ([]Entry, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}
	tokens := strings.Split(q, " ")

	entries, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	var matched []Entry
	for _, e := range entries {
		haystack := strings.ToLower(e.Question + " " + e.Answer + " " + e.Keywords)
		for _, tok := range tokens {
			if tok == "" {
				continue
			}
			if strings.Contains(haystack, tok) {
				matched = append(matched, e)
				break
			}
		}
	}
	return matched, nil
}

// InitializeDefaults seeds the store with the default entries when it is
// empty. Safe to call on every start: a non-zero count makes it a no-op,
// and the batch insert is transactional so a failed seed leaves nothing
// behind for the next start to retry.
func (s *Service) InitializeDefaults(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	entries := defaultEntries()
	for i := range entries {
		entries[i].ID = uuid.NewString()
	}
	return s.repo.CreateBatch(ctx, entries)
}
