package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/repository"
	"furnimarket/pkg/logger"
)

const (
	maxSuggestions     = 5
	candidateListLimit = 200
	candidateCacheTTL  = 5 * time.Minute
)

// Suggest returns at most five candidates whose title contains the query as a
// case-insensitive substring, preserving the candidates' original relative
// order. It is pure: safe to call on every keystroke, no debouncing needed.
func Suggest(q string, candidates []entity.TitleRef) []entity.TitleRef {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}

	var matches []entity.TitleRef
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Title), q) {
			matches = append(matches, c)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	return matches
}

// SuggestionService serves live search suggestions from a bounded, cached
// candidate list of active listing titles.
type SuggestionService struct {
	productRepo repository.ProductRepository

	mu         sync.Mutex
	candidates []entity.TitleRef
	fetchedAt  time.Time
}

func NewSuggestionService(productRepo repository.ProductRepository) *SuggestionService {
	return &SuggestionService{
		productRepo: productRepo,
	}
}

func (s *SuggestionService) Suggest(ctx context.Context, q string) ([]entity.TitleRef, error) {
	candidates, err := s.loadCandidates(ctx)
	if err != nil {
		return nil, err
	}
	return Suggest(q, candidates), nil
}

func (s *SuggestionService) loadCandidates(ctx context.Context) ([]entity.TitleRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.candidates != nil && time.Since(s.fetchedAt) < candidateCacheTTL {
		return s.candidates, nil
	}

	titles, err := s.productRepo.ActiveTitles(ctx, candidateListLimit)
	if err != nil {
		if s.candidates != nil {
			// Serve the stale list rather than breaking typing.
			logger.Warn("Could not refresh suggestion candidates: %v", err)
			return s.candidates, nil
		}
		return nil, err
	}

	s.candidates = titles
	s.fetchedAt = time.Now()
	return s.candidates, nil
}
