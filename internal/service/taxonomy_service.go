package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"finsort/internal/models"

	"go.uber.org/zap"
)

// TaxonomyStore is the persistence the taxonomy editor needs.
type TaxonomyStore interface {
	Load(ctx context.Context) (models.Taxonomy, error)
	Table(ctx context.Context, track models.Track) ([]models.Category, error)
	Update(ctx context.Context, track models.Track, fn func([]models.Category) ([]models.Category, bool, error)) error
}

type TaxonomyService struct {
	store  TaxonomyStore
	logger *zap.Logger
}

func NewTaxonomyService(store TaxonomyStore, logger *zap.Logger) *TaxonomyService {
	return &TaxonomyService{
		store:  store,
		logger: logger,
	}
}

// Taxonomy returns the current tables as stored on disk.
func (s *TaxonomyService) Taxonomy(ctx context.Context) (models.Taxonomy, error) {
	return s.store.Load(ctx)
}

// AddKeyword attributes keyword to an existing category of track. A keyword
// the category already owns, in any letter case, leaves the table untouched.
func (s *TaxonomyService) AddKeyword(ctx context.Context, track models.Track, category, keyword string) error {
	category = strings.TrimSpace(sanitizeUTF8(category))
	keyword = sanitizeUTF8(keyword)
	if category == "" || strings.TrimSpace(keyword) == "" {
		return fmt.Errorf("%w: category and keyword are required", ErrInvalidInput)
	}

	added := false
	err := s.store.Update(ctx, track, func(cats []models.Category) ([]models.Category, bool, error) {
		i := models.FindCategory(cats, category)
		if i < 0 {
			return nil, false, fmt.Errorf("%w: %q in %s table", ErrCategoryNotFound, category, track)
		}
		if cats[i].HasKeyword(keyword) {
			return cats, false, nil
		}
		cats[i].Keywords = append(cats[i].Keywords, keyword)
		added = true
		return cats, true, nil
	})
	if err != nil {
		return err
	}

	if added {
		s.logger.Info("Keyword added",
			zap.String("track", string(track)),
			zap.String("category", category),
			zap.String("keyword", keyword),
		)
	}
	return nil
}

// AddCategory appends a new category to track with one seed keyword.
func (s *TaxonomyService) AddCategory(ctx context.Context, track models.Track, category, seedKeyword string) error {
	category = strings.TrimSpace(sanitizeUTF8(category))
	seedKeyword = sanitizeUTF8(seedKeyword)
	if category == "" || strings.TrimSpace(seedKeyword) == "" {
		return fmt.Errorf("%w: category and seed keyword are required", ErrInvalidInput)
	}

	err := s.store.Update(ctx, track, func(cats []models.Category) ([]models.Category, bool, error) {
		if models.FindCategory(cats, category) >= 0 {
			return nil, false, fmt.Errorf("%w: %q in %s table", ErrCategoryExists, category, track)
		}
		return append(cats, models.Category{Name: category, Keywords: []string{seedKeyword}}), true, nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Category added",
		zap.String("track", string(track)),
		zap.String("category", category),
		zap.String("keyword", seedKeyword),
	)
	return nil
}

// Options returns the category names of track in ascending order.
func (s *TaxonomyService) Options(ctx context.Context, track models.Track) ([]string, error) {
	cats, err := s.store.Table(ctx, track)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	sort.Strings(names)
	return names, nil
}

// ResolveTrack finds the table holding category, expense table first.
func (s *TaxonomyService) ResolveTrack(ctx context.Context, category string) (models.Track, error) {
	tax, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}

	category = strings.TrimSpace(category)
	for _, track := range []models.Track{models.TrackExpense, models.TrackIncome} {
		if models.FindCategory(tax.Table(track), category) >= 0 {
			return track, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
}
