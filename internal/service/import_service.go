package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"finsort/internal/classifier"
	"finsort/internal/models"
	"finsort/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadResult is the outcome of importing one statement.
type UploadResult struct {
	FileID    uuid.UUID
	Rows      []models.Row
	Unmatched []models.UnmatchedRow
}

// ImportService turns uploaded statements into classified, stored records.
// The taxonomy is re-read on every call so edits apply immediately.
type ImportService struct {
	taxonomy *TaxonomyService
	files    repository.FileStore
	opts     classifier.Options
	logger   *zap.Logger
	now      func() time.Time
}

func NewImportService(taxonomy *TaxonomyService, files repository.FileStore, opts classifier.Options, logger *zap.Logger) *ImportService {
	return &ImportService{
		taxonomy: taxonomy,
		files:    files,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}
}

// Upload parses, classifies and stores a statement.
func (s *ImportService) Upload(ctx context.Context, fileName string, r io.Reader) (*UploadResult, error) {
	rows, err := classifier.ParseCSV(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	for i := range rows {
		rows[i].Activity = sanitizeUTF8(rows[i].Activity)
		rows[i].Date = sanitizeUTF8(rows[i].Date)
	}

	tax, err := s.taxonomy.Taxonomy(ctx)
	if err != nil {
		return nil, err
	}

	res := classifier.Classify(rows, tax, s.opts)
	record := &models.FileRecord{
		ID:         uuid.New(),
		FileName:   cleanFileName(fileName),
		UploadedAt: s.now().UTC(),
		Totals:     classifier.Aggregate(res.Rows, tax),
		Rows:       res.Rows,
	}
	if err := s.files.SaveFile(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store %s: %w", record.FileName, err)
	}

	s.logger.Info("Statement imported",
		zap.String("file_id", record.ID.String()),
		zap.String("file_name", record.FileName),
		zap.Int("rows", len(res.Rows)),
		zap.Int("unmatched", len(res.Unmatched)),
	)

	return &UploadResult{
		FileID:    record.ID,
		Rows:      res.Rows,
		Unmatched: res.Unmatched,
	}, nil
}

// Reclassify labels rows again with the current taxonomy.
func (s *ImportService) Reclassify(ctx context.Context, rows []models.Row) (classifier.Result, error) {
	tax, err := s.taxonomy.Taxonomy(ctx)
	if err != nil {
		return classifier.Result{}, err
	}
	return classifier.Classify(rows, tax, s.opts), nil
}

// ReclassifyFile reclassifies a stored file and persists its new rows and
// totals.
func (s *ImportService) ReclassifyFile(ctx context.Context, id uuid.UUID) (*models.FileRecord, []models.UnmatchedRow, error) {
	record, err := s.files.GetFile(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	tax, err := s.taxonomy.Taxonomy(ctx)
	if err != nil {
		return nil, nil, err
	}

	res := classifier.Classify(record.Rows, tax, s.opts)
	totals := classifier.Aggregate(res.Rows, tax)
	if err := s.files.UpdateFileRows(ctx, id, res.Rows, totals); err != nil {
		return nil, nil, err
	}

	record.Rows = res.Rows
	record.Totals = totals
	s.logger.Info("Stored file reclassified",
		zap.String("file_id", id.String()),
		zap.Int("unmatched", len(res.Unmatched)),
	)
	return record, res.Unmatched, nil
}

// Pivot sums already classified rows per category of the current taxonomy.
func (s *ImportService) Pivot(ctx context.Context, rows []models.Row) ([]models.CategoryTotal, error) {
	tax, err := s.taxonomy.Taxonomy(ctx)
	if err != nil {
		return nil, err
	}
	return classifier.Aggregate(rows, tax), nil
}

// FileTotals aggregates a stored file against the current taxonomy.
func (s *ImportService) FileTotals(ctx context.Context, id uuid.UUID) ([]models.CategoryTotal, error) {
	record, err := s.files.GetFile(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Pivot(ctx, record.Rows)
}

func cleanFileName(name string) string {
	name = strings.TrimSpace(sanitizeUTF8(filepath.Base(strings.ReplaceAll(name, "\\", "/"))))
	if name == "" || name == "." || name == "/" {
		return "statement.csv"
	}
	return name
}
