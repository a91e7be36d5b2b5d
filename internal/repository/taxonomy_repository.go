package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"finsort/internal/models"

	"go.uber.org/zap"
)

// expenseRecord and incomeRecord are the on-disk shapes of the two taxonomy
// files. They differ only in the name of the keyword list.
type expenseRecord struct {
	Classification string   `json:"classification"`
	Keywords       []string `json:"expenses_attributed"`
}

type incomeRecord struct {
	Classification string   `json:"classification"`
	Keywords       []string `json:"income_attributed"`
}

// TaxonomyRepository persists the expense and income category tables as two
// JSON files. Every mutation rewrites a whole file. Writers inside one process
// are serialized; separate processes writing the same files are not
// coordinated and the last write wins.
type TaxonomyRepository struct {
	expensePath string
	incomePath  string
	mu          sync.Mutex
	logger      *zap.Logger
}

func NewTaxonomyRepository(expensePath, incomePath string, logger *zap.Logger) *TaxonomyRepository {
	return &TaxonomyRepository{
		expensePath: expensePath,
		incomePath:  incomePath,
		logger:      logger,
	}
}

// Paths returns the expense and income file locations.
func (r *TaxonomyRepository) Paths() (string, string) {
	return r.expensePath, r.incomePath
}

// Load reads both tables. A missing or malformed file is an error.
func (r *TaxonomyRepository) Load(ctx context.Context) (models.Taxonomy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expense, err := r.read(models.TrackExpense)
	if err != nil {
		return models.Taxonomy{}, err
	}
	income, err := r.read(models.TrackIncome)
	if err != nil {
		return models.Taxonomy{}, err
	}
	return models.Taxonomy{Expense: expense, Income: income}, nil
}

// Table reads the categories of one track.
func (r *TaxonomyRepository) Table(ctx context.Context, track models.Track) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read(track)
}

// Update runs a read-modify-write cycle on one track. fn receives the current
// table and returns the new one and whether anything changed; the file is
// rewritten only on change.
func (r *TaxonomyRepository) Update(ctx context.Context, track models.Track, fn func([]models.Category) ([]models.Category, bool, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cats, err := r.read(track)
	if err != nil {
		return err
	}

	updated, changed, err := fn(cats)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err := r.write(track, updated); err != nil {
		return err
	}

	r.logger.Info("Taxonomy updated",
		zap.String("track", string(track)),
		zap.String("path", r.path(track)),
		zap.Int("categories", len(updated)),
	)
	return nil
}

// Save overwrites both files with tax.
func (r *TaxonomyRepository) Save(ctx context.Context, tax models.Taxonomy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.write(models.TrackExpense, tax.Expense); err != nil {
		return err
	}
	return r.write(models.TrackIncome, tax.Income)
}

// Exists reports whether both files are present.
func (r *TaxonomyRepository) Exists() bool {
	return fileExists(r.expensePath) && fileExists(r.incomePath)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (r *TaxonomyRepository) path(track models.Track) string {
	if track == models.TrackIncome {
		return r.incomePath
	}
	return r.expensePath
}

func (r *TaxonomyRepository) read(track models.Track) ([]models.Category, error) {
	path := r.path(track)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s taxonomy: %w", track, err)
	}

	var cats []models.Category
	if track == models.TrackIncome {
		var records []incomeRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		cats = make([]models.Category, len(records))
		for i, rec := range records {
			cats[i] = models.Category{Name: rec.Classification, Keywords: rec.Keywords}
		}
	} else {
		var records []expenseRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		cats = make([]models.Category, len(records))
		for i, rec := range records {
			cats[i] = models.Category{Name: rec.Classification, Keywords: rec.Keywords}
		}
	}
	return cats, nil
}

func (r *TaxonomyRepository) write(track models.Track, cats []models.Category) error {
	var records any
	if track == models.TrackIncome {
		recs := make([]incomeRecord, len(cats))
		for i, c := range cats {
			recs[i] = incomeRecord{Classification: c.Name, Keywords: nonNil(c.Keywords)}
		}
		records = recs
	} else {
		recs := make([]expenseRecord, len(cats))
		for i, c := range cats {
			recs[i] = expenseRecord{Classification: c.Name, Keywords: nonNil(c.Keywords)}
		}
		records = recs
	}

	data, err := marshalIndent(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s taxonomy: %w", track, err)
	}
	return writeFileAtomic(r.path(track), data)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// marshalIndent encodes v with four-space indentation and without HTML
// escaping, so keywords such as "AT&T" stay readable in the file.
func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFileAtomic replaces path through a temp file in the same directory.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
