package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"finsort/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// jsonDocument is the whole content of the store file.
type jsonDocument struct {
	Files   map[uuid.UUID]*models.FileRecord `json:"files"`
	Folders map[uuid.UUID]*models.Folder     `json:"folders"`
}

// JSONFileStore keeps every record in one JSON file, re-read and rewritten on
// each call. Calls within a process are serialized.
type JSONFileStore struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

func NewJSONFileStore(path string, logger *zap.Logger) *JSONFileStore {
	return &JSONFileStore{
		path:   path,
		logger: logger,
	}
}

func (s *JSONFileStore) load() (*jsonDocument, error) {
	doc := &jsonDocument{
		Files:   map[uuid.UUID]*models.FileRecord{},
		Folders: map[uuid.UUID]*models.Folder{},
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file store: %w", err)
	}
	if len(data) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse file store %s: %w", s.path, err)
	}
	if doc.Files == nil {
		doc.Files = map[uuid.UUID]*models.FileRecord{}
	}
	if doc.Folders == nil {
		doc.Folders = map[uuid.UUID]*models.Folder{}
	}
	return doc, nil
}

func (s *JSONFileStore) save(doc *jsonDocument) error {
	data, err := marshalIndent(doc)
	if err != nil {
		return fmt.Errorf("failed to encode file store: %w", err)
	}
	return writeFileAtomic(s.path, data)
}

// view runs fn on the current document without writing it back.
func (s *JSONFileStore) view(fn func(*jsonDocument) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// update runs fn on the current document and persists it if fn succeeds.
func (s *JSONFileStore) update(fn func(*jsonDocument) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (doc *jsonDocument) folderExists(id *uuid.UUID) bool {
	if id == nil {
		return true
	}
	_, ok := doc.Folders[*id]
	return ok
}

func (s *JSONFileStore) SaveFile(ctx context.Context, file *models.FileRecord) error {
	return s.update(func(doc *jsonDocument) error {
		if !doc.folderExists(file.FolderID) {
			return fmt.Errorf("folder %s: %w", file.FolderID, ErrNotFound)
		}
		rec := *file
		doc.Files[file.ID] = &rec
		return nil
	})
}

func (s *JSONFileStore) GetFile(ctx context.Context, id uuid.UUID) (*models.FileRecord, error) {
	var out *models.FileRecord
	err := s.view(func(doc *jsonDocument) error {
		rec, ok := doc.Files[id]
		if !ok {
			return ErrNotFound
		}
		out = rec
		return nil
	})
	return out, err
}

func (s *JSONFileStore) ListFiles(ctx context.Context) ([]*models.FileRecord, error) {
	var out []*models.FileRecord
	err := s.view(func(doc *jsonDocument) error {
		out = make([]*models.FileRecord, 0, len(doc.Files))
		for _, rec := range doc.Files {
			summary := *rec
			summary.Rows = nil
			out = append(out, &summary)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].UploadedAt.Equal(out[j].UploadedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

func (s *JSONFileStore) RenameFile(ctx context.Context, id uuid.UUID, name string) error {
	return s.update(func(doc *jsonDocument) error {
		rec, ok := doc.Files[id]
		if !ok {
			return ErrNotFound
		}
		rec.FileName = name
		return nil
	})
}

func (s *JSONFileStore) MoveFile(ctx context.Context, id uuid.UUID, folderID *uuid.UUID) error {
	return s.update(func(doc *jsonDocument) error {
		rec, ok := doc.Files[id]
		if !ok {
			return ErrNotFound
		}
		if !doc.folderExists(folderID) {
			return fmt.Errorf("folder %s: %w", folderID, ErrNotFound)
		}
		rec.FolderID = folderID
		return nil
	})
}

func (s *JSONFileStore) UpdateFileRows(ctx context.Context, id uuid.UUID, rows []models.Row, totals []models.CategoryTotal) error {
	return s.update(func(doc *jsonDocument) error {
		rec, ok := doc.Files[id]
		if !ok {
			return ErrNotFound
		}
		rec.Rows = rows
		rec.Totals = totals
		return nil
	})
}

func (s *JSONFileStore) DeleteFile(ctx context.Context, id uuid.UUID) error {
	return s.update(func(doc *jsonDocument) error {
		if _, ok := doc.Files[id]; !ok {
			return ErrNotFound
		}
		delete(doc.Files, id)
		return nil
	})
}

func (s *JSONFileStore) CreateFolder(ctx context.Context, folder *models.Folder) error {
	return s.update(func(doc *jsonDocument) error {
		if !doc.folderExists(folder.ParentID) {
			return fmt.Errorf("parent folder %s: %w", folder.ParentID, ErrNotFound)
		}
		f := *folder
		doc.Folders[folder.ID] = &f
		return nil
	})
}

func (s *JSONFileStore) GetFolder(ctx context.Context, id uuid.UUID) (*models.Folder, error) {
	var out *models.Folder
	err := s.view(func(doc *jsonDocument) error {
		f, ok := doc.Folders[id]
		if !ok {
			return ErrNotFound
		}
		out = f
		return nil
	})
	return out, err
}

func (s *JSONFileStore) ListFolders(ctx context.Context) ([]*models.Folder, error) {
	var out []*models.Folder
	err := s.view(func(doc *jsonDocument) error {
		out = make([]*models.Folder, 0, len(doc.Folders))
		for _, f := range doc.Folders {
			out = append(out, f)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *JSONFileStore) RenameFolder(ctx context.Context, id uuid.UUID, name string) error {
	return s.update(func(doc *jsonDocument) error {
		f, ok := doc.Folders[id]
		if !ok {
			return ErrNotFound
		}
		f.Name = name
		return nil
	})
}

func (s *JSONFileStore) MoveFolder(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error {
	return s.update(func(doc *jsonDocument) error {
		f, ok := doc.Folders[id]
		if !ok {
			return ErrNotFound
		}
		if !doc.folderExists(parentID) {
			return fmt.Errorf("parent folder %s: %w", parentID, ErrNotFound)
		}
		f.ParentID = parentID
		return nil
	})
}

func (s *JSONFileStore) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	return s.update(func(doc *jsonDocument) error {
		folder, ok := doc.Folders[id]
		if !ok {
			return ErrNotFound
		}
		for _, rec := range doc.Files {
			if rec.FolderID != nil && *rec.FolderID == id {
				rec.FolderID = nil
			}
		}
		for _, child := range doc.Folders {
			if child.ParentID != nil && *child.ParentID == id {
				child.ParentID = folder.ParentID
			}
		}
		delete(doc.Folders, id)

		s.logger.Info("Folder deleted", zap.String("folder_id", id.String()))
		return nil
	})
}

func (s *JSONFileStore) Close() error {
	return nil
}
