package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finsort/internal/models"
	"finsort/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Library is the full listing shown by the file browser.
type Library struct {
	Files   []*models.FileRecord
	Folders []*models.Folder
}

// FileService manages stored statements and their folders.
type FileService struct {
	files  repository.FileStore
	logger *zap.Logger
	now    func() time.Time
}

func NewFileService(files repository.FileStore, logger *zap.Logger) *FileService {
	return &FileService{
		files:  files,
		logger: logger,
		now:    time.Now,
	}
}

func (s *FileService) List(ctx context.Context) (*Library, error) {
	files, err := s.files.ListFiles(ctx)
	if err != nil {
		return nil, err
	}
	folders, err := s.files.ListFolders(ctx)
	if err != nil {
		return nil, err
	}
	return &Library{Files: files, Folders: folders}, nil
}

func (s *FileService) Get(ctx context.Context, id uuid.UUID) (*models.FileRecord, error) {
	return s.files.GetFile(ctx, id)
}

func (s *FileService) Rename(ctx context.Context, id uuid.UUID, name string) error {
	name, err := requireName(name)
	if err != nil {
		return err
	}
	return s.files.RenameFile(ctx, id, name)
}

// Move puts a file into folderID, or at the root when folderID is nil.
func (s *FileService) Move(ctx context.Context, id uuid.UUID, folderID *uuid.UUID) error {
	return s.files.MoveFile(ctx, id, folderID)
}

func (s *FileService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.files.DeleteFile(ctx, id); err != nil {
		return err
	}
	s.logger.Info("File deleted", zap.String("file_id", id.String()))
	return nil
}

func (s *FileService) CreateFolder(ctx context.Context, name string, parentID *uuid.UUID) (*models.Folder, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}

	folder := &models.Folder{
		ID:        uuid.New(),
		Name:      name,
		ParentID:  parentID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.files.CreateFolder(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("Folder created",
		zap.String("folder_id", folder.ID.String()),
		zap.String("name", folder.Name),
	)
	return folder, nil
}

func (s *FileService) RenameFolder(ctx context.Context, id uuid.UUID, name string) error {
	name, err := requireName(name)
	if err != nil {
		return err
	}
	return s.files.RenameFolder(ctx, id, name)
}

// MoveFolder re-parents a folder. A folder cannot be moved into itself or
// into one of its descendants.
func (s *FileService) MoveFolder(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error {
	if _, err := s.files.GetFolder(ctx, id); err != nil {
		return err
	}

	seen := map[uuid.UUID]bool{}
	for cur := parentID; cur != nil && !seen[*cur]; {
		if *cur == id {
			return fmt.Errorf("%w: folder cannot be moved inside itself", ErrInvalidInput)
		}
		seen[*cur] = true
		parent, err := s.files.GetFolder(ctx, *cur)
		if err != nil {
			return fmt.Errorf("parent folder %s: %w", cur, err)
		}
		cur = parent.ParentID
	}

	return s.files.MoveFolder(ctx, id, parentID)
}

func (s *FileService) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	return s.files.DeleteFolder(ctx, id)
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(sanitizeUTF8(name))
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return name, nil
}
