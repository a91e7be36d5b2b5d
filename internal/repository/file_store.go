package repository

import (
	"context"
	"errors"

	"finsort/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned for an unknown file or folder identifier.
var ErrNotFound = errors.New("not found")

// FileStore persists processed uploads and the folders that group them.
//
// Moving a file or folder into a folder that does not exist fails with
// ErrNotFound. Deleting a folder moves its files to the root and its child
// folders to the deleted folder's parent.
type FileStore interface {
	SaveFile(ctx context.Context, file *models.FileRecord) error
	GetFile(ctx context.Context, id uuid.UUID) (*models.FileRecord, error)
	// ListFiles returns records newest first, without rows.
	ListFiles(ctx context.Context) ([]*models.FileRecord, error)
	RenameFile(ctx context.Context, id uuid.UUID, name string) error
	MoveFile(ctx context.Context, id uuid.UUID, folderID *uuid.UUID) error
	UpdateFileRows(ctx context.Context, id uuid.UUID, rows []models.Row, totals []models.CategoryTotal) error
	DeleteFile(ctx context.Context, id uuid.UUID) error

	CreateFolder(ctx context.Context, folder *models.Folder) error
	GetFolder(ctx context.Context, id uuid.UUID) (*models.Folder, error)
	ListFolders(ctx context.Context) ([]*models.Folder, error)
	RenameFolder(ctx context.Context, id uuid.UUID, name string) error
	MoveFolder(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error
	DeleteFolder(ctx context.Context, id uuid.UUID) error

	Close() error
}
