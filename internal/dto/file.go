package dto

import (
	"time"

	"finsort/internal/models"

	"github.com/google/uuid"
)

type FileResponse struct {
	ID         string          `json:"id"`
	FileName   string          `json:"file_name"`
	FolderID   *string         `json:"folder_id"`
	UploadedAt string          `json:"uploaded_at"`
	Totals     []CategoryTotal `json:"totals" swaggertype:"array,object"`
	Rows       []Row           `json:"rows,omitempty"`
}

type FolderResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ParentID  *string `json:"parent_id"`
	CreatedAt string  `json:"created_at"`
}

type LibraryResponse struct {
	Files   []FileResponse   `json:"files"`
	Folders []FolderResponse `json:"folders"`
}

type RenameRequest struct {
	Name string `json:"name"`
}

// MoveFileRequest moves a file; a null folder_id moves it to the root.
type MoveFileRequest struct {
	FolderID *string `json:"folder_id"`
}

type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

// MoveFolderRequest re-parents a folder; a null parent_id moves it to the root.
type MoveFolderRequest struct {
	ParentID *string `json:"parent_id"`
}

// ParseOptionalID parses a nullable identifier. Nil and empty mean "root".
func ParseOptionalID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// FileFromModel converts a record; rows are included only when present.
func FileFromModel(f *models.FileRecord) FileResponse {
	resp := FileResponse{
		ID:         f.ID.String(),
		FileName:   f.FileName,
		FolderID:   optionalID(f.FolderID),
		UploadedAt: f.UploadedAt.Format(time.RFC3339),
		Totals:     TotalsFromModels(f.Totals),
	}
	if len(f.Rows) > 0 {
		resp.Rows = RowsFromModels(f.Rows)
	}
	return resp
}

func FolderFromModel(f *models.Folder) FolderResponse {
	return FolderResponse{
		ID:        f.ID.String(),
		Name:      f.Name,
		ParentID:  optionalID(f.ParentID),
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}

func LibraryFromModels(files []*models.FileRecord, folders []*models.Folder) LibraryResponse {
	resp := LibraryResponse{
		Files:   make([]FileResponse, len(files)),
		Folders: make([]FolderResponse, len(folders)),
	}
	for i, f := range files {
		resp.Files[i] = FileFromModel(f)
	}
	for i, f := range folders {
		resp.Folders[i] = FolderFromModel(f)
	}
	return resp
}
