package models

import (
	"time"

	"github.com/google/uuid"
)

// FileRecord is a processed upload.
type FileRecord struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	FileName   string          `db:"file_name" json:"file_name"`
	FolderID   *uuid.UUID      `db:"folder_id" json:"folder_id,omitempty"`
	UploadedAt time.Time       `db:"uploaded_at" json:"uploaded_at"`
	Totals     []CategoryTotal `db:"totals" json:"totals"`
	Rows       []Row           `db:"rows" json:"rows,omitempty"`
}

// Folder groups file records. A nil ParentID is the root.
type Folder struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	ParentID  *uuid.UUID `db:"parent_id" json:"parent_id,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
