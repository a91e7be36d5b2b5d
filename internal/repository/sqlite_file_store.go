package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"finsort/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sqliteTimeLayout has a fixed width so that text ordering matches time order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteFileStore stores records in SQLite. UUIDs and timestamps are kept as
// text; rows and totals as JSON text.
type SQLiteFileStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSQLiteFileStore(db *sql.DB, logger *zap.Logger) *SQLiteFileStore {
	return &SQLiteFileStore{
		db:     db,
		logger: logger,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, s)
}

func nullableID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

func scanNullableID(ns sql.NullString) (*uuid.UUID, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	id, err := uuid.Parse(ns.String)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *SQLiteFileStore) exec(ctx context.Context, q squirrel.Sqlizer) (int64, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQLiteFileStore) execOne(ctx context.Context, q squirrel.Sqlizer) error {
	n, err := s.exec(ctx, q)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteFileStore) checkFolder(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.GetFolder(ctx, *id); err != nil {
		return fmt.Errorf("folder %s: %w", id, err)
	}
	return nil
}

func scanFile(sc rowScanner, withRows bool) (*models.FileRecord, error) {
	var (
		file       models.FileRecord
		id         string
		folderID   sql.NullString
		uploadedAt string
		totalsJSON string
		rowsJSON   string
	)
	dest := []any{&id, &file.FileName, &folderID, &uploadedAt, &totalsJSON}
	if withRows {
		dest = append(dest, &rowsJSON)
	}
	if err := sc.Scan(dest...); err != nil {
		return nil, err
	}

	var err error
	if file.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid file id %q: %w", id, err)
	}
	if file.FolderID, err = scanNullableID(folderID); err != nil {
		return nil, fmt.Errorf("invalid folder id: %w", err)
	}
	if file.UploadedAt, err = parseTime(uploadedAt); err != nil {
		return nil, fmt.Errorf("invalid upload time: %w", err)
	}

	var rows []byte
	if withRows {
		rows = []byte(rowsJSON)
	}
	if err := decodeRecordJSON(&file, []byte(totalsJSON), rows); err != nil {
		return nil, err
	}
	return &file, nil
}

func scanFolder(sc rowScanner) (*models.Folder, error) {
	var (
		folder    models.Folder
		id        string
		parentID  sql.NullString
		createdAt string
	)
	if err := sc.Scan(&id, &folder.Name, &parentID, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if folder.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid folder id %q: %w", id, err)
	}
	if folder.ParentID, err = scanNullableID(parentID); err != nil {
		return nil, fmt.Errorf("invalid parent id: %w", err)
	}
	if folder.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("invalid creation time: %w", err)
	}
	return &folder, nil
}

func (s *SQLiteFileStore) SaveFile(ctx context.Context, file *models.FileRecord) error {
	if err := s.checkFolder(ctx, file.FolderID); err != nil {
		return err
	}
	totalsJSON, rowsJSON, err := encodeRecordJSON(file)
	if err != nil {
		return err
	}

	_, err = s.exec(ctx, squirrel.Replace("files").
		Columns(fileColumns...).
		Values(file.ID.String(), file.FileName, nullableID(file.FolderID), formatTime(file.UploadedAt), string(totalsJSON), string(rowsJSON)))
	return err
}

func (s *SQLiteFileStore) GetFile(ctx context.Context, id uuid.UUID) (*models.FileRecord, error) {
	query, args, err := squirrel.Select(fileColumns...).
		From("files").
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, err
	}

	file, err := scanFile(s.db.QueryRowContext(ctx, query, args...), true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return file, err
}

func (s *SQLiteFileStore) ListFiles(ctx context.Context) ([]*models.FileRecord, error) {
	query, args, err := squirrel.Select("id", "file_name", "folder_id", "uploaded_at", "totals").
		From("files").
		OrderBy("uploaded_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := []*models.FileRecord{}
	for rows.Next() {
		file, err := scanFile(rows, false)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, rows.Err()
}

func (s *SQLiteFileStore) RenameFile(ctx context.Context, id uuid.UUID, name string) error {
	return s.execOne(ctx, squirrel.Update("files").
		Set("file_name", name).
		Where(squirrel.Eq{"id": id.String()}))
}

func (s *SQLiteFileStore) MoveFile(ctx context.Context, id uuid.UUID, folderID *uuid.UUID) error {
	if err := s.checkFolder(ctx, folderID); err != nil {
		return err
	}
	return s.execOne(ctx, squirrel.Update("files").
		Set("folder_id", nullableID(folderID)).
		Where(squirrel.Eq{"id": id.String()}))
}

func (s *SQLiteFileStore) UpdateFileRows(ctx context.Context, id uuid.UUID, rows []models.Row, totals []models.CategoryTotal) error {
	totalsJSON, rowsJSON, err := encodeRecordJSON(&models.FileRecord{Rows: rows, Totals: totals})
	if err != nil {
		return err
	}
	return s.execOne(ctx, squirrel.Update("files").
		Set("totals", string(totalsJSON)).
		Set("transactions", string(rowsJSON)).
		Where(squirrel.Eq{"id": id.String()}))
}

func (s *SQLiteFileStore) DeleteFile(ctx context.Context, id uuid.UUID) error {
	return s.execOne(ctx, squirrel.Delete("files").Where(squirrel.Eq{"id": id.String()}))
}

func (s *SQLiteFileStore) CreateFolder(ctx context.Context, folder *models.Folder) error {
	if err := s.checkFolder(ctx, folder.ParentID); err != nil {
		return err
	}
	_, err := s.exec(ctx, squirrel.Insert("folders").
		Columns(folderColumns...).
		Values(folder.ID.String(), folder.Name, nullableID(folder.ParentID), formatTime(folder.CreatedAt)))
	return err
}

func (s *SQLiteFileStore) GetFolder(ctx context.Context, id uuid.UUID) (*models.Folder, error) {
	query, args, err := squirrel.Select(folderColumns...).
		From("folders").
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, err
	}

	folder, err := scanFolder(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return folder, err
}

func (s *SQLiteFileStore) ListFolders(ctx context.Context) ([]*models.Folder, error) {
	query, args, err := squirrel.Select(folderColumns...).
		From("folders").
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	folders := []*models.Folder{}
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}
	return folders, rows.Err()
}

func (s *SQLiteFileStore) RenameFolder(ctx context.Context, id uuid.UUID, name string) error {
	return s.execOne(ctx, squirrel.Update("folders").
		Set("name", name).
		Where(squirrel.Eq{"id": id.String()}))
}

func (s *SQLiteFileStore) MoveFolder(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error {
	if err := s.checkFolder(ctx, parentID); err != nil {
		return err
	}
	return s.execOne(ctx, squirrel.Update("folders").
		Set("parent_id", nullableID(parentID)).
		Where(squirrel.Eq{"id": id.String()}))
}

func (s *SQLiteFileStore) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	folder, err := s.GetFolder(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queries := []squirrel.Sqlizer{
		squirrel.Update("files").Set("folder_id", nil).Where(squirrel.Eq{"folder_id": id.String()}),
		squirrel.Update("folders").Set("parent_id", nullableID(folder.ParentID)).Where(squirrel.Eq{"parent_id": id.String()}),
		squirrel.Delete("folders").Where(squirrel.Eq{"id": id.String()}),
	}
	for _, q := range queries {
		query, args, err := q.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit folder deletion: %w", err)
	}

	s.logger.Info("Folder deleted", zap.String("folder_id", id.String()))
	return nil
}

func (s *SQLiteFileStore) Close() error {
	return s.db.Close()
}
