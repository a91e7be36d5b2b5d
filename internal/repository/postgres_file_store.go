package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"finsort/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var (
	fileColumns   = []string{"id", "file_name", "folder_id", "uploaded_at", "totals", "transactions"}
	folderColumns = []string{"id", "name", "parent_id", "created_at"}
)

type PostgresFileStore struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresFileStore(db *pgxpool.Pool, logger *zap.Logger) *PostgresFileStore {
	return &PostgresFileStore{
		db:     db,
		logger: logger,
	}
}

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func encodeRecordJSON(file *models.FileRecord) ([]byte, []byte, error) {
	totals := file.Totals
	if totals == nil {
		totals = []models.CategoryTotal{}
	}
	rows := file.Rows
	if rows == nil {
		rows = []models.Row{}
	}

	totalsJSON, err := json.Marshal(totals)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode totals: %w", err)
	}
	rowsJSON, err := json.Marshal(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode rows: %w", err)
	}
	return totalsJSON, rowsJSON, nil
}

func decodeRecordJSON(file *models.FileRecord, totalsJSON, rowsJSON []byte) error {
	if err := json.Unmarshal(totalsJSON, &file.Totals); err != nil {
		return fmt.Errorf("failed to decode totals: %w", err)
	}
	if rowsJSON == nil {
		return nil
	}
	if err := json.Unmarshal(rowsJSON, &file.Rows); err != nil {
		return fmt.Errorf("failed to decode rows: %w", err)
	}
	return nil
}

func (s *PostgresFileStore) exec(ctx context.Context, q squirrel.Sqlizer) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// execOne runs q and maps "no row touched" to ErrNotFound.
func (s *PostgresFileStore) execOne(ctx context.Context, q squirrel.Sqlizer) error {
	n, err := s.exec(ctx, q)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresFileStore) checkFolder(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.GetFolder(ctx, *id); err != nil {
		return fmt.Errorf("folder %s: %w", id, err)
	}
	return nil
}

func (s *PostgresFileStore) SaveFile(ctx context.Context, file *models.FileRecord) error {
	if err := s.checkFolder(ctx, file.FolderID); err != nil {
		return err
	}
	totalsJSON, rowsJSON, err := encodeRecordJSON(file)
	if err != nil {
		return err
	}

	query := psql().Insert("files").
		Columns(fileColumns...).
		Values(file.ID, file.FileName, file.FolderID, file.UploadedAt, totalsJSON, rowsJSON).
		Suffix("ON CONFLICT (id) DO UPDATE SET file_name = EXCLUDED.file_name, folder_id = EXCLUDED.folder_id, totals = EXCLUDED.totals, transactions = EXCLUDED.transactions")

	_, err = s.exec(ctx, query)
	return err
}

func (s *PostgresFileStore) GetFile(ctx context.Context, id uuid.UUID) (*models.FileRecord, error) {
	query := psql().Select(fileColumns...).
		From("files").
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		file                 models.FileRecord
		totalsJSON, rowsJSON []byte
	)
	err = s.db.QueryRow(ctx, sql, args...).Scan(
		&file.ID, &file.FileName, &file.FolderID, &file.UploadedAt, &totalsJSON, &rowsJSON,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := decodeRecordJSON(&file, totalsJSON, rowsJSON); err != nil {
		return nil, err
	}
	return &file, nil
}

func (s *PostgresFileStore) ListFiles(ctx context.Context) ([]*models.FileRecord, error) {
	query := psql().Select("id", "file_name", "folder_id", "uploaded_at", "totals").
		From("files").
		OrderBy("uploaded_at DESC", "id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := []*models.FileRecord{}
	for rows.Next() {
		var (
			file       models.FileRecord
			totalsJSON []byte
		)
		if err := rows.Scan(&file.ID, &file.FileName, &file.FolderID, &file.UploadedAt, &totalsJSON); err != nil {
			return nil, err
		}
		if err := decodeRecordJSON(&file, totalsJSON, nil); err != nil {
			return nil, err
		}
		files = append(files, &file)
	}
	return files, rows.Err()
}

func (s *PostgresFileStore) RenameFile(ctx context.Context, id uuid.UUID, name string) error {
	return s.execOne(ctx, psql().Update("files").
		Set("file_name", name).
		Where(squirrel.Eq{"id": id}))
}

func (s *PostgresFileStore) MoveFile(ctx context.Context, id uuid.UUID, folderID *uuid.UUID) error {
	if err := s.checkFolder(ctx, folderID); err != nil {
		return err
	}
	return s.execOne(ctx, psql().Update("files").
		Set("folder_id", folderID).
		Where(squirrel.Eq{"id": id}))
}

func (s *PostgresFileStore) UpdateFileRows(ctx context.Context, id uuid.UUID, rows []models.Row, totals []models.CategoryTotal) error {
	totalsJSON, rowsJSON, err := encodeRecordJSON(&models.FileRecord{Rows: rows, Totals: totals})
	if err != nil {
		return err
	}
	return s.execOne(ctx, psql().Update("files").
		Set("totals", totalsJSON).
		Set("transactions", rowsJSON).
		Where(squirrel.Eq{"id": id}))
}

func (s *PostgresFileStore) DeleteFile(ctx context.Context, id uuid.UUID) error {
	return s.execOne(ctx, psql().Delete("files").Where(squirrel.Eq{"id": id}))
}

func (s *PostgresFileStore) CreateFolder(ctx context.Context, folder *models.Folder) error {
	if err := s.checkFolder(ctx, folder.ParentID); err != nil {
		return err
	}
	_, err := s.exec(ctx, psql().Insert("folders").
		Columns(folderColumns...).
		Values(folder.ID, folder.Name, folder.ParentID, folder.CreatedAt))
	return err
}

func (s *PostgresFileStore) GetFolder(ctx context.Context, id uuid.UUID) (*models.Folder, error) {
	sql, args, err := psql().Select(folderColumns...).
		From("folders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var folder models.Folder
	err = s.db.QueryRow(ctx, sql, args...).Scan(&folder.ID, &folder.Name, &folder.ParentID, &folder.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (s *PostgresFileStore) ListFolders(ctx context.Context) ([]*models.Folder, error) {
	sql, args, err := psql().Select(folderColumns...).
		From("folders").
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	folders := []*models.Folder{}
	for rows.Next() {
		var folder models.Folder
		if err := rows.Scan(&folder.ID, &folder.Name, &folder.ParentID, &folder.CreatedAt); err != nil {
			return nil, err
		}
		folders = append(folders, &folder)
	}
	return folders, rows.Err()
}

func (s *PostgresFileStore) RenameFolder(ctx context.Context, id uuid.UUID, name string) error {
	return s.execOne(ctx, psql().Update("folders").
		Set("name", name).
		Where(squirrel.Eq{"id": id}))
}

func (s *PostgresFileStore) MoveFolder(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error {
	if err := s.checkFolder(ctx, parentID); err != nil {
		return err
	}
	return s.execOne(ctx, psql().Update("folders").
		Set("parent_id", parentID).
		Where(squirrel.Eq{"id": id}))
}

func (s *PostgresFileStore) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	folder, err := s.GetFolder(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	queries := []squirrel.Sqlizer{
		psql().Update("files").Set("folder_id", nil).Where(squirrel.Eq{"folder_id": id}),
		psql().Update("folders").Set("parent_id", folder.ParentID).Where(squirrel.Eq{"parent_id": id}),
		psql().Delete("folders").Where(squirrel.Eq{"id": id}),
	}
	for _, q := range queries {
		sql, args, err := q.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit folder deletion: %w", err)
	}

	s.logger.Info("Folder deleted", zap.String("folder_id", id.String()))
	return nil
}

func (s *PostgresFileStore) Close() error {
	s.db.Close()
	return nil
}
