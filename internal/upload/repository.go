package upload

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles all upload database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const uploadColumns = `id, user_id, file_name, content_type, size_bytes, folder, object_key, status, created_at, updated_at`

func scanUpload(row pgx.Row) (*Upload, error) {
	u := &Upload{}
	err := row.Scan(&u.ID, &u.UserID, &u.FileName, &u.ContentType, &u.SizeBytes,
		&u.Folder, &u.ObjectKey, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new upload record and returns it with generated fields.
func (r *Repository) Create(ctx context.Context, u *Upload) (*Upload, error) {
	rec, err := scanUpload(r.db.QueryRow(ctx,
		`INSERT INTO uploads (user_id, file_name, content_type, size_bytes, folder, object_key, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+uploadColumns,
		u.UserID, u.FileName, u.ContentType, u.SizeBytes, u.Folder, u.ObjectKey, u.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("create upload: %w", err)
	}
	return rec, nil
}

// GetByID fetches one of the user's upload records by its UUID.
func (r *Repository) GetByID(ctx context.Context, userID, id string) (*Upload, error) {
	rec, err := scanUpload(r.db.QueryRow(ctx,
		`SELECT `+uploadColumns+` FROM uploads WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get upload by id: %w", err)
	}
	return rec, nil
}

// List returns all of the user's upload records, newest first.
func (r *Repository) List(ctx context.Context, userID string) ([]Upload, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+uploadColumns+` FROM uploads WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	defer rows.Close()

	var uploads []Upload
	for rows.Next() {
		rec, err := scanUpload(rows)
		if err != nil {
			return nil, fmt.Errorf("scan upload: %w", err)
		}
		uploads = append(uploads, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	return uploads, nil
}

// SetStatus updates the record's status and returns the updated row.
func (r *Repository) SetStatus(ctx context.Context, userID, id, status string) (*Upload, error) {
	rec, err := scanUpload(r.db.QueryRow(
		ctx,
		`UPDATE uploads SET status = $3, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+uploadColumns,
		id, userID, status,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("set upload status: %w", err)
	}
	return rec, nil
}

// Delete removes one of the user's upload records.
func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM uploads WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete upload: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
