package applications

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
	"github.com/dmitrijs2005/jobtrackr/internal/common"
	"github.com/dmitrijs2005/jobtrackr/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX. Each row keeps the
// full application as a JSON payload; status is broken out for filtering.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ReplaceAll swaps the cache contents for the given listing.
// Callers wanting atomicity run it inside dbx.WithTx.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, apps []models.Application) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM applications_cache`); err != nil {
		return fmt.Errorf("failed to clear applications cache: %w", err)
	}
	for _, app := range apps {
		payload, err := json.Marshal(app)
		if err != nil {
			return fmt.Errorf("failed to encode application %d: %w", app.ID, err)
		}
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO applications_cache (id, status, payload) VALUES (?, ?, ?)`,
			app.ID, string(app.Status), payload)
		if err != nil {
			return fmt.Errorf("failed to insert application %d: %w", app.ID, err)
		}
	}
	return nil
}

// List returns every cached application, newest first.
func (r *SQLiteRepository) List(ctx context.Context) ([]models.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT payload FROM applications_cache ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select applications: %w", err)
	}
	defer rows.Close()

	var result []models.Application
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var app models.Application
		if err := json.Unmarshal(payload, &app); err != nil {
			return nil, fmt.Errorf("failed to decode cached application: %w", err)
		}
		result = append(result, app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM applications_cache WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application %d: %w", id, err)
	}
	var app models.Application
	if err := json.Unmarshal(payload, &app); err != nil {
		return nil, fmt.Errorf("failed to decode cached application: %w", err)
	}
	return &app, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM applications_cache WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete application %d: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM applications_cache`)
	if err != nil {
		return fmt.Errorf("failed to clear applications cache: %w", err)
	}
	return nil
}
