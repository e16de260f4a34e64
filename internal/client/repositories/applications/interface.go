// Package applications caches the server's application list locally so the
// CLI can still show it when the server is unreachable.
package applications

import (
	"context"

	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
)

// Repository is the local cache of tracked applications. ReplaceAll swaps
// the whole cache for the latest server listing.
type Repository interface {
	ReplaceAll(ctx context.Context, apps []models.Application) error
	List(ctx context.Context) ([]models.Application, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	DeleteByID(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}
