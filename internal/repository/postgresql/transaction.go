package postgresql

import (
	"context"

	"github.com/careerbridge/recruit-backend-go/internal/pkg/database"
)

// GetQuerier returns either the active transaction or the pool.
// Used in repositories to support both transactional and non-transactional operations.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	return database.QuerierFromContext(ctx, db)
}
