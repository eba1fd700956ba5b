package seeder

import (
	"context"

	"roadtrip-career/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
