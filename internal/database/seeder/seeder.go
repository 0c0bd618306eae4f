package seeder

import (
	"context"

	"talento-joven/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
