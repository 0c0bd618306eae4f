package cv

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("cv document not found")

type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Document, error)
	Create(ctx context.Context, doc Document) error
	Update(ctx context.Context, doc Document) error
}

type CoverLetterRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (CoverLetter, error)
	Create(ctx context.Context, cl CoverLetter) error
	Update(ctx context.Context, cl CoverLetter) error
}
