package offer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusPaused Status = "PAUSED"
	StatusClosed Status = "CLOSED"
	StatusDraft  Status = "DRAFT"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusClosed, StatusDraft:
		return true
	}
	return false
}

var ErrNotFound = errors.New("job offer not found")

// JobOffer is an admin-authored vacancy. Views and Applications are
// server-maintained counters, never written by clients.
type JobOffer struct {
	ID             uuid.UUID
	CompanyID      *uuid.UUID
	Title          string
	Description    string
	Requirements   string
	Location       string
	Modality       string
	SalaryMin      *int64
	SalaryMax      *int64
	SalaryCurrency string
	Status         Status
	Views          int64
	Applications   int64
	PublishedAt    *time.Time
	ClosesAt       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ListFilter struct {
	Search   string
	Status   Status
	Page     int
	PageSize int
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]JobOffer, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (JobOffer, error)
	Create(ctx context.Context, o JobOffer) (JobOffer, error)
	Update(ctx context.Context, o JobOffer) (JobOffer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
