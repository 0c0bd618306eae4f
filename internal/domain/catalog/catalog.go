// Package catalog holds the flat admin-managed records of the youth
// content area: companies, institutions, mentors, networking contacts
// and resources. They share one status enumeration and one CRUD shape.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusPending  Status = "PENDING"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

var ErrNotFound = errors.New("record not found")

type Company struct {
	ID          uuid.UUID
	Name        string
	Industry    string
	Description string
	Website     string
	Email       string
	Phone       string
	City        string
	Status      Status
	Views       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Institution struct {
	ID          uuid.UUID
	Name        string
	Kind        string
	Description string
	Website     string
	Email       string
	Phone       string
	City        string
	Status      Status
	Views       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Mentor struct {
	ID        uuid.UUID
	FullName  string
	Specialty string
	Bio       string
	Email     string
	Phone     string
	City      string
	Status    Status
	Views     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NetworkContact struct {
	ID           uuid.UUID
	FullName     string
	Organization string
	Position     string
	Email        string
	Phone        string
	City         string
	Status       Status
	Views        int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Resource struct {
	ID          uuid.UUID
	Title       string
	Category    string
	Description string
	URL         string
	Status      Status
	Views       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ListFilter struct {
	Search   string
	Status   Status
	Page     int
	PageSize int
}

type CompanyRepository interface {
	List(ctx context.Context, f ListFilter) ([]Company, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	Create(ctx context.Context, c Company) (Company, error)
	Update(ctx context.Context, c Company) (Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
}

type InstitutionRepository interface {
	List(ctx context.Context, f ListFilter) ([]Institution, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (Institution, error)
	Create(ctx context.Context, i Institution) (Institution, error)
	Update(ctx context.Context, i Institution) (Institution, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type MentorRepository interface {
	List(ctx context.Context, f ListFilter) ([]Mentor, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (Mentor, error)
	Create(ctx context.Context, m Mentor) (Mentor, error)
	Update(ctx context.Context, m Mentor) (Mentor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContactRepository interface {
	List(ctx context.Context, f ListFilter) ([]NetworkContact, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (NetworkContact, error)
	Create(ctx context.Context, c NetworkContact) (NetworkContact, error)
	Update(ctx context.Context, c NetworkContact) (NetworkContact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ResourceRepository interface {
	List(ctx context.Context, f ListFilter) ([]Resource, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (Resource, error)
	Create(ctx context.Context, r Resource) (Resource, error)
	Update(ctx context.Context, r Resource) (Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
