package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind selects which federation table a profile lives in.
type Kind string

const (
	KindAthlete Kind = "atleta"
	KindCoach   Kind = "entrenador"
	KindJudge   Kind = "juez"
)

func (k Kind) Valid() bool {
	switch k {
	case KindAthlete, KindCoach, KindJudge:
		return true
	}
	return false
}

// Estado values denormalized onto users after profile creation.
const (
	EstadoSinPerfil = "sin_perfil"
	EstadoPendiente = "pendiente"
)

var (
	ErrNotFound = errors.New("profile not found")
	ErrExists   = errors.New("profile already exists")
)

// Record is a stored federation profile. The indexed identity and
// federative columns are explicit; everything else the wizard collects
// rides in Datos.
type Record struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Kind            Kind
	Nombre          string
	Apellido        string
	CI              string
	FechaNacimiento *time.Time
	Genero          string
	Asociacion      string
	Municipio       string
	Datos           map[string]string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Repository interface {
	GetByUserID(ctx context.Context, kind Kind, userID uuid.UUID) (Record, error)
	ExistsByUserID(ctx context.Context, kind Kind, userID uuid.UUID) (bool, error)
	// Create inserts the record and updates the owner's denormalized
	// estado column in the same transaction.
	Create(ctx context.Context, rec Record, estado string) (Record, error)
	Update(ctx context.Context, rec Record) error
}
