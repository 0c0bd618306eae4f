package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"talento-joven/internal/domain/profile"
	"talento-joven/internal/domain/user"
)

// WizardUsecase drives the seven-step federation registration flow.
// Session state lives in Redis keyed by user and profile kind, so a
// half-completed registration survives page reloads.
type WizardUsecase interface {
	Start(ctx context.Context, userID uuid.UUID, kind profile.Kind) (profile.State, error)
	Input(ctx context.Context, userID uuid.UUID, kind profile.Kind, fields map[string]string) (profile.State, map[string]string, error)
	Next(ctx context.Context, userID uuid.UUID, kind profile.Kind) (profile.State, map[string]string, error)
	Prev(ctx context.Context, userID uuid.UUID, kind profile.Kind) (profile.State, error)
	Submit(ctx context.Context, userID uuid.UUID, kind profile.Kind) (profile.Record, map[string]string, error)
}

type Wizard struct {
	profiles   profile.Repository
	users      user.Repository
	sessions   Cache
	sessionTTL time.Duration
	logger     *log.Logger
}

func NewWizardUsecase(profiles profile.Repository, users user.Repository, sessions Cache, sessionTTL time.Duration, logger *log.Logger) *Wizard {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &Wizard{profiles: profiles, users: users, sessions: sessions, sessionTTL: sessionTTL, logger: logger}
}

func wizardSessionKey(userID uuid.UUID, kind profile.Kind) string {
	return "wizard:" + string(kind) + ":" + userID.String()
}

// Start resumes an existing session or opens a fresh one. When the user
// already has a stored profile of this kind, its values prefill the
// state and the personal identity fields are locked against edits.
func (u *Wizard) Start(ctx context.Context, userID uuid.UUID, kind profile.Kind) (profile.State, error) {
	if userID == uuid.Nil || !kind.Valid() {
		return profile.State{}, ErrInvalidInput
	}

	var st profile.State
	if u.sessions != nil {
		hit, err := u.sessions.GetJSON(ctx, wizardSessionKey(userID, kind), &st)
		if err == nil && hit && st.Kind == kind {
			return st, nil
		}
	}

	st = profile.NewState(kind)

	rec, err := u.profiles.GetByUserID(ctx, kind, userID)
	switch {
	case err == nil:
		prefillFromRecord(&st, rec)
	case errors.Is(err, profile.ErrNotFound):
		// first registration, nothing to prefill
	default:
		return profile.State{}, ErrInternal
	}

	u.persist(ctx, userID, st)
	return st, nil
}

func (u *Wizard) Input(ctx context.Context, userID uuid.UUID, kind profile.Kind, fields map[string]string) (profile.State, map[string]string, error) {
	st, err := u.load(ctx, userID, kind)
	if err != nil {
		return profile.State{}, nil, err
	}

	errs := st.ApplyInput(fields)
	u.persist(ctx, userID, st)
	return st, errs, nil
}

func (u *Wizard) Next(ctx context.Context, userID uuid.UUID, kind profile.Kind) (profile.State, map[string]string, error) {
	st, err := u.load(ctx, userID, kind)
	if err != nil {
		return profile.State{}, nil, err
	}

	errs := st.Next()
	u.persist(ctx, userID, st)
	return st, errs, nil
}

func (u *Wizard) Prev(ctx context.Context, userID uuid.UUID, kind profile.Kind) (profile.State, error) {
	st, err := u.load(ctx, userID, kind)
	if err != nil {
		return profile.State{}, err
	}

	st.Prev()
	u.persist(ctx, userID, st)
	return st, nil
}

// Submit validates the whole wizard, re-checks that the caller is a
// known user without an existing profile of this kind, and inserts the
// record. The user's estado moves to pendiente in the same transaction.
func (u *Wizard) Submit(ctx context.Context, userID uuid.UUID, kind profile.Kind) (profile.Record, map[string]string, error) {
	st, err := u.load(ctx, userID, kind)
	if err != nil {
		return profile.Record{}, nil, err
	}

	if errs := st.ValidateSubmit(); len(errs) > 0 {
		return profile.Record{}, errs, nil
	}

	if _, err := u.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return profile.Record{}, nil, ErrUnauthorized
		}
		return profile.Record{}, nil, ErrInternal
	}

	exists, err := u.profiles.ExistsByUserID(ctx, kind, userID)
	if err != nil {
		return profile.Record{}, nil, ErrInternal
	}
	if exists {
		return profile.Record{}, nil, ErrDuplicate
	}

	rec := recordFromState(userID, st)
	created, err := u.profiles.Create(ctx, rec, profile.EstadoPendiente)
	if err != nil {
		if errors.Is(err, profile.ErrExists) {
			return profile.Record{}, nil, ErrDuplicate
		}
		return profile.Record{}, nil, ErrInternal
	}

	if u.sessions != nil {
		_ = u.sessions.Delete(ctx, wizardSessionKey(userID, kind))
	}
	if u.logger != nil {
		u.logger.Printf("[Wizard] profile created | kind=%s user=%s", kind, userID)
	}
	return created, nil, nil
}

func (u *Wizard) load(ctx context.Context, userID uuid.UUID, kind profile.Kind) (profile.State, error) {
	if userID == uuid.Nil || !kind.Valid() {
		return profile.State{}, ErrInvalidInput
	}

	var st profile.State
	if u.sessions != nil {
		hit, err := u.sessions.GetJSON(ctx, wizardSessionKey(userID, kind), &st)
		if err == nil && hit && st.Kind == kind {
			return st, nil
		}
	}
	return u.Start(ctx, userID, kind)
}

func (u *Wizard) persist(ctx context.Context, userID uuid.UUID, st profile.State) {
	if u.sessions == nil {
		return
	}
	if err := u.sessions.SetJSON(ctx, wizardSessionKey(userID, st.Kind), st, u.sessionTTL); err != nil && u.logger != nil {
		u.logger.Printf("[Wizard] session save failed | user=%s err=%v", userID, err)
	}
}

func prefillFromRecord(st *profile.State, rec profile.Record) {
	st.Fields[profile.FieldNombre] = rec.Nombre
	st.Fields[profile.FieldApellido] = rec.Apellido
	st.Fields[profile.FieldCI] = rec.CI
	if rec.FechaNacimiento != nil {
		st.Fields[profile.FieldFechaNacimiento] = rec.FechaNacimiento.Format("2006-01-02")
	}
	st.Fields[profile.FieldGenero] = rec.Genero
	st.Fields[profile.FieldAsociacion] = rec.Asociacion
	st.Fields[profile.FieldMunicipio] = rec.Municipio
	for k, v := range rec.Datos {
		st.Fields[k] = v
	}

	if rec.Nombre != "" {
		st.Locked = []string{
			profile.FieldNombre,
			profile.FieldApellido,
			profile.FieldCI,
			profile.FieldFechaNacimiento,
			profile.FieldGenero,
		}
	}
}

func recordFromState(userID uuid.UUID, st profile.State) profile.Record {
	rec := profile.Record{
		ID:         uuid.New(),
		UserID:     userID,
		Kind:       st.Kind,
		Nombre:     st.Fields[profile.FieldNombre],
		Apellido:   st.Fields[profile.FieldApellido],
		CI:         st.Fields[profile.FieldCI],
		Genero:     st.Fields[profile.FieldGenero],
		Asociacion: st.Fields[profile.FieldAsociacion],
		Municipio:  st.Fields[profile.FieldMunicipio],
		Datos:      make(map[string]string),
	}

	if fn, err := time.Parse("2006-01-02", st.Fields[profile.FieldFechaNacimiento]); err == nil {
		rec.FechaNacimiento = &fn
	}

	structural := map[string]bool{
		profile.FieldNombre:          true,
		profile.FieldApellido:        true,
		profile.FieldCI:              true,
		profile.FieldFechaNacimiento: true,
		profile.FieldGenero:          true,
		profile.FieldAsociacion:      true,
		profile.FieldMunicipio:       true,
	}
	for k, v := range st.Fields {
		if structural[k] {
			continue
		}
		rec.Datos[k] = v
	}
	return rec
}
