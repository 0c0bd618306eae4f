package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"talento-joven/internal/domain/profile"
	"talento-joven/internal/domain/user"
)

type mockProfileRepo struct {
	records map[uuid.UUID]profile.Record
	estado  string
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{records: make(map[uuid.UUID]profile.Record)}
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, _ profile.Kind, userID uuid.UUID) (profile.Record, error) {
	rec, ok := m.records[userID]
	if !ok {
		return profile.Record{}, profile.ErrNotFound
	}
	return rec, nil
}

func (m *mockProfileRepo) ExistsByUserID(_ context.Context, _ profile.Kind, userID uuid.UUID) (bool, error) {
	_, ok := m.records[userID]
	return ok, nil
}

func (m *mockProfileRepo) Create(_ context.Context, rec profile.Record, estado string) (profile.Record, error) {
	if _, ok := m.records[rec.UserID]; ok {
		return profile.Record{}, profile.ErrExists
	}
	m.records[rec.UserID] = rec
	m.estado = estado
	return rec, nil
}

func (m *mockProfileRepo) Update(_ context.Context, rec profile.Record) error {
	m.records[rec.UserID] = rec
	return nil
}

type mockUserRepo struct {
	users map[uuid.UUID]user.User
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error { m.users[u.ID] = u; return nil }
func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}
func (m *mockUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (m *mockUserRepo) Update(_ context.Context, u user.User) error { m.users[u.ID] = u; return nil }

type mapCache struct {
	m map[string][]byte
}

func newMapCache() *mapCache { return &mapCache{m: make(map[string][]byte)} }

func (c *mapCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.m[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.m[key] = b
	return nil
}

func (c *mapCache) Delete(_ context.Context, key string) error {
	delete(c.m, key)
	return nil
}

func (c *mapCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := pattern[:len(pattern)-1]
	for k := range c.m {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.m, k)
		}
	}
	return nil
}

func (c *mapCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	if _, ok := c.m[key]; ok {
		return false, nil
	}
	c.m[key] = []byte(value)
	return true, nil
}

func completeAthleteFields() map[string]string {
	return map[string]string{
		profile.FieldNombre:             "Ana",
		profile.FieldApellido:           "Rojas",
		profile.FieldCI:                 "1234567",
		profile.FieldFechaNacimiento:    "2005-04-12",
		profile.FieldGenero:             "F",
		profile.FieldTelefono:           "71234567",
		profile.FieldEmail:              "ana@example.com",
		profile.FieldDireccion:          "Av. Siempre Viva 123",
		profile.FieldAsociacion:         "Cochabamba",
		profile.FieldMunicipio:          "Sacaba",
		profile.FieldDisciplina:         "Atletismo",
		profile.FieldCategoria:          "Juvenil",
		profile.FieldEstatura:           "165",
		profile.FieldPeso:               "55",
		profile.FieldEmergenciaNombre:   "Maria Rojas",
		profile.FieldEmergenciaTelefono: "72345678",
		profile.FieldEmergenciaRelacion: "Madre",
		profile.FieldFoto:               "/files/foto.jpg",
		profile.FieldCIAnverso:          "/files/ci_a.jpg",
		profile.FieldCIReverso:          "/files/ci_r.jpg",
	}
}

func newWizardFixture(t *testing.T) (*Wizard, *mockProfileRepo, *mockUserRepo, uuid.UUID) {
	t.Helper()
	profiles := newMockProfileRepo()
	users := &mockUserRepo{users: make(map[uuid.UUID]user.User)}
	userID := uuid.New()
	users.users[userID] = user.User{ID: userID, Email: "ana@example.com", Role: user.RoleUser, Estado: profile.EstadoSinPerfil}
	uc := NewWizardUsecase(profiles, users, newMapCache(), time.Hour, nil)
	return uc, profiles, users, userID
}

func advanceToReview(t *testing.T, uc *Wizard, userID uuid.UUID, kind profile.Kind) {
	t.Helper()
	for i := profile.FirstStep; i < profile.LastStep; i++ {
		_, errs, err := uc.Next(context.Background(), userID, kind)
		if err != nil {
			t.Fatalf("unexpected err at step %d: %v", i, err)
		}
		if len(errs) > 0 {
			t.Fatalf("unexpected field errors at step %d: %v", i, errs)
		}
	}
}

func TestWizard_FullRegistration(t *testing.T) {
	uc, profiles, _, userID := newWizardFixture(t)
	ctx := context.Background()

	st, err := uc.Start(ctx, userID, profile.KindAthlete)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if st.CurrentStep != profile.FirstStep {
		t.Fatalf("expected fresh session on first step, got %d", st.CurrentStep)
	}

	if _, errs, err := uc.Input(ctx, userID, profile.KindAthlete, completeAthleteFields()); err != nil || len(errs) > 0 {
		t.Fatalf("unexpected input failure: %v %v", errs, err)
	}

	advanceToReview(t, uc, userID, profile.KindAthlete)

	rec, errs, err := uc.Submit(ctx, userID, profile.KindAthlete)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(errs) > 0 {
		t.Fatalf("unexpected submit errors: %v", errs)
	}
	if rec.Nombre != "Ana" || rec.Kind != profile.KindAthlete {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.Datos[profile.FieldDisciplina] != "Atletismo" {
		t.Fatalf("expected wizard extras in datos")
	}
	if profiles.estado != profile.EstadoPendiente {
		t.Fatalf("expected user estado pendiente, got %q", profiles.estado)
	}
}

func TestWizard_Submit_SentinelAssociationRejectsMunicipio(t *testing.T) {
	uc, _, _, userID := newWizardFixture(t)
	ctx := context.Background()

	if _, err := uc.Start(ctx, userID, profile.KindAthlete); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	fields := completeAthleteFields()
	fields[profile.FieldAsociacion] = profile.SentinelAssociation
	fields[profile.FieldMunicipio] = "Montero"
	if _, errs, err := uc.Input(ctx, userID, profile.KindAthlete, fields); err != nil || len(errs) > 0 {
		t.Fatalf("unexpected input failure: %v %v", errs, err)
	}

	advanceToReview(t, uc, userID, profile.KindAthlete)

	_, errs, err := uc.Submit(ctx, userID, profile.KindAthlete)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if errs[profile.FieldMunicipio] == "" {
		t.Fatalf("expected municipio error for sentinel association")
	}
}

func TestWizard_Submit_DuplicateProfile(t *testing.T) {
	uc, profiles, _, userID := newWizardFixture(t)
	ctx := context.Background()

	fn, _ := time.Parse("2006-01-02", "2005-04-12")
	profiles.records[userID] = profile.Record{
		UserID:          userID,
		Kind:            profile.KindAthlete,
		Nombre:          "Ana",
		Apellido:        "Rojas",
		CI:              "1234567",
		FechaNacimiento: &fn,
		Genero:          "F",
	}

	// prefilled session from the stored record, then force to review
	if _, err := uc.Start(ctx, userID, profile.KindAthlete); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, errs, err := uc.Input(ctx, userID, profile.KindAthlete, completeAthleteFields()); err != nil {
		t.Fatalf("unexpected err: %v %v", errs, err)
	}
	advanceToReview(t, uc, userID, profile.KindAthlete)

	_, _, err := uc.Submit(ctx, userID, profile.KindAthlete)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestWizard_Start_LocksPersonalFieldsForExistingProfile(t *testing.T) {
	uc, profiles, _, userID := newWizardFixture(t)

	profiles.records[userID] = profile.Record{UserID: userID, Kind: profile.KindAthlete, Nombre: "Ana", Apellido: "Rojas"}

	st, err := uc.Start(context.Background(), userID, profile.KindAthlete)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if st.Fields[profile.FieldNombre] != "Ana" {
		t.Fatalf("expected prefilled name")
	}
	locked := false
	for _, k := range st.Locked {
		if k == profile.FieldNombre {
			locked = true
		}
	}
	if !locked {
		t.Fatalf("expected nombre to be locked")
	}
}

func TestWizard_InvalidKind(t *testing.T) {
	uc, _, _, userID := newWizardFixture(t)
	if _, err := uc.Start(context.Background(), userID, profile.Kind("arbitro")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
