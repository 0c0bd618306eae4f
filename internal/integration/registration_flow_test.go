package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"talento-joven/internal/delivery/http/middleware"
	"talento-joven/internal/delivery/http/routes"
	v1 "talento-joven/internal/delivery/http/routes/v1"
	"talento-joven/internal/domain/profile"
	"talento-joven/internal/domain/user"
	"talento-joven/internal/pkg/jwt"
	"talento-joven/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]user.User)}
}

func (r *memUserRepo) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *memUserRepo) Update(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

type memProfileRepo struct {
	mu      sync.Mutex
	records map[string]profile.Record
	estados map[uuid.UUID]string
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{
		records: make(map[string]profile.Record),
		estados: make(map[uuid.UUID]string),
	}
}

func profileKey(kind profile.Kind, userID uuid.UUID) string {
	return string(kind) + ":" + userID.String()
}

func (r *memProfileRepo) GetByUserID(_ context.Context, kind profile.Kind, userID uuid.UUID) (profile.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[profileKey(kind, userID)]
	if !ok {
		return profile.Record{}, profile.ErrNotFound
	}
	return rec, nil
}

func (r *memProfileRepo) ExistsByUserID(_ context.Context, kind profile.Kind, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.records[profileKey(kind, userID)]
	return ok, nil
}

func (r *memProfileRepo) Create(_ context.Context, rec profile.Record, estado string) (profile.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	r.records[profileKey(rec.Kind, rec.UserID)] = rec
	r.estados[rec.UserID] = estado
	return rec, nil
}

func (r *memProfileRepo) Update(_ context.Context, rec profile.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[profileKey(rec.Kind, rec.UserID)] = rec
	return nil
}

type memCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{items: make(map[string][]byte)}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = b
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
		}
	}
	return nil
}

func (c *memCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return false, nil
	}
	c.items[key] = []byte(value)
	return true, nil
}

func newTestApp(t *testing.T) (*fiber.App, *memProfileRepo) {
	t.Helper()

	users := newMemUserRepo()
	profiles := newMemProfileRepo()
	sessions := newMemCache()

	jwtSvc := jwt.NewHMACService("test-access-secret", "test-refresh-secret", 15*time.Minute, 24*time.Hour)

	deps := v1.Deps{
		Auth:   usecase.NewAuthUsecase(users, jwtSvc),
		Wizard: usecase.NewWizardUsecase(profiles, users, sessions, time.Hour, nil),
		AuthMw: middleware.NewAuthMiddleware(jwtSvc),
	}

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware().Middleware())
	routes.NewRegistry(deps).Register(app)

	return app, profiles
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) semanticResponse {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("%s %s decode: %v", method, path, err)
	}
	return sr
}

func registerAndLogin(t *testing.T, app *fiber.App) string {
	t.Helper()

	reg := doJSON(t, app, "POST", "/api/v1/auth/register", "", map[string]string{
		"email":     "ana@example.com",
		"password":  "secreta123",
		"full_name": "Ana Rojas",
	})
	if reg.Status != 200 {
		t.Fatalf("register: expected 200, got %d (%s)", reg.Status, reg.Message)
	}

	login := doJSON(t, app, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "ana@example.com",
		"password": "secreta123",
	})
	if login.Status != 200 {
		t.Fatalf("login: expected 200, got %d (%s)", login.Status, login.Message)
	}

	var data struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(login.Data, &data); err != nil {
		t.Fatalf("login data: %v", err)
	}
	if data.AccessToken == "" {
		t.Fatalf("login: missing access_token")
	}
	return data.AccessToken
}

func athleteFields() map[string]string {
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

func TestIntegration_AthleteRegistrationFlow(t *testing.T) {
	app, profiles := newTestApp(t)
	token := registerAndLogin(t, app)

	start := doJSON(t, app, "POST", "/api/v1/wizard/atleta/start", token, nil)
	if start.Status != 200 {
		t.Fatalf("start: expected 200, got %d (%s)", start.Status, start.Message)
	}

	input := doJSON(t, app, "PUT", "/api/v1/wizard/atleta/fields", token, map[string]any{
		"fields": athleteFields(),
	})
	if input.Status != 200 {
		t.Fatalf("fields: expected 200, got %d (%s)", input.Status, input.Message)
	}

	for i := profile.FirstStep; i < profile.LastStep; i++ {
		next := doJSON(t, app, "POST", "/api/v1/wizard/atleta/next", token, nil)
		if next.Status != 200 {
			t.Fatalf("next at step %d: expected 200, got %d (%s)", i, next.Status, next.Message)
		}
	}

	submit := doJSON(t, app, "POST", "/api/v1/wizard/atleta/submit", token, nil)
	if submit.Status != 201 {
		t.Fatalf("submit: expected 201, got %d (%s)", submit.Status, submit.Message)
	}

	var created struct {
		ID     string `json:"id"`
		Nombre string `json:"nombre"`
	}
	if err := json.Unmarshal(submit.Data, &created); err != nil {
		t.Fatalf("submit data: %v", err)
	}
	if created.Nombre != "Ana" {
		t.Fatalf("submit: expected nombre Ana, got %q", created.Nombre)
	}

	if len(profiles.records) != 1 {
		t.Fatalf("expected one stored profile, got %d", len(profiles.records))
	}
	for _, estado := range profiles.estados {
		if estado != profile.EstadoPendiente {
			t.Fatalf("expected estado %q, got %q", profile.EstadoPendiente, estado)
		}
	}
}

func TestIntegration_WizardRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)

	start := doJSON(t, app, "POST", "/api/v1/wizard/atleta/start", "", nil)
	if start.Status != 401 {
		t.Fatalf("expected 401 without token, got %d", start.Status)
	}
}

func TestIntegration_SantaCruzRejectsMunicipio(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app)

	if sr := doJSON(t, app, "POST", "/api/v1/wizard/atleta/start", token, nil); sr.Status != 200 {
		t.Fatalf("start: %d", sr.Status)
	}

	fields := athleteFields()
	fields[profile.FieldAsociacion] = "Santa Cruz"

	input := doJSON(t, app, "PUT", "/api/v1/wizard/atleta/fields", token, map[string]any{
		"fields": fields,
	})
	if input.Status != 200 {
		t.Fatalf("fields: expected 200, got %d (%s)", input.Status, input.Message)
	}

	for i := profile.FirstStep; i < profile.LastStep; i++ {
		if sr := doJSON(t, app, "POST", "/api/v1/wizard/atleta/next", token, nil); sr.Status != 200 {
			t.Fatalf("next at step %d: got %d (%s)", i, sr.Status, sr.Message)
		}
	}

	submit := doJSON(t, app, "POST", "/api/v1/wizard/atleta/submit", token, nil)
	if submit.Status != 422 {
		t.Fatalf("submit: expected 422 for Santa Cruz + municipio, got %d", submit.Status)
	}
	if !strings.Contains(string(submit.Data), profile.FieldMunicipio) {
		t.Fatalf("expected %s field error, got %s", profile.FieldMunicipio, submit.Data)
	}
}
