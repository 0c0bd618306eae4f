package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"talento-joven/internal/domain/offer"
)

type mockOfferRepo struct {
	offers  map[uuid.UUID]offer.JobOffer
	deletes int
	lists   int
}

func newMockOfferRepo() *mockOfferRepo {
	return &mockOfferRepo{offers: make(map[uuid.UUID]offer.JobOffer)}
}

func (m *mockOfferRepo) List(_ context.Context, f offer.ListFilter) ([]offer.JobOffer, int, error) {
	m.lists++
	out := make([]offer.JobOffer, 0, len(m.offers))
	for _, o := range m.offers {
		out = append(out, o)
	}
	return out, len(out), nil
}

func (m *mockOfferRepo) GetByID(_ context.Context, id uuid.UUID) (offer.JobOffer, error) {
	o, ok := m.offers[id]
	if !ok {
		return offer.JobOffer{}, offer.ErrNotFound
	}
	return o, nil
}

func (m *mockOfferRepo) Create(_ context.Context, o offer.JobOffer) (offer.JobOffer, error) {
	m.offers[o.ID] = o
	return o, nil
}

func (m *mockOfferRepo) Update(_ context.Context, o offer.JobOffer) (offer.JobOffer, error) {
	if _, ok := m.offers[o.ID]; !ok {
		return offer.JobOffer{}, offer.ErrNotFound
	}
	m.offers[o.ID] = o
	return o, nil
}

func (m *mockOfferRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.offers[id]; !ok {
		return offer.ErrNotFound
	}
	delete(m.offers, id)
	m.deletes++
	return nil
}

func (m *mockOfferRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	o, ok := m.offers[id]
	if !ok {
		return offer.ErrNotFound
	}
	o.Views++
	m.offers[id] = o
	return nil
}

type mockNotifier struct {
	events []string
}

func (m *mockNotifier) Broadcast(event string, _ any) {
	m.events = append(m.events, event)
}

func TestOfferAdmin_Delete_RequiresConfirmation(t *testing.T) {
	repo := newMockOfferRepo()
	id := uuid.New()
	repo.offers[id] = offer.JobOffer{ID: id, Title: "Desarrollador"}
	cache := newMapCache()
	cache.m["offers:list:abc"] = []byte("{}")
	notifier := &mockNotifier{}
	uc := NewOfferAdminUsecase(repo, cache, notifier, nil)

	err := uc.Delete(context.Background(), id, false)
	if !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if repo.deletes != 0 {
		t.Fatalf("unconfirmed delete must not touch the repository")
	}
	if _, ok := cache.m["offers:list:abc"]; !ok {
		t.Fatalf("unconfirmed delete must not invalidate the cache")
	}
	if len(notifier.events) != 0 {
		t.Fatalf("unconfirmed delete must not broadcast")
	}
}

func TestOfferAdmin_Delete_Confirmed(t *testing.T) {
	repo := newMockOfferRepo()
	id := uuid.New()
	repo.offers[id] = offer.JobOffer{ID: id, Title: "Desarrollador"}
	cache := newMapCache()
	cache.m["offers:list:abc"] = []byte("{}")
	notifier := &mockNotifier{}
	uc := NewOfferAdminUsecase(repo, cache, notifier, nil)

	if err := uc.Delete(context.Background(), id, true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.deletes != 1 {
		t.Fatalf("expected one delete")
	}
	if _, ok := cache.m["offers:list:abc"]; ok {
		t.Fatalf("expected cached listings to be invalidated")
	}
	if len(notifier.events) != 1 || notifier.events[0] != "offer.deleted" {
		t.Fatalf("expected offer.deleted broadcast, got %v", notifier.events)
	}
}

func TestOfferAdmin_List_CachesPages(t *testing.T) {
	repo := newMockOfferRepo()
	id := uuid.New()
	repo.offers[id] = offer.JobOffer{ID: id, Title: "Desarrollador", Status: offer.StatusActive}
	uc := NewOfferAdminUsecase(repo, newMapCache(), nil, nil)

	f := offer.ListFilter{Page: 1, PageSize: 10}
	if _, err := uc.List(context.Background(), f); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	page, err := uc.List(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lists != 1 {
		t.Fatalf("expected second list to hit the cache, repo saw %d", repo.lists)
	}
	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("unexpected cached page: %+v", page)
	}
}

func TestOfferAdmin_Create_ValidatesSalaryRange(t *testing.T) {
	uc := NewOfferAdminUsecase(newMockOfferRepo(), nil, nil, nil)

	lo, hi := int64(5000), int64(3000)
	_, err := uc.Create(context.Background(), offer.JobOffer{
		Title:     "Desarrollador",
		SalaryMin: &lo,
		SalaryMax: &hi,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOfferAdmin_Get_CountsView(t *testing.T) {
	repo := newMockOfferRepo()
	id := uuid.New()
	repo.offers[id] = offer.JobOffer{ID: id, Title: "Desarrollador"}
	uc := NewOfferAdminUsecase(repo, nil, nil, nil)

	o, err := uc.Get(context.Background(), id, true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if o.Views != 1 {
		t.Fatalf("expected incremented view count, got %d", o.Views)
	}
}
