package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"talento-joven/internal/domain/cv"
)

type mockCVRepo struct {
	mu      sync.Mutex
	stored  map[uuid.UUID]cv.Document
	updates int
}

func newMockCVRepo() *mockCVRepo {
	return &mockCVRepo{stored: make(map[uuid.UUID]cv.Document)}
}

func (m *mockCVRepo) GetByUserID(_ context.Context, userID uuid.UUID) (cv.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.stored[userID]
	if !ok {
		return cv.Document{}, cv.ErrNotFound
	}
	return doc, nil
}

func (m *mockCVRepo) Create(_ context.Context, doc cv.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored[doc.UserID] = doc
	return nil
}

func (m *mockCVRepo) Update(_ context.Context, doc cv.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored[doc.UserID] = doc
	m.updates++
	return nil
}

func (m *mockCVRepo) updateCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updates
}

func TestCVUsecase_GetDocument_CreatesOnFirstAccess(t *testing.T) {
	repo := newMockCVRepo()
	uc := NewCVUsecase(repo, 20*time.Millisecond, nil)
	defer uc.Close()

	userID := uuid.New()
	doc, err := uc.GetDocument(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if doc.UserID != userID {
		t.Fatalf("document not bound to user")
	}
	if _, ok := repo.stored[userID]; !ok {
		t.Fatalf("expected document to be persisted on first access")
	}
}

func TestCVUsecase_EditBurst_CoalescesToOneUpdate(t *testing.T) {
	repo := newMockCVRepo()
	uc := NewCVUsecase(repo, 30*time.Millisecond, nil)
	defer uc.Close()

	userID := uuid.New()
	for _, s := range []string{"Go", "React", "SQL", "Docker"} {
		if _, err := uc.AddSkill(context.Background(), userID, cv.Skill{Name: s}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}

	time.Sleep(150 * time.Millisecond)

	if got := repo.updateCount(); got != 1 {
		t.Fatalf("expected 1 coalesced update, got %d", got)
	}
	stored := repo.stored[userID]
	if len(stored.Skills) != 4 {
		t.Fatalf("expected all 4 skills in the flushed document, got %d", len(stored.Skills))
	}
}

func TestCVUsecase_GetDocument_SeesPendingEdits(t *testing.T) {
	repo := newMockCVRepo()
	uc := NewCVUsecase(repo, 200*time.Millisecond, nil)
	defer uc.Close()

	userID := uuid.New()
	if _, err := uc.AddSkill(context.Background(), userID, cv.Skill{Name: "Go"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	doc, err := uc.GetDocument(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(doc.Skills) != 1 {
		t.Fatalf("expected pending edit to be visible before flush")
	}
}

func TestCVUsecase_FlushPending_PersistsImmediately(t *testing.T) {
	repo := newMockCVRepo()
	uc := NewCVUsecase(repo, time.Minute, nil)
	defer uc.Close()

	userID := uuid.New()
	if _, err := uc.AddSkill(context.Background(), userID, cv.Skill{Name: "Go"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	uc.FlushPending(userID)

	if got := repo.updateCount(); got != 1 {
		t.Fatalf("expected flush to persist, got %d updates", got)
	}
}
