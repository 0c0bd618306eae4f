package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"talento-joven/internal/domain/cv"
	"talento-joven/internal/pkg/coalesce"
)

const flushTimeout = 5 * time.Second

type CVUsecase interface {
	GetDocument(ctx context.Context, userID uuid.UUID) (cv.Document, error)
	SaveDocument(ctx context.Context, userID uuid.UUID, doc cv.Document) (cv.Document, error)
	AddSkill(ctx context.Context, userID uuid.UUID, s cv.Skill) (cv.Document, error)
	RemoveSkill(ctx context.Context, userID uuid.UUID, name string) (cv.Document, error)
	AddInterest(ctx context.Context, userID uuid.UUID, name string) (cv.Document, error)
	RemoveInterest(ctx context.Context, userID uuid.UUID, name string) (cv.Document, error)
	FlushPending(userID uuid.UUID)
	Close()
}

// CV serves the document builder. Edits are accepted immediately against
// an in-memory copy and persisted through a coalescing writer, so a
// typing burst produces one UPDATE instead of one per keystroke.
type CV struct {
	docs   cv.Repository
	writer *coalesce.Writer
	logger *log.Logger

	mu      sync.Mutex
	pending map[uuid.UUID]cv.Document
}

func NewCVUsecase(docs cv.Repository, window time.Duration, logger *log.Logger) *CV {
	u := &CV{
		docs:    docs,
		logger:  logger,
		pending: make(map[uuid.UUID]cv.Document),
	}
	u.writer = coalesce.NewWriter(window, u.flush)
	return u
}

func (u *CV) GetDocument(ctx context.Context, userID uuid.UUID) (cv.Document, error) {
	if userID == uuid.Nil {
		return cv.Document{}, ErrInvalidInput
	}
	return u.current(ctx, userID)
}

// SaveDocument replaces the stored document with the submitted one,
// keeping server-owned identity fields, and schedules persistence.
func (u *CV) SaveDocument(ctx context.Context, userID uuid.UUID, doc cv.Document) (cv.Document, error) {
	if userID == uuid.Nil {
		return cv.Document{}, ErrInvalidInput
	}

	cur, err := u.current(ctx, userID)
	if err != nil {
		return cv.Document{}, err
	}

	doc.ID = cur.ID
	doc.UserID = userID
	doc.CreatedAt = cur.CreatedAt
	u.schedule(doc)
	return doc, nil
}

func (u *CV) AddSkill(ctx context.Context, userID uuid.UUID, s cv.Skill) (cv.Document, error) {
	return u.mutate(ctx, userID, func(d *cv.Document) bool { return d.AddSkill(s) })
}

func (u *CV) RemoveSkill(ctx context.Context, userID uuid.UUID, name string) (cv.Document, error) {
	return u.mutate(ctx, userID, func(d *cv.Document) bool { return d.RemoveSkill(name) })
}

func (u *CV) AddInterest(ctx context.Context, userID uuid.UUID, name string) (cv.Document, error) {
	return u.mutate(ctx, userID, func(d *cv.Document) bool { return d.AddInterest(name) })
}

func (u *CV) RemoveInterest(ctx context.Context, userID uuid.UUID, name string) (cv.Document, error) {
	return u.mutate(ctx, userID, func(d *cv.Document) bool { return d.RemoveInterest(name) })
}

// FlushPending forces the buffered write for a user, if any. Export
// calls this so the PDF never trails the editor.
func (u *CV) FlushPending(userID uuid.UUID) {
	u.writer.Flush(userID.String())
}

func (u *CV) Close() {
	u.writer.Close()
}

func (u *CV) mutate(ctx context.Context, userID uuid.UUID, fn func(*cv.Document) bool) (cv.Document, error) {
	if userID == uuid.Nil {
		return cv.Document{}, ErrInvalidInput
	}

	doc, err := u.current(ctx, userID)
	if err != nil {
		return cv.Document{}, err
	}
	if fn(&doc) {
		u.schedule(doc)
	}
	return doc, nil
}

// current returns the freshest view of a user's document: the pending
// buffered copy when one exists, otherwise the stored row, creating an
// empty document on first access.
func (u *CV) current(ctx context.Context, userID uuid.UUID) (cv.Document, error) {
	u.mu.Lock()
	if doc, ok := u.pending[userID]; ok {
		u.mu.Unlock()
		return doc, nil
	}
	u.mu.Unlock()

	doc, err := u.docs.GetByUserID(ctx, userID)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, cv.ErrNotFound) {
		return cv.Document{}, ErrInternal
	}

	doc = cv.NewDocument(userID)
	if err := u.docs.Create(ctx, doc); err != nil {
		return cv.Document{}, ErrInternal
	}
	return doc, nil
}

func (u *CV) schedule(doc cv.Document) {
	u.mu.Lock()
	u.pending[doc.UserID] = doc
	u.mu.Unlock()
	u.writer.Set(doc.UserID.String(), doc)
}

func (u *CV) flush(key string, value any) {
	doc, ok := value.(cv.Document)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := u.docs.Update(ctx, doc); err != nil {
		if u.logger != nil {
			u.logger.Printf("[CV] flush failed | user=%s err=%v", key, err)
		}
		return
	}

	u.mu.Lock()
	delete(u.pending, doc.UserID)
	u.mu.Unlock()
}
