package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"talento-joven/internal/domain/cv"
	"talento-joven/internal/pkg/coalesce"
)

type CoverLetterInput struct {
	Subject   string
	Content   string
	Recipient cv.Recipient
}

type CoverLetterUsecase interface {
	GetLetter(ctx context.Context, userID uuid.UUID) (cv.CoverLetter, error)
	SaveLetter(ctx context.Context, userID uuid.UUID, in CoverLetterInput) (cv.CoverLetter, error)
	FlushPending(userID uuid.UUID)
	Close()
}

// Letters mirrors the CV usecase for the cover-letter editor, with the
// same buffered-write behavior.
type Letters struct {
	letters cv.CoverLetterRepository
	writer  *coalesce.Writer
	logger  *log.Logger

	mu      sync.Mutex
	pending map[uuid.UUID]cv.CoverLetter
}

func NewCoverLetterUsecase(letters cv.CoverLetterRepository, window time.Duration, logger *log.Logger) *Letters {
	u := &Letters{
		letters: letters,
		logger:  logger,
		pending: make(map[uuid.UUID]cv.CoverLetter),
	}
	u.writer = coalesce.NewWriter(window, u.flush)
	return u
}

func (u *Letters) GetLetter(ctx context.Context, userID uuid.UUID) (cv.CoverLetter, error) {
	if userID == uuid.Nil {
		return cv.CoverLetter{}, ErrInvalidInput
	}
	return u.current(ctx, userID)
}

func (u *Letters) SaveLetter(ctx context.Context, userID uuid.UUID, in CoverLetterInput) (cv.CoverLetter, error) {
	if userID == uuid.Nil {
		return cv.CoverLetter{}, ErrInvalidInput
	}

	cur, err := u.current(ctx, userID)
	if err != nil {
		return cv.CoverLetter{}, err
	}

	cur.Subject = strings.TrimSpace(in.Subject)
	cur.Content = in.Content
	cur.Recipient = cv.Recipient{
		Department: strings.TrimSpace(in.Recipient.Department),
		Company:    strings.TrimSpace(in.Recipient.Company),
		Address:    strings.TrimSpace(in.Recipient.Address),
		City:       strings.TrimSpace(in.Recipient.City),
		Country:    strings.TrimSpace(in.Recipient.Country),
	}

	u.schedule(cur)
	return cur, nil
}

func (u *Letters) FlushPending(userID uuid.UUID) {
	u.writer.Flush(userID.String())
}

func (u *Letters) Close() {
	u.writer.Close()
}

func (u *Letters) current(ctx context.Context, userID uuid.UUID) (cv.CoverLetter, error) {
	u.mu.Lock()
	if cl, ok := u.pending[userID]; ok {
		u.mu.Unlock()
		return cl, nil
	}
	u.mu.Unlock()

	cl, err := u.letters.GetByUserID(ctx, userID)
	if err == nil {
		return cl, nil
	}
	if !errors.Is(err, cv.ErrNotFound) {
		return cv.CoverLetter{}, ErrInternal
	}

	cl = cv.NewCoverLetter(userID)
	if err := u.letters.Create(ctx, cl); err != nil {
		return cv.CoverLetter{}, ErrInternal
	}
	return cl, nil
}

func (u *Letters) schedule(cl cv.CoverLetter) {
	u.mu.Lock()
	u.pending[cl.UserID] = cl
	u.mu.Unlock()
	u.writer.Set(cl.UserID.String(), cl)
}

func (u *Letters) flush(key string, value any) {
	cl, ok := value.(cv.CoverLetter)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := u.letters.Update(ctx, cl); err != nil {
		if u.logger != nil {
			u.logger.Printf("[CoverLetter] flush failed | user=%s err=%v", key, err)
		}
		return
	}

	u.mu.Lock()
	delete(u.pending, cl.UserID)
	u.mu.Unlock()
}
