package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"talento-joven/internal/domain/offer"
)

const (
	offersCacheEntity = "offers"
	listCacheTTL      = 5 * time.Minute
)

// OfferPage is one page of a listing plus the totals the pagination
// envelope needs.
type OfferPage struct {
	Items    []offer.JobOffer
	Total    int
	Page     int
	PageSize int
}

type OfferAdminUsecase interface {
	List(ctx context.Context, f offer.ListFilter) (OfferPage, error)
	Get(ctx context.Context, id uuid.UUID, countView bool) (offer.JobOffer, error)
	Create(ctx context.Context, o offer.JobOffer) (offer.JobOffer, error)
	Update(ctx context.Context, o offer.JobOffer) (offer.JobOffer, error)
	Delete(ctx context.Context, id uuid.UUID, confirm bool) error
}

type OfferAdmin struct {
	offers   offer.Repository
	cache    Cache
	notifier AdminNotifier
	logger   *log.Logger
}

func NewOfferAdminUsecase(offers offer.Repository, cache Cache, notifier AdminNotifier, logger *log.Logger) *OfferAdmin {
	return &OfferAdmin{offers: offers, cache: cache, notifier: notifier, logger: logger}
}

func (u *OfferAdmin) List(ctx context.Context, f offer.ListFilter) (OfferPage, error) {
	f = normalizeOfferFilter(f)
	if f.Status != "" && !f.Status.Valid() {
		return OfferPage{}, ErrInvalidInput
	}

	key := ListCacheKey(offersCacheEntity, f.Search, string(f.Status), f.Page, f.PageSize)
	if u.cache != nil {
		var cached OfferPage
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Offers] Cache HIT: %s", key)
			}
			return cached, nil
		}
	}

	items, total, err := u.offers.List(ctx, f)
	if err != nil {
		return OfferPage{}, ErrInternal
	}

	page := OfferPage{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, page, listCacheTTL)
	}
	return page, nil
}

func (u *OfferAdmin) Get(ctx context.Context, id uuid.UUID, countView bool) (offer.JobOffer, error) {
	if id == uuid.Nil {
		return offer.JobOffer{}, ErrInvalidInput
	}

	o, err := u.offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, offer.ErrNotFound) {
			return offer.JobOffer{}, ErrNotFound
		}
		return offer.JobOffer{}, ErrInternal
	}

	if countView {
		if err := u.offers.IncrementViews(ctx, id); err == nil {
			o.Views++
		}
	}
	return o, nil
}

func (u *OfferAdmin) Create(ctx context.Context, o offer.JobOffer) (offer.JobOffer, error) {
	o, err := sanitizeOffer(o)
	if err != nil {
		return offer.JobOffer{}, err
	}
	o.ID = uuid.New()

	created, err := u.offers.Create(ctx, o)
	if err != nil {
		return offer.JobOffer{}, ErrInternal
	}

	u.invalidate(ctx)
	u.notify("offer.created", created.ID)
	return created, nil
}

func (u *OfferAdmin) Update(ctx context.Context, o offer.JobOffer) (offer.JobOffer, error) {
	if o.ID == uuid.Nil {
		return offer.JobOffer{}, ErrInvalidInput
	}
	o, err := sanitizeOffer(o)
	if err != nil {
		return offer.JobOffer{}, err
	}

	updated, err := u.offers.Update(ctx, o)
	if err != nil {
		if errors.Is(err, offer.ErrNotFound) {
			return offer.JobOffer{}, ErrNotFound
		}
		return offer.JobOffer{}, ErrInternal
	}

	u.invalidate(ctx)
	u.notify("offer.updated", updated.ID)
	return updated, nil
}

// Delete removes an offer only when the confirmation flag is set. An
// unconfirmed call is rejected before any state, cache included, is
// touched.
func (u *OfferAdmin) Delete(ctx context.Context, id uuid.UUID, confirm bool) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if !confirm {
		return ErrConfirmationRequired
	}

	if err := u.offers.Delete(ctx, id); err != nil {
		if errors.Is(err, offer.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.invalidate(ctx)
	u.notify("offer.deleted", id)
	return nil
}

func (u *OfferAdmin) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, ListCachePattern(offersCacheEntity)); err != nil && u.logger != nil {
		u.logger.Printf("[Offers] cache invalidation failed | err=%v", err)
	}
}

func (u *OfferAdmin) notify(event string, id uuid.UUID) {
	if u.notifier == nil {
		return
	}
	u.notifier.Broadcast(event, map[string]string{"id": id.String()})
}

func normalizeOfferFilter(f offer.ListFilter) offer.ListFilter {
	f.Search = strings.TrimSpace(f.Search)
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 10
	}
	return f
}

func sanitizeOffer(o offer.JobOffer) (offer.JobOffer, error) {
	o.Title = strings.TrimSpace(o.Title)
	o.Location = strings.TrimSpace(o.Location)
	if o.Title == "" {
		return offer.JobOffer{}, ErrInvalidInput
	}
	if o.Status == "" {
		o.Status = offer.StatusDraft
	}
	if !o.Status.Valid() {
		return offer.JobOffer{}, ErrInvalidInput
	}
	if o.SalaryMin != nil && o.SalaryMax != nil && *o.SalaryMin > *o.SalaryMax {
		return offer.JobOffer{}, ErrInvalidInput
	}
	if o.SalaryCurrency == "" && (o.SalaryMin != nil || o.SalaryMax != nil) {
		o.SalaryCurrency = "BOB"
	}
	return o, nil
}
