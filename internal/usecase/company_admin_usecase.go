package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"talento-joven/internal/domain/catalog"
)

const companiesCacheEntity = "companies"

type CompanyPage struct {
	Items    []catalog.Company
	Total    int
	Page     int
	PageSize int
}

type CompanyAdminUsecase interface {
	List(ctx context.Context, f catalog.ListFilter) (CompanyPage, error)
	Get(ctx context.Context, id uuid.UUID, countView bool) (catalog.Company, error)
	Create(ctx context.Context, c catalog.Company) (catalog.Company, error)
	Update(ctx context.Context, c catalog.Company) (catalog.Company, error)
	Delete(ctx context.Context, id uuid.UUID, confirm bool) error
}

type CompanyAdmin struct {
	companies catalog.CompanyRepository
	cache     Cache
	notifier  AdminNotifier
	logger    *log.Logger
}

func NewCompanyAdminUsecase(companies catalog.CompanyRepository, cache Cache, notifier AdminNotifier, logger *log.Logger) *CompanyAdmin {
	return &CompanyAdmin{companies: companies, cache: cache, notifier: notifier, logger: logger}
}

func (u *CompanyAdmin) List(ctx context.Context, f catalog.ListFilter) (CompanyPage, error) {
	f = normalizeCatalogFilter(f)
	if f.Status != "" && !f.Status.Valid() {
		return CompanyPage{}, ErrInvalidInput
	}

	key := ListCacheKey(companiesCacheEntity, f.Search, string(f.Status), f.Page, f.PageSize)
	if u.cache != nil {
		var cached CompanyPage
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Companies] Cache HIT: %s", key)
			}
			return cached, nil
		}
	}

	items, total, err := u.companies.List(ctx, f)
	if err != nil {
		return CompanyPage{}, ErrInternal
	}

	page := CompanyPage{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, page, listCacheTTL)
	}
	return page, nil
}

func (u *CompanyAdmin) Get(ctx context.Context, id uuid.UUID, countView bool) (catalog.Company, error) {
	if id == uuid.Nil {
		return catalog.Company{}, ErrInvalidInput
	}

	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return catalog.Company{}, ErrNotFound
		}
		return catalog.Company{}, ErrInternal
	}

	if countView {
		if err := u.companies.IncrementViews(ctx, id); err == nil {
			c.Views++
		}
	}
	return c, nil
}

func (u *CompanyAdmin) Create(ctx context.Context, c catalog.Company) (catalog.Company, error) {
	c, err := sanitizeCompany(c)
	if err != nil {
		return catalog.Company{}, err
	}
	c.ID = uuid.New()

	created, err := u.companies.Create(ctx, c)
	if err != nil {
		return catalog.Company{}, ErrInternal
	}

	u.invalidate(ctx)
	u.notify("company.created", created.ID)
	return created, nil
}

func (u *CompanyAdmin) Update(ctx context.Context, c catalog.Company) (catalog.Company, error) {
	if c.ID == uuid.Nil {
		return catalog.Company{}, ErrInvalidInput
	}
	c, err := sanitizeCompany(c)
	if err != nil {
		return catalog.Company{}, err
	}

	updated, err := u.companies.Update(ctx, c)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return catalog.Company{}, ErrNotFound
		}
		return catalog.Company{}, ErrInternal
	}

	u.invalidate(ctx)
	u.notify("company.updated", updated.ID)
	return updated, nil
}

func (u *CompanyAdmin) Delete(ctx context.Context, id uuid.UUID, confirm bool) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if !confirm {
		return ErrConfirmationRequired
	}

	if err := u.companies.Delete(ctx, id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.invalidate(ctx)
	u.notify("company.deleted", id)
	return nil
}

func (u *CompanyAdmin) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, ListCachePattern(companiesCacheEntity)); err != nil && u.logger != nil {
		u.logger.Printf("[Companies] cache invalidation failed | err=%v", err)
	}
}

func (u *CompanyAdmin) notify(event string, id uuid.UUID) {
	if u.notifier == nil {
		return
	}
	u.notifier.Broadcast(event, map[string]string{"id": id.String()})
}

func normalizeCatalogFilter(f catalog.ListFilter) catalog.ListFilter {
	f.Search = strings.TrimSpace(f.Search)
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 10
	}
	return f
}

func sanitizeCompany(c catalog.Company) (catalog.Company, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return catalog.Company{}, ErrInvalidInput
	}
	if c.Status == "" {
		c.Status = catalog.StatusPending
	}
	if !c.Status.Valid() {
		return catalog.Company{}, ErrInvalidInput
	}
	return c, nil
}
