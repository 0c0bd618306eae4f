package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"talento-joven/internal/domain/catalog"
)

const (
	institutionsCacheEntity = "institutions"
	mentorsCacheEntity      = "mentors"
	contactsCacheEntity     = "contacts"
	resourcesCacheEntity    = "resources"
)

type InstitutionPage struct {
	Items    []catalog.Institution
	Total    int
	Page     int
	PageSize int
}

type MentorPage struct {
	Items    []catalog.Mentor
	Total    int
	Page     int
	PageSize int
}

type ContactPage struct {
	Items    []catalog.NetworkContact
	Total    int
	Page     int
	PageSize int
}

type ResourcePage struct {
	Items    []catalog.Resource
	Total    int
	Page     int
	PageSize int
}

// YouthAdminUsecase covers the four youth-content catalogs the admin
// panel manages besides companies and offers.
type YouthAdminUsecase interface {
	ListInstitutions(ctx context.Context, f catalog.ListFilter) (InstitutionPage, error)
	GetInstitution(ctx context.Context, id uuid.UUID) (catalog.Institution, error)
	CreateInstitution(ctx context.Context, i catalog.Institution) (catalog.Institution, error)
	UpdateInstitution(ctx context.Context, i catalog.Institution) (catalog.Institution, error)
	DeleteInstitution(ctx context.Context, id uuid.UUID, confirm bool) error

	ListMentors(ctx context.Context, f catalog.ListFilter) (MentorPage, error)
	GetMentor(ctx context.Context, id uuid.UUID) (catalog.Mentor, error)
	CreateMentor(ctx context.Context, m catalog.Mentor) (catalog.Mentor, error)
	UpdateMentor(ctx context.Context, m catalog.Mentor) (catalog.Mentor, error)
	DeleteMentor(ctx context.Context, id uuid.UUID, confirm bool) error

	ListContacts(ctx context.Context, f catalog.ListFilter) (ContactPage, error)
	GetContact(ctx context.Context, id uuid.UUID) (catalog.NetworkContact, error)
	CreateContact(ctx context.Context, c catalog.NetworkContact) (catalog.NetworkContact, error)
	UpdateContact(ctx context.Context, c catalog.NetworkContact) (catalog.NetworkContact, error)
	DeleteContact(ctx context.Context, id uuid.UUID, confirm bool) error

	ListResources(ctx context.Context, f catalog.ListFilter) (ResourcePage, error)
	GetResource(ctx context.Context, id uuid.UUID) (catalog.Resource, error)
	CreateResource(ctx context.Context, r catalog.Resource) (catalog.Resource, error)
	UpdateResource(ctx context.Context, r catalog.Resource) (catalog.Resource, error)
	DeleteResource(ctx context.Context, id uuid.UUID, confirm bool) error
}

type YouthAdmin struct {
	institutions catalog.InstitutionRepository
	mentors      catalog.MentorRepository
	contacts     catalog.ContactRepository
	resources    catalog.ResourceRepository
	cache        Cache
	notifier     AdminNotifier
	logger       *log.Logger
}

func NewYouthAdminUsecase(
	institutions catalog.InstitutionRepository,
	mentors catalog.MentorRepository,
	contacts catalog.ContactRepository,
	resources catalog.ResourceRepository,
	cache Cache,
	notifier AdminNotifier,
	logger *log.Logger,
) *YouthAdmin {
	return &YouthAdmin{
		institutions: institutions,
		mentors:      mentors,
		contacts:     contacts,
		resources:    resources,
		cache:        cache,
		notifier:     notifier,
		logger:       logger,
	}
}

func (u *YouthAdmin) ListInstitutions(ctx context.Context, f catalog.ListFilter) (InstitutionPage, error) {
	f = normalizeCatalogFilter(f)
	if f.Status != "" && !f.Status.Valid() {
		return InstitutionPage{}, ErrInvalidInput
	}

	key := ListCacheKey(institutionsCacheEntity, f.Search, string(f.Status), f.Page, f.PageSize)
	if u.cache != nil {
		var cached InstitutionPage
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, total, err := u.institutions.List(ctx, f)
	if err != nil {
		return InstitutionPage{}, ErrInternal
	}
	page := InstitutionPage{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, page, listCacheTTL)
	}
	return page, nil
}

func (u *YouthAdmin) GetInstitution(ctx context.Context, id uuid.UUID) (catalog.Institution, error) {
	if id == uuid.Nil {
		return catalog.Institution{}, ErrInvalidInput
	}
	i, err := u.institutions.GetByID(ctx, id)
	if err != nil {
		return catalog.Institution{}, mapCatalogErr(err)
	}
	return i, nil
}

func (u *YouthAdmin) CreateInstitution(ctx context.Context, i catalog.Institution) (catalog.Institution, error) {
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return catalog.Institution{}, ErrInvalidInput
	}
	if i.Status == "" {
		i.Status = catalog.StatusActive
	}
	if !i.Status.Valid() {
		return catalog.Institution{}, ErrInvalidInput
	}
	i.ID = uuid.New()

	created, err := u.institutions.Create(ctx, i)
	if err != nil {
		return catalog.Institution{}, ErrInternal
	}
	u.changed(ctx, institutionsCacheEntity, "institution.created", created.ID)
	return created, nil
}

func (u *YouthAdmin) UpdateInstitution(ctx context.Context, i catalog.Institution) (catalog.Institution, error) {
	if i.ID == uuid.Nil || strings.TrimSpace(i.Name) == "" || !i.Status.Valid() {
		return catalog.Institution{}, ErrInvalidInput
	}
	updated, err := u.institutions.Update(ctx, i)
	if err != nil {
		return catalog.Institution{}, mapCatalogErr(err)
	}
	u.changed(ctx, institutionsCacheEntity, "institution.updated", updated.ID)
	return updated, nil
}

func (u *YouthAdmin) DeleteInstitution(ctx context.Context, id uuid.UUID, confirm bool) error {
	if err := u.checkDelete(id, confirm); err != nil {
		return err
	}
	if err := u.institutions.Delete(ctx, id); err != nil {
		return mapCatalogErr(err)
	}
	u.changed(ctx, institutionsCacheEntity, "institution.deleted", id)
	return nil
}

func (u *YouthAdmin) ListMentors(ctx context.Context, f catalog.ListFilter) (MentorPage, error) {
	f = normalizeCatalogFilter(f)
	if f.Status != "" && !f.Status.Valid() {
		return MentorPage{}, ErrInvalidInput
	}

	key := ListCacheKey(mentorsCacheEntity, f.Search, string(f.Status), f.Page, f.PageSize)
	if u.cache != nil {
		var cached MentorPage
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, total, err := u.mentors.List(ctx, f)
	if err != nil {
		return MentorPage{}, ErrInternal
	}
	page := MentorPage{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, page, listCacheTTL)
	}
	return page, nil
}

func (u *YouthAdmin) GetMentor(ctx context.Context, id uuid.UUID) (catalog.Mentor, error) {
	if id == uuid.Nil {
		return catalog.Mentor{}, ErrInvalidInput
	}
	m, err := u.mentors.GetByID(ctx, id)
	if err != nil {
		return catalog.Mentor{}, mapCatalogErr(err)
	}
	return m, nil
}

func (u *YouthAdmin) CreateMentor(ctx context.Context, m catalog.Mentor) (catalog.Mentor, error) {
	m.FullName = strings.TrimSpace(m.FullName)
	if m.FullName == "" {
		return catalog.Mentor{}, ErrInvalidInput
	}
	if m.Status == "" {
		m.Status = catalog.StatusActive
	}
	if !m.Status.Valid() {
		return catalog.Mentor{}, ErrInvalidInput
	}
	m.ID = uuid.New()

	created, err := u.mentors.Create(ctx, m)
	if err != nil {
		return catalog.Mentor{}, ErrInternal
	}
	u.changed(ctx, mentorsCacheEntity, "mentor.created", created.ID)
	return created, nil
}

func (u *YouthAdmin) UpdateMentor(ctx context.Context, m catalog.Mentor) (catalog.Mentor, error) {
	if m.ID == uuid.Nil || strings.TrimSpace(m.FullName) == "" || !m.Status.Valid() {
		return catalog.Mentor{}, ErrInvalidInput
	}
	updated, err := u.mentors.Update(ctx, m)
	if err != nil {
		return catalog.Mentor{}, mapCatalogErr(err)
	}
	u.changed(ctx, mentorsCacheEntity, "mentor.updated", updated.ID)
	return updated, nil
}

func (u *YouthAdmin) DeleteMentor(ctx context.Context, id uuid.UUID, confirm bool) error {
	if err := u.checkDelete(id, confirm); err != nil {
		return err
	}
	if err := u.mentors.Delete(ctx, id); err != nil {
		return mapCatalogErr(err)
	}
	u.changed(ctx, mentorsCacheEntity, "mentor.deleted", id)
	return nil
}

func (u *YouthAdmin) ListContacts(ctx context.Context, f catalog.ListFilter) (ContactPage, error) {
	f = normalizeCatalogFilter(f)
	if f.Status != "" && !f.Status.Valid() {
		return ContactPage{}, ErrInvalidInput
	}

	key := ListCacheKey(contactsCacheEntity, f.Search, string(f.Status), f.Page, f.PageSize)
	if u.cache != nil {
		var cached ContactPage
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, total, err := u.contacts.List(ctx, f)
	if err != nil {
		return ContactPage{}, ErrInternal
	}
	page := ContactPage{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, page, listCacheTTL)
	}
	return page, nil
}

func (u *YouthAdmin) GetContact(ctx context.Context, id uuid.UUID) (catalog.NetworkContact, error) {
	if id == uuid.Nil {
		return catalog.NetworkContact{}, ErrInvalidInput
	}
	c, err := u.contacts.GetByID(ctx, id)
	if err != nil {
		return catalog.NetworkContact{}, mapCatalogErr(err)
	}
	return c, nil
}

func (u *YouthAdmin) CreateContact(ctx context.Context, c catalog.NetworkContact) (catalog.NetworkContact, error) {
	c.FullName = strings.TrimSpace(c.FullName)
	if c.FullName == "" {
		return catalog.NetworkContact{}, ErrInvalidInput
	}
	if c.Status == "" {
		c.Status = catalog.StatusActive
	}
	if !c.Status.Valid() {
		return catalog.NetworkContact{}, ErrInvalidInput
	}
	c.ID = uuid.New()

	created, err := u.contacts.Create(ctx, c)
	if err != nil {
		return catalog.NetworkContact{}, ErrInternal
	}
	u.changed(ctx, contactsCacheEntity, "contact.created", created.ID)
	return created, nil
}

func (u *YouthAdmin) UpdateContact(ctx context.Context, c catalog.NetworkContact) (catalog.NetworkContact, error) {
	if c.ID == uuid.Nil || strings.TrimSpace(c.FullName) == "" || !c.Status.Valid() {
		return catalog.NetworkContact{}, ErrInvalidInput
	}
	updated, err := u.contacts.Update(ctx, c)
	if err != nil {
		return catalog.NetworkContact{}, mapCatalogErr(err)
	}
	u.changed(ctx, contactsCacheEntity, "contact.updated", updated.ID)
	return updated, nil
}

func (u *YouthAdmin) DeleteContact(ctx context.Context, id uuid.UUID, confirm bool) error {
	if err := u.checkDelete(id, confirm); err != nil {
		return err
	}
	if err := u.contacts.Delete(ctx, id); err != nil {
		return mapCatalogErr(err)
	}
	u.changed(ctx, contactsCacheEntity, "contact.deleted", id)
	return nil
}

func (u *YouthAdmin) ListResources(ctx context.Context, f catalog.ListFilter) (ResourcePage, error) {
	f = normalizeCatalogFilter(f)
	if f.Status != "" && !f.Status.Valid() {
		return ResourcePage{}, ErrInvalidInput
	}

	key := ListCacheKey(resourcesCacheEntity, f.Search, string(f.Status), f.Page, f.PageSize)
	if u.cache != nil {
		var cached ResourcePage
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, total, err := u.resources.List(ctx, f)
	if err != nil {
		return ResourcePage{}, ErrInternal
	}
	page := ResourcePage{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, page, listCacheTTL)
	}
	return page, nil
}

func (u *YouthAdmin) GetResource(ctx context.Context, id uuid.UUID) (catalog.Resource, error) {
	if id == uuid.Nil {
		return catalog.Resource{}, ErrInvalidInput
	}
	r, err := u.resources.GetByID(ctx, id)
	if err != nil {
		return catalog.Resource{}, mapCatalogErr(err)
	}
	return r, nil
}

func (u *YouthAdmin) CreateResource(ctx context.Context, r catalog.Resource) (catalog.Resource, error) {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return catalog.Resource{}, ErrInvalidInput
	}
	if r.Status == "" {
		r.Status = catalog.StatusActive
	}
	if !r.Status.Valid() {
		return catalog.Resource{}, ErrInvalidInput
	}
	r.ID = uuid.New()

	created, err := u.resources.Create(ctx, r)
	if err != nil {
		return catalog.Resource{}, ErrInternal
	}
	u.changed(ctx, resourcesCacheEntity, "resource.created", created.ID)
	return created, nil
}

func (u *YouthAdmin) UpdateResource(ctx context.Context, r catalog.Resource) (catalog.Resource, error) {
	if r.ID == uuid.Nil || strings.TrimSpace(r.Title) == "" || !r.Status.Valid() {
		return catalog.Resource{}, ErrInvalidInput
	}
	updated, err := u.resources.Update(ctx, r)
	if err != nil {
		return catalog.Resource{}, mapCatalogErr(err)
	}
	u.changed(ctx, resourcesCacheEntity, "resource.updated", updated.ID)
	return updated, nil
}

func (u *YouthAdmin) DeleteResource(ctx context.Context, id uuid.UUID, confirm bool) error {
	if err := u.checkDelete(id, confirm); err != nil {
		return err
	}
	if err := u.resources.Delete(ctx, id); err != nil {
		return mapCatalogErr(err)
	}
	u.changed(ctx, resourcesCacheEntity, "resource.deleted", id)
	return nil
}

func (u *YouthAdmin) checkDelete(id uuid.UUID, confirm bool) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if !confirm {
		return ErrConfirmationRequired
	}
	return nil
}

// changed invalidates the entity's cached listings and announces the
// mutation to admin dashboards.
func (u *YouthAdmin) changed(ctx context.Context, entity, event string, id uuid.UUID) {
	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, ListCachePattern(entity)); err != nil && u.logger != nil {
			u.logger.Printf("[Youth] cache invalidation failed | entity=%s err=%v", entity, err)
		}
	}
	if u.notifier != nil {
		u.notifier.Broadcast(event, map[string]string{"id": id.String()})
	}
}

func mapCatalogErr(err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return ErrNotFound
	}
	return ErrInternal
}
