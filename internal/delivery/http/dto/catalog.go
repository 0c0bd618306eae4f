package dto

import (
	"strings"
	"time"

	"talento-joven/internal/domain/catalog"
)

func catalogStatus(s string) catalog.Status {
	return catalog.Status(strings.ToUpper(strings.TrimSpace(s)))
}

type CompanyRequest struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	Status      string `json:"status"`
}

func (r CompanyRequest) ToDomain() catalog.Company {
	return catalog.Company{
		Name:        r.Name,
		Industry:    r.Industry,
		Description: r.Description,
		Website:     r.Website,
		Email:       r.Email,
		Phone:       r.Phone,
		City:        r.City,
		Status:      catalogStatus(r.Status),
	}
}

type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	City        string    `json:"city"`
	Status      string    `json:"status"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewCompanyResponse(c catalog.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Industry:    c.Industry,
		Description: c.Description,
		Website:     c.Website,
		Email:       c.Email,
		Phone:       c.Phone,
		City:        c.City,
		Status:      string(c.Status),
		Views:       c.Views,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func NewCompanyResponses(items []catalog.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewCompanyResponse(c))
	}
	return out
}

type InstitutionRequest struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	Status      string `json:"status"`
}

func (r InstitutionRequest) ToDomain() catalog.Institution {
	return catalog.Institution{
		Name:        r.Name,
		Kind:        r.Kind,
		Description: r.Description,
		Website:     r.Website,
		Email:       r.Email,
		Phone:       r.Phone,
		City:        r.City,
		Status:      catalogStatus(r.Status),
	}
}

type InstitutionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	City        string    `json:"city"`
	Status      string    `json:"status"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewInstitutionResponse(i catalog.Institution) InstitutionResponse {
	return InstitutionResponse{
		ID:          i.ID.String(),
		Name:        i.Name,
		Kind:        i.Kind,
		Description: i.Description,
		Website:     i.Website,
		Email:       i.Email,
		Phone:       i.Phone,
		City:        i.City,
		Status:      string(i.Status),
		Views:       i.Views,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func NewInstitutionResponses(items []catalog.Institution) []InstitutionResponse {
	out := make([]InstitutionResponse, 0, len(items))
	for _, i := range items {
		out = append(out, NewInstitutionResponse(i))
	}
	return out
}

type MentorRequest struct {
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Status    string `json:"status"`
}

func (r MentorRequest) ToDomain() catalog.Mentor {
	return catalog.Mentor{
		FullName:  r.FullName,
		Specialty: r.Specialty,
		Bio:       r.Bio,
		Email:     r.Email,
		Phone:     r.Phone,
		City:      r.City,
		Status:    catalogStatus(r.Status),
	}
}

type MentorResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Specialty string    `json:"specialty"`
	Bio       string    `json:"bio"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	Status    string    `json:"status"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewMentorResponse(m catalog.Mentor) MentorResponse {
	return MentorResponse{
		ID:        m.ID.String(),
		FullName:  m.FullName,
		Specialty: m.Specialty,
		Bio:       m.Bio,
		Email:     m.Email,
		Phone:     m.Phone,
		City:      m.City,
		Status:    string(m.Status),
		Views:     m.Views,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewMentorResponses(items []catalog.Mentor) []MentorResponse {
	out := make([]MentorResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewMentorResponse(m))
	}
	return out
}

type ContactRequest struct {
	FullName     string `json:"full_name"`
	Organization string `json:"organization"`
	Position     string `json:"position"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
	Status       string `json:"status"`
}

func (r ContactRequest) ToDomain() catalog.NetworkContact {
	return catalog.NetworkContact{
		FullName:     r.FullName,
		Organization: r.Organization,
		Position:     r.Position,
		Email:        r.Email,
		Phone:        r.Phone,
		City:         r.City,
		Status:       catalogStatus(r.Status),
	}
}

type ContactResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Organization string    `json:"organization"`
	Position     string    `json:"position"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	Status       string    `json:"status"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewContactResponse(c catalog.NetworkContact) ContactResponse {
	return ContactResponse{
		ID:           c.ID.String(),
		FullName:     c.FullName,
		Organization: c.Organization,
		Position:     c.Position,
		Email:        c.Email,
		Phone:        c.Phone,
		City:         c.City,
		Status:       string(c.Status),
		Views:        c.Views,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func NewContactResponses(items []catalog.NetworkContact) []ContactResponse {
	out := make([]ContactResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewContactResponse(c))
	}
	return out
}

type ResourceRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Status      string `json:"status"`
}

func (r ResourceRequest) ToDomain() catalog.Resource {
	return catalog.Resource{
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		URL:         r.URL,
		Status:      catalogStatus(r.Status),
	}
}

type ResourceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Status      string    `json:"status"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewResourceResponse(r catalog.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          r.ID.String(),
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		URL:         r.URL,
		Status:      string(r.Status),
		Views:       r.Views,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func NewResourceResponses(items []catalog.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewResourceResponse(r))
	}
	return out
}
