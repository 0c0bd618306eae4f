package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"talento-joven/internal/domain/offer"
)

type OfferRequest struct {
	CompanyID    string `json:"company_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
	Modality     string `json:"modality"`
	// Salary bounds arrive as strings from the admin form; anything
	// that does not parse as a number is treated as unset.
	SalaryMin      string `json:"salary_min"`
	SalaryMax      string `json:"salary_max"`
	SalaryCurrency string `json:"salary_currency"`
	Status         string `json:"status"`
	PublishedAt    string `json:"published_at"`
	ClosesAt       string `json:"closes_at"`
}

func (r OfferRequest) ToDomain() offer.JobOffer {
	o := offer.JobOffer{
		Title:          r.Title,
		Description:    r.Description,
		Requirements:   r.Requirements,
		Location:       r.Location,
		Modality:       r.Modality,
		SalaryCurrency: strings.TrimSpace(r.SalaryCurrency),
		Status:         offer.Status(strings.ToUpper(strings.TrimSpace(r.Status))),
		SalaryMin:      ParseNullableInt(r.SalaryMin),
		SalaryMax:      ParseNullableInt(r.SalaryMax),
		PublishedAt:    ParseNullableDate(r.PublishedAt),
		ClosesAt:       ParseNullableDate(r.ClosesAt),
	}
	if id, err := uuid.Parse(strings.TrimSpace(r.CompanyID)); err == nil && id != uuid.Nil {
		o.CompanyID = &id
	}
	return o
}

type OfferResponse struct {
	ID             string     `json:"id"`
	CompanyID      *string    `json:"company_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Requirements   string     `json:"requirements"`
	Location       string     `json:"location"`
	Modality       string     `json:"modality"`
	SalaryMin      *int64     `json:"salary_min"`
	SalaryMax      *int64     `json:"salary_max"`
	SalaryCurrency string     `json:"salary_currency"`
	Salary         string     `json:"salary"`
	Status         string     `json:"status"`
	Views          int64      `json:"views"`
	Applications   int64      `json:"applications"`
	PublishedAt    *time.Time `json:"published_at"`
	ClosesAt       *time.Time `json:"closes_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func NewOfferResponse(o offer.JobOffer) OfferResponse {
	resp := OfferResponse{
		ID:             o.ID.String(),
		Title:          o.Title,
		Description:    o.Description,
		Requirements:   o.Requirements,
		Location:       o.Location,
		Modality:       o.Modality,
		SalaryMin:      o.SalaryMin,
		SalaryMax:      o.SalaryMax,
		SalaryCurrency: o.SalaryCurrency,
		Salary:         FormatSalary(o.SalaryMin, o.SalaryMax, o.SalaryCurrency),
		Status:         string(o.Status),
		Views:          o.Views,
		Applications:   o.Applications,
		PublishedAt:    o.PublishedAt,
		ClosesAt:       o.ClosesAt,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	if o.CompanyID != nil {
		s := o.CompanyID.String()
		resp.CompanyID = &s
	}
	return resp
}

func NewOfferResponses(items []offer.JobOffer) []OfferResponse {
	out := make([]OfferResponse, 0, len(items))
	for _, o := range items {
		out = append(out, NewOfferResponse(o))
	}
	return out
}

// FormatSalary renders the salary range as shown on offer cards:
// "3,000 - 5,000 BOB", a single bound as "Desde"/"Hasta", and "A
// convenir" when neither bound is known.
func FormatSalary(min, max *int64, currency string) string {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = "BOB"
	}

	switch {
	case min != nil && max != nil:
		return groupThousands(*min) + " - " + groupThousands(*max) + " " + currency
	case min != nil:
		return "Desde " + groupThousands(*min) + " " + currency
	case max != nil:
		return "Hasta " + groupThousands(*max) + " " + currency
	default:
		return "A convenir"
	}
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	out := b.String()
	if neg {
		return "-" + out
	}
	return out
}

// ParseNullableInt reads a numeric form value, nil when blank or
// malformed. Decimal values are truncated.
func ParseNullableInt(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		v := int64(f)
		return &v
	}
	return nil
}

// ParseNullableDate reads a YYYY-MM-DD form value, nil when blank or
// malformed.
func ParseNullableDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
