package render

import (
	"fmt"
	"strings"
	"time"

	"talento-joven/internal/domain/cv"
)

// Placeholder text substituted for absent fields so a preview is never
// blank. Matches the copy shown by the document editor.
const (
	PlaceholderFirstName = "Tu"
	PlaceholderLastName  = "Nombre"
	PlaceholderJobTitle  = "Tu Profesión u Ocupación"
	PlaceholderEmail     = "correo@ejemplo.com"
	PlaceholderPhone     = "+591 00000000"
	PlaceholderCity      = "Tu Ciudad"
	PlaceholderSummary   = "Profesional proactivo con capacidad de adaptación y aprendizaje continuo. " +
		"Comprometido con la calidad del trabajo y orientado a resultados, busco aportar " +
		"mis conocimientos y crecer dentro de un equipo dinámico."
	PlaceholderSubject = "Postulación al puesto vacante"
)

// View is the renderer's input: a CV document with every optional field
// already resolved to either its value or its placeholder.
type View struct {
	FirstName string
	LastName  string
	FullName  string
	JobTitle  string
	Email     string
	Phone     string
	Address   string
	City      string
	Country   string
	ImagePath string
	Summary   string

	Education      cv.Education
	Skills         []cv.Skill
	Languages      []cv.Language
	SocialLinks    []cv.SocialLink
	WorkExperience []cv.WorkExperience
	Projects       []cv.Project
	Achievements   []cv.Achievement
	Interests      []string
}

func or(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}

// NewView resolves a document into its renderable form.
func NewView(doc cv.Document) View {
	pi := doc.PersonalInfo
	first := or(pi.FirstName, PlaceholderFirstName)
	last := or(pi.LastName, PlaceholderLastName)

	return View{
		FirstName: first,
		LastName:  last,
		FullName:  strings.TrimSpace(first + " " + last),
		JobTitle:  or(doc.JobTitle, PlaceholderJobTitle),
		Email:     or(pi.Email, PlaceholderEmail),
		Phone:     or(pi.Phone, PlaceholderPhone),
		Address:   pi.Address,
		City:      or(pi.City, PlaceholderCity),
		Country:   pi.Country,
		ImagePath: pi.ImagePath,
		Summary:   or(doc.Summary, PlaceholderSummary),

		Education:      doc.Education,
		Skills:         doc.Skills,
		Languages:      doc.Languages,
		SocialLinks:    doc.SocialLinks,
		WorkExperience: doc.WorkExperience,
		Projects:       doc.Projects,
		Achievements:   doc.Achievements,
		Interests:      doc.Interests,
	}
}

// LetterView is the cover-letter renderer input.
type LetterView struct {
	Sender    View
	Date      string
	Recipient cv.Recipient
	Subject   string
	Body      string
}

func NewLetterView(letter cv.CoverLetter, doc cv.Document, now time.Time) LetterView {
	rec := letter.Recipient
	if strings.TrimSpace(rec.Company) == "" {
		rec.Company = "Nombre de la Empresa"
	}
	if strings.TrimSpace(rec.Department) == "" {
		rec.Department = "Departamento de Recursos Humanos"
	}

	return LetterView{
		Sender:    NewView(doc),
		Date:      formatSpanishDate(now),
		Recipient: rec,
		Subject:   or(letter.Subject, PlaceholderSubject),
		Body:      letter.EffectiveContent(doc),
	}
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

func formatSpanishDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[int(t.Month())-1], t.Year())
}
