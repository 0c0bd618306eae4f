package render

import (
	"strings"
	"testing"
	"time"

	"talento-joven/internal/domain/cv"

	"github.com/google/uuid"
)

func TestParseTemplateID(t *testing.T) {
	cases := map[string]TemplateID{
		"modern":       TemplateModern,
		"professional": TemplateModern,
		"MINIMALIST":   TemplateMinimalist,
		" creative ":   TemplateCreative,
		"":             TemplateModern,
	}
	for in, want := range cases {
		got, err := ParseTemplateID(in)
		if err != nil {
			t.Fatalf("ParseTemplateID(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseTemplateID(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseTemplateID("neon"); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}

func TestRenderCV_SubstitutesPlaceholders(t *testing.T) {
	doc := cv.NewDocument(uuid.New())

	for _, id := range TemplateIDs() {
		html, err := RenderCV(doc, id)
		if err != nil {
			t.Fatalf("RenderCV(%s): %v", id, err)
		}
		for _, want := range []string{PlaceholderJobTitle, PlaceholderEmail, PlaceholderSummary, "Tu Nombre"} {
			if !strings.Contains(html, want) {
				t.Fatalf("template %s missing placeholder %q", id, want)
			}
		}
		if strings.Contains(html, "<nil>") || strings.Contains(html, "undefined") {
			t.Fatalf("template %s leaked an empty literal", id)
		}
	}
}

func TestRenderCV_MinimalistEndToEnd(t *testing.T) {
	doc := cv.NewDocument(uuid.New())
	doc.PersonalInfo.FirstName = "Ana"
	doc.PersonalInfo.LastName = "Rojas"
	doc.PersonalInfo.Email = "ana@x.com"
	doc.AddSkill(cv.Skill{Name: "React"})

	html, err := RenderCV(doc, TemplateMinimalist)
	if err != nil {
		t.Fatalf("RenderCV: %v", err)
	}

	for _, want := range []string{"Ana Rojas", "ana@x.com", "React", PlaceholderSummary} {
		if !strings.Contains(html, want) {
			t.Fatalf("minimalist preview missing %q", want)
		}
	}
}

func TestRenderCV_SectionOrderPerLayout(t *testing.T) {
	doc := cv.NewDocument(uuid.New())
	doc.Education.CurrentInstitution = "UMSA"
	doc.Education.CurrentDegree = "Ingeniería"
	doc.AddSkill(cv.Skill{Name: "Go"})
	doc.WorkExperience = append(doc.WorkExperience, cv.WorkExperience{Title: "Practicante", Company: "Acme"})

	html, err := RenderCV(doc, TemplateModern)
	if err != nil {
		t.Fatalf("RenderCV: %v", err)
	}

	// Sidebar sections precede main sections in the two-column layouts.
	edu := strings.Index(html, "Educación")
	exp := strings.Index(html, "Experiencia Laboral")
	if edu < 0 || exp < 0 {
		t.Fatalf("expected both section headings, got edu=%d exp=%d", edu, exp)
	}
	if edu > exp {
		t.Fatalf("education must render before experience in the modern layout")
	}
}

func TestRenderCoverLetter_BlocksInOrder(t *testing.T) {
	doc := cv.NewDocument(uuid.New())
	doc.PersonalInfo.FirstName = "Luis"
	doc.PersonalInfo.LastName = "Mamani"
	doc.JobTitle = "Contador"

	letter := cv.NewCoverLetter(doc.UserID)
	letter.Recipient = cv.Recipient{Company: "Industrias Andinas", Department: "RRHH", City: "La Paz", Country: "Bolivia"}
	letter.Subject = "Postulación Contador Junior"

	now := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	html, err := RenderCoverLetter(letter, doc, TemplateCreative, now)
	if err != nil {
		t.Fatalf("RenderCoverLetter: %v", err)
	}

	ordered := []string{
		"Luis Mamani",          // sender block
		"9 de marzo de 2026",   // date
		"Industrias Andinas",   // recipient block
		"Postulación Contador", // subject
		"Atentamente,",         // signature
	}
	last := -1
	for _, want := range ordered {
		idx := strings.Index(html, want)
		if idx < 0 {
			t.Fatalf("cover letter missing %q", want)
		}
		if idx < last {
			t.Fatalf("block %q out of order", want)
		}
		last = idx
	}

	// Default body interpolation kicks in when no content is stored.
	if !strings.Contains(html, "Luis Mamani y me dirijo") {
		t.Fatalf("expected generated default body")
	}
}

func TestExportFilename(t *testing.T) {
	doc := cv.NewDocument(uuid.New())
	doc.PersonalInfo.FirstName = "Ana"
	doc.PersonalInfo.LastName = "Rojas"

	want := map[TemplateID]string{
		TemplateModern:     "CV_Ana_Rojas_modern.pdf",
		TemplateCreative:   "CV_Ana_Rojas_creative.pdf",
		TemplateMinimalist: "CV_Ana_Rojas_minimalist.pdf",
	}
	for id, exp := range want {
		if got := ExportFilename(DocTypeCV, doc, id); got != exp {
			t.Fatalf("ExportFilename(%s) = %q, want %q", id, got, exp)
		}
	}

	if got := ExportFilename(DocTypeCoverLetter, doc, TemplateModern); got != "CartaPresentacion_Ana_Rojas_modern.pdf" {
		t.Fatalf("unexpected cover letter filename %q", got)
	}

	// Multi-word names collapse to one token per component.
	doc.PersonalInfo.FirstName = "Ana María"
	if got := ExportFilename(DocTypeCV, doc, TemplateModern); got != "CV_Ana-María_Rojas_modern.pdf" {
		t.Fatalf("unexpected multi-word filename %q", got)
	}
}
