// Package render turns CV and cover-letter documents into HTML for the
// on-screen preview and for PDF export. Both paths consume the same
// layout description, so the three templates cannot diverge between
// preview and export.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"talento-joven/internal/domain/cv"
)

// Section is a renderable block of the document; the skeleton template
// draws every section the same way regardless of layout.
type Section struct {
	Title   string
	Show    bool
	Summary string
	Entries []Entry
	Badges  []string
}

type Entry struct {
	Title    string
	Subtitle string
	Meta     string
	Body     string
}

type cvTemplateData struct {
	Layout   Layout
	View     View
	Sections map[SectionID]Section
}

type letterTemplateData struct {
	Layout Layout
	Letter LetterView
}

// RenderCV produces the full HTML document for a CV in the given template.
func RenderCV(doc cv.Document, id TemplateID) (string, error) {
	layout, err := LayoutFor(id)
	if err != nil {
		return "", err
	}

	view := NewView(doc)
	data := cvTemplateData{
		Layout:   layout,
		View:     view,
		Sections: buildSections(view),
	}

	var buf bytes.Buffer
	if err := cvTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render cv template %s: %w", id, err)
	}
	return buf.String(), nil
}

// RenderCoverLetter produces the cover-letter HTML, reusing the CV
// document for the sender block and default body interpolation.
func RenderCoverLetter(letter cv.CoverLetter, doc cv.Document, id TemplateID, now time.Time) (string, error) {
	layout, err := LayoutFor(id)
	if err != nil {
		return "", err
	}

	data := letterTemplateData{
		Layout: layout,
		Letter: NewLetterView(letter, doc, now),
	}

	var buf bytes.Buffer
	if err := letterTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render cover letter template %s: %w", id, err)
	}
	return buf.String(), nil
}

func buildSections(v View) map[SectionID]Section {
	return map[SectionID]Section{
		SectionSummary: {
			Title:   "Perfil Profesional",
			Show:    true, // placeholder guarantees content
			Summary: v.Summary,
		},
		SectionEducation:    educationSection(v.Education),
		SectionSkills:       badgeSection("Habilidades", skillBadges(v.Skills)),
		SectionLanguages:    languagesSection(v.Languages),
		SectionSocialLinks:  socialSection(v.SocialLinks),
		SectionInterests:    badgeSection("Intereses", v.Interests),
		SectionExperience:   experienceSection(v.WorkExperience),
		SectionAchievements: achievementsSection(v.Achievements),
		SectionProjects:     projectsSection(v.Projects),
	}
}

func educationSection(e cv.Education) Section {
	var entries []Entry
	if strings.TrimSpace(e.CurrentInstitution) != "" || strings.TrimSpace(e.CurrentDegree) != "" {
		meta := dateRange(e.StartDate, e.EndDate, e.IsStudying)
		if e.GPA != "" {
			meta = joinMeta(meta, "Promedio: "+e.GPA)
		}
		entries = append(entries, Entry{
			Title:    e.CurrentDegree,
			Subtitle: e.CurrentInstitution,
			Meta:     meta,
		})
	}
	for _, h := range e.History {
		meta := dateRange(h.StartDate, h.EndDate, false)
		if h.Status != "" {
			meta = joinMeta(meta, h.Status)
		}
		if h.GPA != "" {
			meta = joinMeta(meta, "Promedio: "+h.GPA)
		}
		entries = append(entries, Entry{Title: h.Degree, Subtitle: h.Institution, Meta: meta})
	}
	for _, a := range e.AcademicAwards {
		entries = append(entries, Entry{Title: a.Title, Meta: joinMeta(a.Date, a.Category), Body: a.Description})
	}
	return Section{Title: "Educación", Show: len(entries) > 0, Entries: entries}
}

func skillBadges(skills []cv.Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		label := s.Name
		if s.Proficiency != "" {
			label += " · " + s.Proficiency
		}
		out = append(out, label)
	}
	return out
}

func badgeSection(title string, badges []string) Section {
	return Section{Title: title, Show: len(badges) > 0, Badges: badges}
}

func languagesSection(langs []cv.Language) Section {
	entries := make([]Entry, 0, len(langs))
	for _, l := range langs {
		entries = append(entries, Entry{Title: l.Name, Meta: l.Proficiency})
	}
	return Section{Title: "Idiomas", Show: len(entries) > 0, Entries: entries}
}

func socialSection(links []cv.SocialLink) Section {
	entries := make([]Entry, 0, len(links))
	for _, l := range links {
		entries = append(entries, Entry{Title: l.Platform, Body: l.URL})
	}
	return Section{Title: "Enlaces", Show: len(entries) > 0, Entries: entries}
}

func experienceSection(exp []cv.WorkExperience) Section {
	entries := make([]Entry, 0, len(exp))
	for _, w := range exp {
		entries = append(entries, Entry{
			Title:    w.Title,
			Subtitle: w.Company,
			Meta:     dateRange(w.StartDate, w.EndDate, false),
			Body:     w.Description,
		})
	}
	return Section{Title: "Experiencia Laboral", Show: len(entries) > 0, Entries: entries}
}

func achievementsSection(items []cv.Achievement) Section {
	entries := make([]Entry, 0, len(items))
	for _, a := range items {
		entries = append(entries, Entry{Title: a.Title, Meta: a.Date, Body: a.Description})
	}
	return Section{Title: "Logros", Show: len(entries) > 0, Entries: entries}
}

func projectsSection(items []cv.Project) Section {
	entries := make([]Entry, 0, len(items))
	for _, p := range items {
		entries = append(entries, Entry{
			Title:    p.Title,
			Subtitle: p.Location,
			Meta:     dateRange(p.StartDate, p.EndDate, false),
			Body:     p.Description,
		})
	}
	return Section{Title: "Proyectos", Show: len(entries) > 0, Entries: entries}
}

// dateRange formats an interval, labelling open ends as ongoing.
func dateRange(start, end string, ongoing bool) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" && end == "" {
		return ""
	}
	if end == "" || ongoing {
		end = "Presente"
	}
	if start == "" {
		return end
	}
	return start + " – " + end
}

func joinMeta(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, " · ")
}
