package render

import (
	"errors"
	"strings"
)

// TemplateID names one of the closed set of visual layouts.
type TemplateID string

const (
	TemplateModern     TemplateID = "modern"
	TemplateCreative   TemplateID = "creative"
	TemplateMinimalist TemplateID = "minimalist"
)

var ErrUnknownTemplate = errors.New("unknown template")

// ParseTemplateID resolves a template identifier; "professional" is the
// historical alias of the modern layout.
func ParseTemplateID(s string) (TemplateID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "modern", "professional", "":
		return TemplateModern, nil
	case "creative":
		return TemplateCreative, nil
	case "minimalist":
		return TemplateMinimalist, nil
	}
	return "", ErrUnknownTemplate
}

type SectionID string

const (
	SectionEducation    SectionID = "education"
	SectionSkills       SectionID = "skills"
	SectionLanguages    SectionID = "languages"
	SectionSocialLinks  SectionID = "social_links"
	SectionInterests    SectionID = "interests"
	SectionSummary      SectionID = "summary"
	SectionExperience   SectionID = "experience"
	SectionAchievements SectionID = "achievements"
	SectionProjects     SectionID = "projects"
)

// Layout is the single data-driven description of a template, consumed
// by both the on-screen preview and the PDF export path.
type Layout struct {
	ID         TemplateID
	TwoColumn  bool
	Sidebar    []SectionID
	Main       []SectionID
	Accent     string
	Background string
	FontFamily string
}

var layouts = map[TemplateID]Layout{
	TemplateModern: {
		ID:         TemplateModern,
		TwoColumn:  true,
		Sidebar:    []SectionID{SectionEducation, SectionSkills, SectionLanguages, SectionSocialLinks, SectionInterests},
		Main:       []SectionID{SectionSummary, SectionExperience, SectionAchievements, SectionProjects},
		Accent:     "#1f4e79",
		Background: "#f4f6f8",
		FontFamily: "'Segoe UI', Arial, sans-serif",
	},
	TemplateCreative: {
		ID:         TemplateCreative,
		TwoColumn:  true,
		Sidebar:    []SectionID{SectionEducation, SectionSkills, SectionLanguages, SectionSocialLinks, SectionInterests},
		Main:       []SectionID{SectionSummary, SectionExperience, SectionAchievements, SectionProjects},
		Accent:     "#b0306a",
		Background: "#fdf3f8",
		FontFamily: "'Trebuchet MS', Verdana, sans-serif",
	},
	TemplateMinimalist: {
		ID:         TemplateMinimalist,
		TwoColumn:  false,
		Main: []SectionID{
			SectionSummary, SectionExperience, SectionEducation, SectionSkills,
			SectionLanguages, SectionAchievements, SectionProjects, SectionSocialLinks, SectionInterests,
		},
		Accent:     "#222222",
		Background: "#ffffff",
		FontFamily: "Georgia, 'Times New Roman', serif",
	},
}

func LayoutFor(id TemplateID) (Layout, error) {
	l, ok := layouts[id]
	if !ok {
		return Layout{}, ErrUnknownTemplate
	}
	return l, nil
}

// TemplateIDs lists the supported identifiers in a stable order.
func TemplateIDs() []TemplateID {
	return []TemplateID{TemplateModern, TemplateCreative, TemplateMinimalist}
}
