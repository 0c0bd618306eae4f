package render

import (
	"fmt"
	"strings"

	"talento-joven/internal/domain/cv"
)

type DocType string

const (
	DocTypeCV          DocType = "CV"
	DocTypeCoverLetter DocType = "CartaPresentacion"
)

// ExportFilename derives the deterministic download name
// <DocType>_<FirstName>_<LastName>_<templateID>.pdf. Absent names fall
// back to the renderer placeholders so the pattern always holds.
func ExportFilename(docType DocType, doc cv.Document, id TemplateID) string {
	first := sanitizeNamePart(doc.PersonalInfo.FirstName, PlaceholderFirstName)
	last := sanitizeNamePart(doc.PersonalInfo.LastName, PlaceholderLastName)
	return fmt.Sprintf("%s_%s_%s_%s.pdf", docType, first, last, id)
}

func sanitizeNamePart(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		s = fallback
	}
	// Collapse inner whitespace so multi-word names keep one token per part.
	return strings.Join(strings.Fields(s), "-")
}
