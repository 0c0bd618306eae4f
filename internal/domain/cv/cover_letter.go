package cv

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CoverLetter struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Content string
	Subject string

	Recipient Recipient

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Recipient struct {
	Department string `json:"department"`
	Company    string `json:"company"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

func NewCoverLetter(userID uuid.UUID) CoverLetter {
	now := time.Now().UTC()
	return CoverLetter{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EffectiveContent returns the stored body, or a generated default that
// interpolates the owner's CV when no body has been written yet.
func (c CoverLetter) EffectiveContent(doc Document) string {
	if strings.TrimSpace(c.Content) != "" {
		return c.Content
	}
	return DefaultContent(doc)
}

func DefaultContent(doc Document) string {
	name := doc.FullName()
	if name == "" {
		name = "el/la postulante"
	}
	title := strings.TrimSpace(doc.JobTitle)
	if title == "" {
		title = "el puesto ofertado"
	}
	return fmt.Sprintf(
		"Estimados señores:\n\n"+
			"Mi nombre es %s y me dirijo a ustedes para expresar mi interés en %s. "+
			"Considero que mi formación y experiencia se ajustan al perfil que buscan, "+
			"y me encantaría tener la oportunidad de aportar al equipo.\n\n"+
			"Quedo a su disposición para una entrevista en el momento que consideren oportuno.\n\n"+
			"Atentamente,\n%s",
		name, title, name,
	)
}
