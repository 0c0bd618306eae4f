package dto

import (
	"time"

	"talento-joven/internal/domain/cv"
)

// DocumentPayload is both the save request body and the response shape
// for the CV builder; the editor round-trips the whole document.
type DocumentPayload struct {
	PersonalInfo   cv.PersonalInfo     `json:"personal_info"`
	JobTitle       string              `json:"job_title"`
	Summary        string              `json:"summary"`
	Education      cv.Education        `json:"education"`
	Skills         []cv.Skill          `json:"skills"`
	Languages      []cv.Language       `json:"languages"`
	SocialLinks    []cv.SocialLink     `json:"social_links"`
	WorkExperience []cv.WorkExperience `json:"work_experience"`
	Projects       []cv.Project        `json:"projects"`
	Achievements   []cv.Achievement    `json:"achievements"`
	Interests      []string            `json:"interests"`
}

func (p DocumentPayload) ToDomain() cv.Document {
	return cv.Document{
		PersonalInfo:   p.PersonalInfo,
		JobTitle:       p.JobTitle,
		Summary:        p.Summary,
		Education:      p.Education,
		Skills:         p.Skills,
		Languages:      p.Languages,
		SocialLinks:    p.SocialLinks,
		WorkExperience: p.WorkExperience,
		Projects:       p.Projects,
		Achievements:   p.Achievements,
		Interests:      p.Interests,
	}
}

type DocumentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UpdatedAt time.Time `json:"updated_at"`

	DocumentPayload
}

func NewDocumentResponse(d cv.Document) DocumentResponse {
	return DocumentResponse{
		ID:        d.ID.String(),
		UserID:    d.UserID.String(),
		UpdatedAt: d.UpdatedAt,
		DocumentPayload: DocumentPayload{
			PersonalInfo:   d.PersonalInfo,
			JobTitle:       d.JobTitle,
			Summary:        d.Summary,
			Education:      d.Education,
			Skills:         emptyIfNil(d.Skills),
			Languages:      emptyIfNil(d.Languages),
			SocialLinks:    emptyIfNil(d.SocialLinks),
			WorkExperience: emptyIfNil(d.WorkExperience),
			Projects:       emptyIfNil(d.Projects),
			Achievements:   emptyIfNil(d.Achievements),
			Interests:      emptyIfNil(d.Interests),
		},
	}
}

func emptyIfNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

type CoverLetterPayload struct {
	Subject   string       `json:"subject"`
	Content   string       `json:"content"`
	Recipient cv.Recipient `json:"recipient"`
}

type CoverLetterResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UpdatedAt time.Time `json:"updated_at"`

	CoverLetterPayload

	// EffectiveContent is what the preview renders: the stored body or
	// the generated default when the body is still empty.
	EffectiveContent string `json:"effective_content"`
}

func NewCoverLetterResponse(cl cv.CoverLetter, doc cv.Document) CoverLetterResponse {
	return CoverLetterResponse{
		ID:        cl.ID.String(),
		UserID:    cl.UserID.String(),
		UpdatedAt: cl.UpdatedAt,
		CoverLetterPayload: CoverLetterPayload{
			Subject:   cl.Subject,
			Content:   cl.Content,
			Recipient: cl.Recipient,
		},
		EffectiveContent: cl.EffectiveContent(doc),
	}
}
