package cv

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Document is the single CV owned by a user. It is created implicitly on
// first read and mutated in place; there is no delete or version lifecycle.
type Document struct {
	ID     uuid.UUID
	UserID uuid.UUID

	PersonalInfo PersonalInfo
	JobTitle     string
	Summary      string

	Education      Education
	Skills         []Skill
	Languages      []Language
	SocialLinks    []SocialLink
	WorkExperience []WorkExperience
	Projects       []Project
	Achievements   []Achievement
	Interests      []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PersonalInfo struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	Municipality string `json:"municipality"`
	Department   string `json:"department"`
	ImagePath    string `json:"image_path"`
	BirthDate    string `json:"birth_date"`
	Gender       string `json:"gender"`
}

type Education struct {
	CurrentInstitution string           `json:"current_institution"`
	CurrentDegree      string           `json:"current_degree"`
	StartDate          string           `json:"start_date"`
	EndDate            string           `json:"end_date"`
	GPA                string           `json:"gpa"`
	IsStudying         bool             `json:"is_studying"`
	History            []EducationEntry `json:"history"`
	AcademicAwards     []AcademicAward  `json:"academic_awards"`
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"` // empty means ongoing
	Status      string `json:"status"`
	GPA         string `json:"gpa"`
}

type AcademicAward struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type Skill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type WorkExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"` // empty means ongoing
	Description string `json:"description"`
}

type Project struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// NewDocument returns the empty document inserted on a user's first load.
func NewDocument(userID uuid.UUID) Document {
	now := time.Now().UTC()
	return Document{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddSkill appends a skill unless one with the same trimmed,
// case-insensitive name already exists. Duplicate adds are a no-op.
func (d *Document) AddSkill(s Skill) bool {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return false
	}
	for _, e := range d.Skills {
		if strings.EqualFold(e.Name, s.Name) {
			return false
		}
	}
	d.Skills = append(d.Skills, s)
	return true
}

func (d *Document) RemoveSkill(name string) bool {
	name = strings.TrimSpace(name)
	for i, e := range d.Skills {
		if strings.EqualFold(e.Name, name) {
			d.Skills = append(d.Skills[:i], d.Skills[i+1:]...)
			return true
		}
	}
	return false
}

// AddInterest inserts a free-text interest, de-duplicated on the trimmed string.
func (d *Document) AddInterest(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, e := range d.Interests {
		if strings.EqualFold(e, s) {
			return false
		}
	}
	d.Interests = append(d.Interests, s)
	return true
}

func (d *Document) RemoveInterest(s string) bool {
	s = strings.TrimSpace(s)
	for i, e := range d.Interests {
		if strings.EqualFold(e, s) {
			d.Interests = append(d.Interests[:i], d.Interests[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Document) FullName() string {
	full := strings.TrimSpace(d.PersonalInfo.FirstName + " " + d.PersonalInfo.LastName)
	return full
}
