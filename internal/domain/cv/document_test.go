package cv

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestDocument_AddSkill_Deduplicates(t *testing.T) {
	doc := NewDocument(uuid.New())

	if !doc.AddSkill(Skill{Name: "React"}) {
		t.Fatalf("first add should succeed")
	}
	if doc.AddSkill(Skill{Name: "React"}) {
		t.Fatalf("duplicate add should be a no-op")
	}
	if doc.AddSkill(Skill{Name: "  react  "}) {
		t.Fatalf("trimmed case-insensitive duplicate should be a no-op")
	}
	if len(doc.Skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(doc.Skills))
	}
}

func TestDocument_AddSkill_RejectsEmpty(t *testing.T) {
	doc := NewDocument(uuid.New())
	if doc.AddSkill(Skill{Name: "   "}) {
		t.Fatalf("blank skill name should be rejected")
	}
	if len(doc.Skills) != 0 {
		t.Fatalf("expected no skills, got %d", len(doc.Skills))
	}
}

func TestDocument_RemoveSkill(t *testing.T) {
	doc := NewDocument(uuid.New())
	doc.AddSkill(Skill{Name: "Go"})
	doc.AddSkill(Skill{Name: "SQL"})

	if !doc.RemoveSkill("go") {
		t.Fatalf("expected removal to succeed")
	}
	if doc.RemoveSkill("go") {
		t.Fatalf("second removal should report missing")
	}
	if len(doc.Skills) != 1 || doc.Skills[0].Name != "SQL" {
		t.Fatalf("unexpected skills after removal: %+v", doc.Skills)
	}
}

func TestDocument_AddInterest_Deduplicates(t *testing.T) {
	doc := NewDocument(uuid.New())

	for i := 0; i < 3; i++ {
		doc.AddInterest(" Fotografía ")
	}
	if len(doc.Interests) != 1 {
		t.Fatalf("expected 1 interest, got %d", len(doc.Interests))
	}
	if doc.Interests[0] != "Fotografía" {
		t.Fatalf("expected trimmed interest, got %q", doc.Interests[0])
	}
}

func TestCoverLetter_EffectiveContent_DefaultInterpolatesCV(t *testing.T) {
	doc := NewDocument(uuid.New())
	doc.PersonalInfo.FirstName = "Ana"
	doc.PersonalInfo.LastName = "Rojas"
	doc.JobTitle = "Desarrolladora Frontend"

	cl := NewCoverLetter(doc.UserID)
	got := cl.EffectiveContent(doc)
	if got == "" {
		t.Fatalf("default content should not be empty")
	}
	for _, want := range []string{"Ana Rojas", "Desarrolladora Frontend"} {
		if !strings.Contains(got, want) {
			t.Fatalf("default content missing %q:\n%s", want, got)
		}
	}

	cl.Content = "custom body"
	if cl.EffectiveContent(doc) != "custom body" {
		t.Fatalf("stored content must win over the generated default")
	}
}
