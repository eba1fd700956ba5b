package career

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefault_GetRoleRoundTrip(t *testing.T) {
	c := Default()
	roles := c.ListRoles()
	if len(roles) != 5 {
		t.Fatalf("expected 5 roles, got %d", len(roles))
	}

	for _, r := range roles {
		got, ok := c.GetRole(r.ID)
		if !ok {
			t.Fatalf("role %q not found", r.ID)
		}
		if !reflect.DeepEqual(got, r) {
			t.Fatalf("role %q mismatch: got %+v want %+v", r.ID, got, r)
		}
	}
}

func TestDefault_GetRoleUnknown(t *testing.T) {
	for _, id := range []string{"", "unknown-role", "Software-Developer"} {
		if _, ok := Default().GetRole(id); ok {
			t.Fatalf("expected %q to be not found", id)
		}
	}
}

func TestDefault_ListRolesOrder(t *testing.T) {
	want := []string{"software-developer", "data-analyst", "cloud-engineer", "frontend-developer", "devops-engineer"}
	roles := Default().ListRoles()
	got := make([]string, 0, len(roles))
	for _, r := range roles {
		got = append(got, r.ID)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestDefault_RequiredSkillsInVocabulary(t *testing.T) {
	c := Default()
	if len(c.Vocabulary()) != 37 {
		t.Fatalf("expected 37 vocabulary entries, got %d", len(c.Vocabulary()))
	}
	for _, r := range c.ListRoles() {
		for _, s := range r.RequiredSkills {
			if !c.HasSkill(s) {
				t.Fatalf("role %s requires %q which is not in vocabulary", r.ID, s)
			}
		}
	}
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c := Default()
	r, _ := c.GetRole("data-analyst")
	r.RequiredSkills[0] = "mutated"

	again, _ := c.GetRole("data-analyst")
	if again.RequiredSkills[0] != "Python" {
		t.Fatalf("catalog was mutated through GetRole: %v", again.RequiredSkills)
	}

	list := c.ListRoles()
	list[0].RequiredSkills[0] = "mutated"
	if first := c.ListRoles()[0]; first.RequiredSkills[0] != "Java" {
		t.Fatalf("catalog was mutated through ListRoles: %v", first.RequiredSkills)
	}

	v := c.Vocabulary()
	v[0] = "mutated"
	if c.Vocabulary()[0] != "Java" {
		t.Fatalf("vocabulary was mutated")
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	vocab := []string{"Go", "SQL"}

	tests := []struct {
		name  string
		roles []Role
		vocab []string
		want  error
	}{
		{name: "empty id", roles: []Role{{ID: " "}}, vocab: vocab, want: ErrEmptyRoleID},
		{name: "duplicate id", roles: []Role{{ID: "a"}, {ID: "a"}}, vocab: vocab, want: ErrDuplicateRoleID},
		{name: "duplicate skill", roles: []Role{{ID: "a", RequiredSkills: []string{"Go", "Go"}}}, vocab: vocab, want: ErrDuplicateSkill},
		{name: "unknown skill", roles: []Role{{ID: "a", RequiredSkills: []string{"Rust"}}}, vocab: vocab, want: ErrUnknownSkill},
		{name: "duplicate vocabulary", roles: nil, vocab: []string{"Go", "Go"}, want: ErrDuplicateVocabulary},
		{name: "empty vocabulary entry", roles: nil, vocab: []string{""}, want: ErrEmptySkillName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.roles, tt.vocab)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNewCatalog_NilVocabularySkipsMembership(t *testing.T) {
	c, err := NewCatalog([]Role{{ID: "empty"}, {ID: "custom", RequiredSkills: []string{"Rust"}}}, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 roles, got %d", c.Len())
	}
	if _, ok := c.GetRole("empty"); !ok {
		t.Fatalf("expected role with no required skills to be present")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("roles: [")); err == nil {
		t.Fatalf("expected decode error")
	}
}
