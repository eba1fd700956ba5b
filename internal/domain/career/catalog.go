// Package career holds the static role catalog: every target role a user can
// pick as a career goal, together with the skill vocabulary roles draw from.
package career

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

var (
	ErrEmptyRoleID         = errors.New("empty role id")
	ErrDuplicateRoleID     = errors.New("duplicate role id")
	ErrDuplicateSkill      = errors.New("duplicate required skill")
	ErrUnknownSkill        = errors.New("required skill not in vocabulary")
	ErrEmptySkillName      = errors.New("empty skill name")
	ErrDuplicateVocabulary = errors.New("duplicate vocabulary entry")
)

type Role struct {
	ID             string   `yaml:"id"`
	Title          string   `yaml:"title"`
	Icon           string   `yaml:"icon"`
	Description    string   `yaml:"description"`
	RequiredSkills []string `yaml:"required_skills"`
}

func (r Role) clone() Role {
	r.RequiredSkills = slices.Clone(r.RequiredSkills)
	return r
}

// Catalog is immutable once built. All accessors hand out copies.
type Catalog struct {
	roles      []Role
	byID       map[string]int
	vocabulary []string
	vocabSet   map[string]struct{}
}

type catalogFile struct {
	Vocabulary []string `yaml:"vocabulary"`
	Roles      []Role   `yaml:"roles"`
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Parse(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("career: invalid embedded catalog: %v", err))
	}
	return c
})

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	return defaultCatalog()
}

// Parse decodes a YAML catalog document and validates it.
func Parse(b []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewCatalog(f.Roles, f.Vocabulary)
}

// NewCatalog validates roles against the vocabulary. A nil vocabulary skips
// the membership check.
func NewCatalog(roles []Role, vocabulary []string) (*Catalog, error) {
	c := &Catalog{
		roles:      make([]Role, 0, len(roles)),
		byID:       make(map[string]int, len(roles)),
		vocabulary: make([]string, 0, len(vocabulary)),
		vocabSet:   make(map[string]struct{}, len(vocabulary)),
	}

	for _, s := range vocabulary {
		if strings.TrimSpace(s) == "" {
			return nil, ErrEmptySkillName
		}
		if _, ok := c.vocabSet[s]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVocabulary, s)
		}
		c.vocabSet[s] = struct{}{}
		c.vocabulary = append(c.vocabulary, s)
	}

	for _, r := range roles {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			return nil, ErrEmptyRoleID
		}
		if _, ok := c.byID[id]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoleID, id)
		}

		seen := make(map[string]struct{}, len(r.RequiredSkills))
		for _, s := range r.RequiredSkills {
			if _, ok := seen[s]; ok {
				return nil, fmt.Errorf("%w: role=%s skill=%s", ErrDuplicateSkill, id, s)
			}
			seen[s] = struct{}{}
			if vocabulary != nil {
				if _, ok := c.vocabSet[s]; !ok {
					return nil, fmt.Errorf("%w: role=%s skill=%s", ErrUnknownSkill, id, s)
				}
			}
		}

		r.ID = id
		c.byID[id] = len(c.roles)
		c.roles = append(c.roles, r.clone())
	}

	return c, nil
}

// GetRole reports false for an unknown id; callers treat that as "no role
// selected".
func (c *Catalog) GetRole(id string) (Role, bool) {
	if c == nil {
		return Role{}, false
	}
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Role{}, false
	}
	return c.roles[i].clone(), true
}

// ListRoles returns roles in definition order.
func (c *Catalog) ListRoles() []Role {
	if c == nil {
		return nil
	}
	out := make([]Role, 0, len(c.roles))
	for _, r := range c.roles {
		out = append(out, r.clone())
	}
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.roles)
}

func (c *Catalog) Vocabulary() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.vocabulary)
}

func (c *Catalog) HasSkill(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.vocabSet[name]
	return ok
}
