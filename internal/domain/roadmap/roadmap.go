// Package roadmap serves the fixed, per-role learning plans. A roadmap is a
// template: it does not depend on which skills a user is missing.
package roadmap

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed roadmaps.yaml
var roadmapsYAML []byte

var (
	ErrUnknownCategory = errors.New("unknown stage category")
	ErrEmptyRoleID     = errors.New("empty role id")
	ErrDuplicateRoleID = errors.New("duplicate roadmap role id")
)

type Category string

const (
	CategoryLearn    Category = "learn"
	CategoryPractice Category = "practice"
	CategoryBuild    Category = "build"
	CategoryApply    Category = "apply"
)

// Categories lists the closed set of stage categories in legend order.
func Categories() []Category {
	return []Category{CategoryLearn, CategoryPractice, CategoryBuild, CategoryApply}
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryLearn, CategoryPractice, CategoryBuild, CategoryApply:
		return true
	default:
		return false
	}
}

// Label is the display form of the category.
func (c Category) Label() string {
	if !c.Valid() {
		return string(c)
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseCategory(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

type Stage struct {
	Period   string   `yaml:"period"`
	Task     string   `yaml:"task"`
	Category Category `yaml:"category"`
}

type Selector struct {
	byRole map[string][]Stage
	order  []string
}

type roadmapFile struct {
	Roadmaps []struct {
		Role   string  `yaml:"role"`
		Stages []Stage `yaml:"stages"`
	} `yaml:"roadmaps"`
}

var defaultSelector = sync.OnceValue(func() *Selector {
	s, err := Parse(roadmapsYAML)
	if err != nil {
		panic(fmt.Sprintf("roadmap: invalid embedded roadmaps: %v", err))
	}
	return s
})

func Default() *Selector {
	return defaultSelector()
}

func Parse(b []byte) (*Selector, error) {
	var f roadmapFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode roadmaps: %w", err)
	}

	s := &Selector{byRole: make(map[string][]Stage, len(f.Roadmaps))}
	for _, rm := range f.Roadmaps {
		if err := s.add(rm.Role, rm.Stages); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// NewSelector builds a selector from role id → stages. Iteration order of the
// map is not kept; RoleIDs is sorted in that case.
func NewSelector(roadmaps map[string][]Stage) (*Selector, error) {
	ids := make([]string, 0, len(roadmaps))
	for id := range roadmaps {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	s := &Selector{byRole: make(map[string][]Stage, len(roadmaps))}
	for _, id := range ids {
		if err := s.add(id, roadmaps[id]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Selector) add(roleID string, stages []Stage) error {
	roleID = strings.TrimSpace(roleID)
	if roleID == "" {
		return ErrEmptyRoleID
	}
	if _, ok := s.byRole[roleID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRoleID, roleID)
	}
	for i, st := range stages {
		if !st.Category.Valid() {
			return fmt.Errorf("role=%s stage=%d: %w: %q", roleID, i, ErrUnknownCategory, st.Category)
		}
	}
	s.byRole[roleID] = append(make([]Stage, 0, len(stages)), stages...)
	s.order = append(s.order, roleID)
	return nil
}

// Get returns the stages for roleID in chronological order. The bool is false
// only when no roadmap is defined for the role; a defined roadmap with zero
// stages returns an empty, non-nil slice.
func (s *Selector) Get(roleID string) ([]Stage, bool) {
	if s == nil {
		return nil, false
	}
	stages, ok := s.byRole[strings.TrimSpace(roleID)]
	if !ok {
		return nil, false
	}
	return slices.Clone(stages), true
}

func (s *Selector) RoleIDs() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.order)
}
