package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"roadtrip-career/internal/domain/career"
)

func (c *CLI) rolesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List the career roles and their required skills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roles := c.catalog.ListRoles()
			if c.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), roles)
			}

			t := newTable(cmd.OutOrStdout(), "ID", "TITLE", "SKILLS", "REQUIRED")
			for _, r := range roles {
				t.row(r.ID, r.Icon+" "+r.Title, strconv.Itoa(len(r.RequiredSkills)), strings.Join(r.RequiredSkills, ", "))
			}
			return t.flush()
		},
	}
}

func (c *CLI) skillsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "Print the skill vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vocab := c.catalog.Vocabulary()
			if c.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), vocab)
			}
			for _, s := range vocab {
				cmd.Println(s)
			}
			return nil
		},
	}
}

// resolveRole validates an explicit --role or falls back to the interactive
// selector.
func (c *CLI) resolveRole(roleID string) (career.Role, error) {
	roleID = strings.TrimSpace(roleID)
	if roleID == "" {
		if c.selector == nil {
			return career.Role{}, errNoRoleSelected
		}
		picked, err := c.selector(c.catalog.ListRoles())
		if err != nil {
			return career.Role{}, err
		}
		roleID = picked
	}

	role, ok := c.catalog.GetRole(roleID)
	if !ok {
		return career.Role{}, fmt.Errorf("unknown role %q (see `%s roles`)", roleID, app)
	}
	return role, nil
}

func promptRole(roles []career.Role) (string, error) {
	if len(roles) == 0 {
		return "", errNoRoleSelected
	}
	labels := make([]string, 0, len(roles))
	for _, r := range roles {
		labels = append(labels, r.Icon+" "+r.Title)
	}

	prompt := promptui.Select{
		Label: "Career goal",
		Items: labels,
		Size:  len(labels),
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return roles[idx].ID, nil
}
