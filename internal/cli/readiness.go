package cli

import (
	"fmt"
	"strings"

	"roadtrip-career/internal/domain/readiness"
	ucuser "roadtrip-career/internal/usecase/user"

	"github.com/spf13/cobra"
)

type readinessOutput struct {
	RoleID     string   `json:"role_id"`
	Title      string   `json:"title"`
	Percentage int      `json:"percentage"`
	Tier       string   `json:"tier"`
	Message    string   `json:"message"`
	Matched    []string `json:"matched_skills"`
	Missing    []string `json:"missing_skills"`
}

func (c *CLI) readinessCommand() *cobra.Command {
	var (
		roleID string
		skills []string
	)

	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Score a skill set against a role",
		Example: `  careerctl readiness --role data-analyst --skills Python,SQL,Excel
  careerctl readiness --skills Docker,Linux   # pick the role interactively`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			role, err := c.resolveRole(roleID)
			if err != nil {
				return err
			}

			res := readiness.Compute(role, ucuser.NormalizeSkills(skills))
			out := readinessOutput{
				RoleID:     role.ID,
				Title:      role.Title,
				Percentage: res.Percentage,
				Tier:       string(res.Tier),
				Message:    res.Tier.Message(),
				Matched:    res.MatchedSkills,
				Missing:    res.MissingSkills,
			}
			if c.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s: %d%% (%s)\n", role.Icon, role.Title, out.Percentage, out.Tier)
			fmt.Fprintln(w, out.Message)
			fmt.Fprintf(w, "matched (%d): %s\n", len(out.Matched), strings.Join(out.Matched, ", "))
			fmt.Fprintf(w, "missing (%d): %s\n", len(out.Missing), strings.Join(out.Missing, ", "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&roleID, "role", "r", "", "role id; prompts when omitted")
	cmd.Flags().StringSliceVarP(&skills, "skills", "s", nil, "comma separated skills the user has")
	return cmd
}
