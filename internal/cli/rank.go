package cli

import (
	"fmt"
	"strconv"

	"roadtrip-career/internal/domain/readiness"
	ucuser "roadtrip-career/internal/usecase/user"

	"github.com/spf13/cobra"
)

type rankOutput struct {
	RoleID     string `json:"role_id"`
	Percentage int    `json:"percentage"`
	Tier       string `json:"tier"`
	Matched    int    `json:"matched"`
	Required   int    `json:"required"`
}

func (c *CLI) rankCommand() *cobra.Command {
	var skills []string

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank every role by how ready a skill set is for it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ranked := readiness.Rank(c.catalog.ListRoles(), ucuser.NormalizeSkills(skills))

			out := make([]rankOutput, 0, len(ranked))
			for _, r := range ranked {
				out = append(out, rankOutput{
					RoleID:     r.RoleID,
					Percentage: r.Percentage,
					Tier:       string(r.Tier),
					Matched:    len(r.MatchedSkills),
					Required:   len(r.RequiredSkills),
				})
			}
			if c.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			t := newTable(cmd.OutOrStdout(), "#", "ROLE", "READINESS", "TIER", "MATCHED")
			for i, r := range out {
				t.row(strconv.Itoa(i+1), r.RoleID, fmt.Sprintf("%d%%", r.Percentage), r.Tier, fmt.Sprintf("%d/%d", r.Matched, r.Required))
			}
			return t.flush()
		},
	}

	cmd.Flags().StringSliceVarP(&skills, "skills", "s", nil, "comma separated skills the user has")
	return cmd
}
