package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type stageOutput struct {
	Period   string `json:"period"`
	Task     string `json:"task"`
	Category string `json:"category"`
}

func (c *CLI) roadmapCommand() *cobra.Command {
	var roleID string

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Print the learning roadmap of a role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			role, err := c.resolveRole(roleID)
			if err != nil {
				return err
			}
			stages, ok := c.roadmaps.Get(role.ID)
			if !ok {
				return fmt.Errorf("no roadmap defined for role %q", role.ID)
			}

			if c.jsonOutput() {
				out := make([]stageOutput, 0, len(stages))
				for _, st := range stages {
					out = append(out, stageOutput{Period: st.Period, Task: st.Task, Category: string(st.Category)})
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			cmd.Printf("%s %s roadmap\n", role.Icon, role.Title)
			t := newTable(cmd.OutOrStdout(), "#", "PERIOD", "CATEGORY", "TASK")
			for i, st := range stages {
				t.row(strconv.Itoa(i+1), st.Period, st.Category.Label(), st.Task)
			}
			return t.flush()
		},
	}

	cmd.Flags().StringVarP(&roleID, "role", "r", "", "role id; prompts when omitted")
	return cmd
}
