// Package cli implements careerctl, the operator command line for the career
// readiness service.
package cli

import (
	"errors"
	"io"
	"os"

	"roadtrip-career/internal/domain/career"
	"roadtrip-career/internal/domain/roadmap"
	"roadtrip-career/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const app = "careerctl"

// Actual version can be specified in build command.
var version = "unknown"

var errNoRoleSelected = errors.New("no role selected")

// RoleSelector asks the operator to pick a role when --role is omitted.
type RoleSelector func(roles []career.Role) (string, error)

type CLI struct {
	out      io.Writer
	v        *viper.Viper
	catalog  *career.Catalog
	roadmaps *roadmap.Selector
	selector RoleSelector

	cfgFile string
}

type Option func(*CLI)

func WithOutput(w io.Writer) Option { return func(c *CLI) { c.out = w } }

func WithRoleSelector(s RoleSelector) Option { return func(c *CLI) { c.selector = s } }

func New(opts ...Option) *CLI {
	c := &CLI{
		out:      os.Stdout,
		v:        viper.New(),
		catalog:  career.Default(),
		roadmaps: roadmap.Default(),
		selector: promptRole,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Execute runs careerctl with os.Args.
func Execute() error {
	return New().Command().Execute()
}

func (c *CLI) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           app,
		Short:         "careerctl inspects the role catalog, scores skill sets and manages the database",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(c.out)

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "a .env or YAML config file (default is ./.env when present)")
	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	root.PersistentFlags().StringP("output", "o", "table", "output format: table or json")

	_ = c.v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))
	_ = c.v.BindPFlag("json", root.PersistentFlags().Lookup("json"))
	_ = c.v.BindPFlag("output", root.PersistentFlags().Lookup("output"))

	root.AddCommand(
		c.rolesCommand(),
		c.skillsCommand(),
		c.readinessCommand(),
		c.rankCommand(),
		c.roadmapCommand(),
		c.migrateCommand(),
		c.seedCommand(),
		c.versionCommand(),
	)
	return root
}

func (c *CLI) logger() *zap.Logger {
	l, err := logger.New(c.v.GetBool("json"), c.v.GetBool("debug"))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func (c *CLI) jsonOutput() bool {
	return c.v.GetString("output") == "json"
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s version: %s\n", app, version)
		},
	}
}
