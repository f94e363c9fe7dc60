package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"property-generator/internal/config"
	"property-generator/internal/logger"
)

// errFailed is returned once the diagnostics of a run have been printed.
var errFailed = errors.New("generation failed")

// app holds the flags and the configuration resolved from them.
type app struct {
	configPath   string
	logLevel     string
	logJSON      bool
	types        []string
	tagKey       string
	directiveKey string
	output       string
	buildTags    []string
	tests        bool
	comments     bool
	parallelism  int

	cfg *config.Config
}

func createRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "property-generator",
		Short: "Generate accessor methods for annotated Go structs",
		Long: `property-generator reads struct declarations carrying property attributes
(a //property:<attributes> comment on the type, a property:"<attributes>" tag on
fields, or //property:generate for the defaults) and writes getters, setters, mutable accessors and clear methods into
property_gen.go next to them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (default ./"+config.DefaultFile+" when present)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error, disabled")
	flags.BoolVar(&a.logJSON, "log-json", false, "log as JSON")
	flags.StringSliceVar(&a.types, "type", nil, "only handle the named types, repeatable")
	flags.StringVar(&a.tagKey, "tag", "", "struct tag key holding field attributes")
	flags.StringVar(&a.directiveKey, "directive", "", "name of the type comment directive")
	flags.StringVar(&a.output, "output", "", "name of the generated file in each package directory")
	flags.StringSliceVar(&a.buildTags, "tags", nil, "build tags used to load packages")
	flags.BoolVar(&a.tests, "tests", false, "include test files")
	flags.BoolVar(&a.comments, "comments", true, "write doc comments on generated methods")
	flags.IntVar(&a.parallelism, "parallelism", 0, "maximum records planned at once, 0 for GOMAXPROCS")

	root.AddCommand(
		genCmd(a),
		checkCmd(a),
		describeCmd(a),
	)

	return root
}

// setup loads the configuration, applies the flags that were set over it and
// installs the logger in the command context.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	a.override(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	a.cfg = cfg

	log := logger.NewLogger(cfg.LoggerConfig(cmd.ErrOrStderr()))
	cmd.SetContext(logger.ContextWithLogger(cmd.Context(), log))

	return nil
}

func (a *app) override(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("log-level") {
		cfg.Log.Level = a.logLevel
	}

	if changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}

	if changed("type") {
		cfg.Types = a.types
	}

	if changed("tag") {
		cfg.TagKey = a.tagKey
	}

	if changed("directive") {
		cfg.DirectiveKey = a.directiveKey
	}

	if changed("output") {
		cfg.Output = a.output
	}

	if changed("tags") {
		cfg.BuildTags = a.buildTags
	}

	if changed("tests") {
		cfg.Tests = a.tests
	}

	if changed("comments") {
		cfg.Comments = a.comments
	}

	if changed("parallelism") {
		cfg.Parallelism = a.parallelism
	}
}
