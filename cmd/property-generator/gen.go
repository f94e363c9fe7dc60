package main

import (
	"github.com/spf13/cobra"

	"property-generator/internal/gen"
	"property-generator/internal/logger"
)

func genCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gen [packages...]",
		Short: "Generate accessor methods",
		Long: `Generate writes the accessors of every annotated type of each package into
one file in the package directory. Types that fail validation are reported and
left out; the accessors of the other types are still written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logger.FromContext(ctx)

			r, err := a.planPackages(ctx, args)
			if err != nil {
				return err
			}

			files := a.generate(ctx, r)

			if err := gen.WriteFiles(files); err != nil {
				r.diags.AddErr("", err)
			}

			for _, f := range files {
				if !f.Unformatted {
					log.Info("wrote file", "path", f.Path(), "records", len(f.Records))
				}
			}

			return report(ctx, cmd.ErrOrStderr(), &r.diags)
		},
	}
}
