package main

import (
	"github.com/spf13/cobra"

	"property-generator/internal/gen"
)

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages...]",
		Short: "Validate attributes and check generated files are up to date",
		Long: `Check runs the whole generation without writing anything. It fails when an
attribute is invalid or when a generated file differs from what gen would
write.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			r, err := a.planPackages(ctx, args)
			if err != nil {
				return err
			}

			files := a.generate(ctx, r)

			stale, err := gen.StaleFiles(files)
			if err != nil {
				return err
			}

			for _, f := range stale {
				r.diags.AddError("", f.Path()+" is out of date, run gen", "", "")
			}

			return report(ctx, cmd.ErrOrStderr(), &r.diags)
		},
	}
}
