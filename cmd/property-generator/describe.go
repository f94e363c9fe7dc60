package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"property-generator/internal/plan"
)

const (
	formatYAML = "yaml"
	formatDump = "dump"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func describeCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "describe [packages...]",
		Short: "Print the accessors that would be generated",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatYAML && format != formatDump {
				return fmt.Errorf("unknown format %q, expected %s or %s", format, formatYAML, formatDump)
			}

			ctx := cmd.Context()

			r, err := a.planPackages(ctx, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			switch format {
			case formatYAML:
				data, err := plan.ExportYAML(r.plans)
				if err != nil {
					return err
				}

				if _, err := out.Write(data); err != nil {
					return err
				}
			case formatDump:
				dumpConfig.Fdump(out, plan.ExportPlans(r.plans))
			}

			return report(ctx, cmd.ErrOrStderr(), &r.diags)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatYAML, "output format: yaml or dump")

	return cmd
}
