package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"pagesim"
	"pagesim/render"
)

func newRunCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Print the step-by-step table of every policy at every capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trace, err := o.loadTrace()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, frames := range o.cfg.Frames {
				reports, err := pagesim.Compare(trace, frames, o.cfg.Policies...)
				if err != nil {
					return err
				}
				for _, r := range reports {
					slog.Info("simulated", "id", r.ID, "policy", r.Policy, "frames", r.Capacity, "faults", r.Faults)
					if err := render.Steps(out, r); err != nil {
						return err
					}
					fmt.Fprintln(out)
				}
			}
			return nil
		},
	}
}
