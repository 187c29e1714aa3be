package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"pagesim"
	"pagesim/render"
)

func newBeladyCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "belady",
		Short: "Sweep frame capacities and flag where more frames caused more faults",
		Long: `belady runs every configured policy at every configured capacity and prints ` +
			`the fault totals. A total marked with * is higher than the total for the next ` +
			`smaller capacity, which is Belady's anomaly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trace, err := o.loadTrace()
			if err != nil {
				return err
			}
			res, err := pagesim.Sweep(trace, o.cfg.Frames, o.cfg.Policies,
				pagesim.SweepOptions{Workers: o.cfg.Workers})
			if err != nil {
				return err
			}
			for _, k := range res.Kinds() {
				if n := len(res.Anomalies(k)); n > 0 {
					slog.Info("anomaly detected", "policy", k, "count", n)
				}
			}
			return render.Sweep(cmd.OutOrStdout(), res)
		},
	}
}
