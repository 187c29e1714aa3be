package cmd

import (
	"github.com/spf13/cobra"

	"pagesim"
	"pagesim/render"
)

func newCompareCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Summarize fault counts of the configured policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trace, err := o.loadTrace()
			if err != nil {
				return err
			}
			var all []*pagesim.Report
			for _, frames := range o.cfg.Frames {
				reports, err := pagesim.Compare(trace, frames, o.cfg.Policies...)
				if err != nil {
					return err
				}
				all = append(all, reports...)
			}
			return render.Summary(cmd.OutOrStdout(), all)
		},
	}
}
