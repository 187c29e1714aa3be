// Package cmd provides the pagesim command-line interface.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"pagesim"
	"pagesim/internal/config"
	"pagesim/internal/logging"
	"pagesim/tracefile"
)

type options struct {
	envFile  string
	logLevel string
	logFile  string

	trace     string
	traceFile string
	frames    string
	policies  string
	workers   int

	cfg     *config.Config
	logSink io.Closer
}

// NewRootCommand builds the pagesim command tree.
func NewRootCommand() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "pagesim",
		Short: "Simulate FIFO, LRU and Optimal page replacement on a reference trace.",
		Long: `pagesim runs a page reference trace through FIFO, LRU and the clairvoyant ` +
			`Optimal policy and reports hits, faults and victims step by step. Settings come ` +
			`from a .env file, PAGESIM_* environment variables and flags, in increasing priority.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logSink != nil {
				o.logSink.Close()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.envFile, "env", ".env", "dotenv file with PAGESIM_* settings")
	pf.StringVar(&o.logLevel, "log-level", "", "DEBUG, INFO, WARN or ERROR")
	pf.StringVar(&o.logFile, "log-file", "", "also append logs to this file")
	pf.StringVarP(&o.trace, "trace", "t", "", `inline trace, e.g. "1,2,3,1"`)
	pf.StringVarP(&o.traceFile, "file", "f", "", "trace file (.txt, .sz/.snappy or .lz4)")
	pf.StringVarP(&o.frames, "frames", "n", "", `frame capacities, e.g. "3" or "1-7"`)
	pf.StringVarP(&o.policies, "policies", "p", "", `policies, e.g. "fifo,lru,optimal"`)
	pf.IntVar(&o.workers, "workers", 0, "concurrent simulations, 0 for one per CPU")

	root.AddCommand(newRunCommand(o), newCompareCommand(o), newBeladyCommand(o))
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup merges config and flags and installs the logger.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if flags.Changed("trace") {
		cfg.Trace = o.trace
		cfg.TraceFile = ""
	}
	if flags.Changed("file") {
		cfg.TraceFile = o.traceFile
	}
	if flags.Changed("frames") {
		if cfg.Frames, err = config.ParseFrames(o.frames); err != nil {
			return err
		}
	}
	if flags.Changed("policies") {
		if cfg.Policies, err = config.ParsePolicies(o.policies); err != nil {
			return err
		}
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.LogFile != "" {
		if o.logSink, err = logging.InitFile(cmd.ErrOrStderr(), cfg.LogFile, cfg.LogLevel); err != nil {
			return err
		}
	} else {
		logging.Init(cmd.ErrOrStderr(), cfg.LogLevel)
	}
	o.cfg = cfg
	return nil
}

func (o *options) loadTrace() (pagesim.Trace, error) {
	if o.cfg.TraceFile != "" {
		slog.Debug("reading trace", "file", o.cfg.TraceFile, "codec", tracefile.CodecFor(o.cfg.TraceFile))
		return tracefile.ReadFile(o.cfg.TraceFile)
	}
	return tracefile.Parse(o.cfg.Trace)
}
