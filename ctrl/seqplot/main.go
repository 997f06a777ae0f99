// Command seqplot renders example MRI pulse-sequence diagrams: a basic
// gradient-echo quickstart, a diagram with RF and ADC sharing one row, and
// an echo-planar readout train.
package main

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}

func execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "seqplot",
		Short:        "Render MRI pulse-sequence diagrams",
		Long:         "seqplot draws timing charts of RF pulses, gradient waveforms and acquisition windows, stacked as rows over one shared time axis.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newQuickstartCmd())
	root.AddCommand(newMultichannelCmd())
	root.AddCommand(newEPICmd())

	err := root.ExecuteContext(context.Background())
	if err != nil {
		charmlog.Error(err)
	}
	return err
}
