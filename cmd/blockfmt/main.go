// blockfmt is a command-line companion for blocklog: it cleans raw
// stack traces into arrow-form frames and renders demo blocks for
// eyeballing console themes.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/willibrandon/blocklog"
	"github.com/willibrandon/blocklog/core"
	"github.com/willibrandon/blocklog/sinks"
	"github.com/willibrandon/blocklog/trace"
)

// logger reports blockfmt's own operational failures, never block
// output.
var logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

func main() {
	// A .env beside the binary may carry SENTRY_DSN for the demo.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blockfmt",
		Short:         "Clean stack traces and preview blocklog output",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTraceCmd(), newDemoCmd())
	return root
}

func newTraceCmd() *cobra.Command {
	var (
		single bool
		marker string
		skip   int
	)

	cmd := &cobra.Command{
		Use:   "trace [file]",
		Short: "Reformat a raw stack trace from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args)
			if err != nil {
				return err
			}

			var opts []trace.Option
			if single {
				opts = append(opts, trace.WithSingleFrame(marker))
			}
			for ; skip > 0; skip-- {
				if i := strings.IndexByte(raw, '\n'); i >= 0 {
					raw = raw[i+1:]
				} else {
					raw = ""
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), trace.New(opts...).Parse(raw))
			return nil
		},
	}

	cmd.Flags().BoolVar(&single, "single", false, "keep only the first frame matching --marker")
	cmd.Flags().StringVar(&marker, "marker", "", "path prefix identifying the application's own sources")
	cmd.Flags().IntVar(&skip, "skip", 0, "leading lines to discard before parsing")
	return cmd
}

func newDemoCmd() *cobra.Command {
	var (
		tree    bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a sample block with the current theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := sinks.NewConsoleSinkWithWriter(cmd.OutOrStdout())
			if noColor {
				sink.SetUseColor(false)
			}

			opts := []blocklog.Option{blocklog.WithSink(sink)}
			if tree {
				opts = append(opts, blocklog.WithTreeStyle())
			}
			log := blocklog.New(opts...)
			defer log.Close()

			log.Print("sample message", 42, true)
			log.Warn(core.DictOf(
				"service", "payments",
				"attempts", 3,
				"endpoint", core.DictOf("host", "localhost", "port", 8080),
			))
			log.Checkpoint("demo complete")
			return nil
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "render containers as ASCII trees")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")
	return cmd
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read trace file: %w", err)
	}
	return string(data), nil
}
