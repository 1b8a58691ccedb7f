// agentview - replay and inspect agent-backend response streams as live text.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bazelment/agentview"
	"github.com/bazelment/agentview/render"
	"github.com/bazelment/agentview/sse"
	"github.com/bazelment/agentview/streamtext"
)

var (
	backendFlag string
	agentFlag   string
	configFlag  string
	noColorFlag bool
	verboseFlag bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "agentview",
	Short: "Normalize agent-backend event streams into live text",
	Long: `agentview - replay and inspect agent-backend response streams as live text.

Reads SSE-style "data: " lines produced by an agent-execution backend
(Converse-style or LangGraph-style events) and accumulates the assistant's
streaming text exactly as a live frontend would display it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verboseFlag {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&backendFlag, "backend", "b", "",
		"Backend wire format (default: from config)")
	rootCmd.PersistentFlags().StringVarP(&agentFlag, "agent", "a", "",
		"Agent name used to look up the backend in config")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", ".agentview.yaml",
		"Path to config file")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false,
		"Disable ANSI colors")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Enable debug logging (dropped payloads)")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(backendsCmd)
}

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Replay a captured stream as live text",
	Long: `Replay a captured response stream as live text.

Reads from the given file, or stdin when no file is given. Each change to the
accumulated text is rendered as soon as the line producing it is parsed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := resolveBackend()
		if err != nil {
			return err
		}

		parser, err := agentview.ParserFor(backend, streamtext.WithLogger(slog.Default()))
		if err != nil {
			return err
		}

		var in io.Reader = os.Stdin
		source := "stdin"
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
			source = args[0]
		}

		r := render.NewRenderer(os.Stdout, noColorFlag)
		r.Info("backend="+string(backend), "source="+source)

		pump := sse.NewPump(parser, r.Update)
		if _, err := pump.Run(cmd.Context(), in); err != nil {
			return err
		}
		r.Done()
		return nil
	},
}

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List known backend wire formats",
	Run: func(cmd *cobra.Command, args []string) {
		for _, b := range agentview.Backends() {
			fmt.Println(b)
		}
	},
}

// resolveBackend picks the backend tag from the flag, or from config via the
// agent name, in that order.
func resolveBackend() (agentview.Backend, error) {
	if backendFlag != "" {
		return agentview.Backend(backendFlag), nil
	}
	config, err := agentview.LoadConfig(configFlag)
	if err != nil {
		return "", err
	}
	return config.BackendFor(agentFlag), nil
}
