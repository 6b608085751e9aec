// rockjump is a tiny jump-and-dodge game for the terminal: a rock falls
// under gravity and jumps on input while an obstacle scrolls past.
//
// Usage:
//
//	rockjump play [game]     - Play (defaults to rockjump)
//	rockjump list            - List available games
//	rockjump history [game]  - Show past play sessions
//	rockjump serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: from config)
//	--db <path>           - Set database path (default: ~/.rockjump/history.db)
//	--log-level <level>   - debug, info, warn or error (default: warn)
//	--profile <mode>      - Write a cpu or mem profile to the working directory
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/rockjump/internal/games/rockjump"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
	flagProfile  string
)

var (
	logger   *log.Logger
	profiler interface{ Stop() }
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rockjump",
	Short: "Rock Jump - jump over nothing in your terminal",
	Long: `Rock Jump is a minimal jump-and-dodge game: a rock falls under gravity,
jumps when you press a key, and an obstacle scrolls across the screen.
There is no collision and no score; finished sessions are kept as history.

Available commands:
  play     - Play the game
  list     - Show all available games
  history  - Show past play sessions
  serve    - Start SSH server for remote play

Examples:
  rockjump play
  rockjump play --config ./my-rockjump.yaml --sound
  rockjump history --limit 20
  rockjump serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { teardown() },
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = display.fps from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rockjump/history.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Write a profile: cpu or mem")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and starts the profiler.
func setup(*cobra.Command, []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rockjump",
		Level:           level,
	})

	switch strings.ToLower(flagProfile) {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	default:
		return fmt.Errorf("invalid --profile %q: want cpu or mem", flagProfile)
	}
	if profiler != nil {
		logger.Info("profiling", "mode", flagProfile)
	}
	return nil
}

// teardown stops the profiler, if running.
func teardown() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}

// fail prints an error and exits. The profile is flushed first.
func fail(format string, args ...any) {
	teardown()
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
