package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rockjump/internal/games/rockjump"
	"github.com/vovakirdan/rockjump/internal/platform/tui"
	"github.com/vovakirdan/rockjump/internal/registry"
	"github.com/vovakirdan/rockjump/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Show past play sessions",
	Long: `Display the most recent play sessions of a game with their frame,
jump and obstacle wrap counts. The game defaults to rockjump.

Examples:
  rockjump history
  rockjump history --limit 25
  rockjump history --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse sessions in a scrollable table")
}

func runHistory(cmd *cobra.Command, args []string) {
	gameID := rockjump.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fail("unknown game %q (run 'rockjump list' to see available games)", gameID)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	title := game.Title()

	// Open history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening history database: %v", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, gameID, title, width, height); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	sessions, err := store.RecentSessions(gameID, flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving sessions: %v", err)
	}

	// Display sessions
	fmt.Printf("History - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rockjump play %s' to start one!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-12s  %-7s  %-6s  %-6s  %-8s  %s\n", "#", "Player", "Frames", "Jumps", "Wraps", "Time", "Date")
	fmt.Printf("  %-5s  %-12s  %-7s  %-6s  %-6s  %-8s  %s\n", "-", "------", "------", "-----", "-----", "----", "----")

	// Print sessions
	for _, s := range sessions {
		fmt.Printf("  %-5d  %-12s  %-7d  %-6d  %-6d  %-8s  %s\n",
			s.ID, s.Player, s.Frames, s.Jumps, s.Wraps,
			s.Duration.Round(time.Second), s.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show totals
	fmt.Println()
	if totals, err := store.Totals(gameID); err == nil {
		fmt.Printf("Total: %d sessions, %d jumps, %d wraps, %s played\n",
			totals.Sessions, totals.Jumps, totals.Wraps, totals.Duration.Round(time.Second))
	}
}
