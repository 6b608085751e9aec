package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockjump/internal/config"
	"github.com/vovakirdan/rockjump/internal/games/rockjump"
	"github.com/vovakirdan/rockjump/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeConfig string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Rock Jump SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game and world. Sessions of all users are
recorded in the same history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.rockjump/host_key

Examples:
  rockjump serve                           # Listen on :23234 with auto-generated key
  rockjump serve --ssh :2222               # Listen on port 2222
  rockjump serve --host-key ./my_host_key  # Use specific host key
  rockjump serve --db ./history.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	// Fail before listening if the config is broken
	gameCfg, err := config.Load(flagServeConfig)
	if err != nil {
		fail("%v", err)
	}
	rockjump.SetConfigPath(flagServeConfig)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.GameID = rockjump.ID
	cfg.TickRate = gameCfg.Display.FPS
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("rockjump-ssh"))
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Rock Jump SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh -t <host> -p <port>")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
