package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricker/internal/games/bricker"
	"github.com/vovakirdan/tui-bricker/internal/platform/tui"
	"github.com/vovakirdan/tui-bricker/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve [bricks-per-row] [rows]",
	Short: "Start the bricker SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own round. Scores are stored per-server
(all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bricker/host_key

Examples:
  bricker serve                           # Listen on :23234 with auto-generated key
  bricker serve --ssh :2222               # Listen on port 2222
  bricker serve --difficulty hard 10 6    # Every session plays a hard 10x6 board

Users can connect with:
  ssh -t localhost -p 23234`,
	Args: boardArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig(args)
	if err != nil {
		return err
	}
	images, err := loadImages()
	if err != nil {
		return err
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.DBPath = flagDBPath
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	serverCfg.GameID = bricker.ID
	serverCfg.TickRate = flagFPS
	serverCfg.Settings = registry.Settings{
		Config: cfg,
		Images: images,
	}

	server, err := tui.NewSSHServer(serverCfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting bricker SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
