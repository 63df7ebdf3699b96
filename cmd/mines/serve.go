package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServePreset string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the minesweeper SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game session and countdown.
Outcomes are stored in the configured stats backend, so all users
share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mines/ssh_host_ed25519

Examples:
  mines serve                           # Listen on the configured address
  mines serve --ssh :2222               # Listen on port 2222
  mines serve --preset blitz            # Serve blitz boards
  mines serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
	serveCmd.Flags().StringVar(&flagServePreset, "preset", "", "Board preset for every connection (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, "mines-ssh")

	preset, err := resolvePreset(cfg, flagServePreset)
	if err != nil {
		return err
	}

	sshCfg := tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKeyPath,
		IdleTimeout: cfg.SSH.IdleTimeout,
		Preset:      preset,
		Ranks:       cfg.Stats.Ranks,
	}
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sshCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeout = flagIdleTimeout
	}

	store, err := storage.OpenStats(cfg.Stats)
	if err != nil {
		logger.Warn("could not open stats store", "backend", cfg.Stats.Backend, "error", err)
		// Continue without stats
		store = nil
	} else {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(sshCfg, store, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Connect with: ssh localhost -p %s\n", portOf(sshCfg.Address))
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.ListenAndServe)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// portOf returns the port part of a listen address.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return port
}
