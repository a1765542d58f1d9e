package main

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seezol/inputkit/internal/config"
	"github.com/seezol/inputkit/internal/control"
	"github.com/seezol/inputkit/internal/session"
)

var serveDebug bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the websocket control server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "enable verbose debug logging")
}

// runServe loads configuration and serves the control websocket until
// the process is stopped.
func runServe() error {
	log, err := newLogger(serveDebug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sess := session.New(cfg.AuthToken)
	sess.SetTap(cfg.Tap)

	injector := control.NewSystemInjector(sess.Tap)
	srv := control.NewServer(sess, injector,
		time.Duration(cfg.MoveIntervalMs)*time.Millisecond,
		cfg.MoveMinDelta, log)

	mux := http.NewServeMux()
	mux.Handle("/control", srv)

	log.Info("control server listening",
		zap.String("addr", cfg.ListenAddr),
		zap.Int("moveIntervalMs", cfg.MoveIntervalMs))
	return http.ListenAndServe(cfg.ListenAddr, mux)
}

// newLogger builds the serve-path logger.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
