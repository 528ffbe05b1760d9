package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/hvacpanel/internal/dashboard"
	"github.com/ziadkadry99/hvacpanel/internal/server"
	"github.com/ziadkadry99/hvacpanel/internal/sidebar"
)

var serverPort int

const shutdownTimeout = 10 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the dashboard server",
	Long:  `Starts the hvacpanel HTTP server: the dashboard shell, the navigation API and the live navigation WebSocket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = serverPort
		}

		log, err := newLogger(cfg.Log.Level, cfg.Log.Development)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, closeStore, err := openPrefs(ctx, cfg.Preferences)
		if err != nil {
			return fmt.Errorf("opening %s preference store: %w", cfg.Preferences.Backend, err)
		}
		defer closeStore()

		core, err := buildRouter(cfg)
		if err != nil {
			return err
		}

		ctrl := sidebar.NewController(ctx, store, log.Named("sidebar"))
		dash, err := dashboard.New(core.parser, core.dispatcher, core.matcher, ctrl, log.Named("dashboard"))
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, log.Named("server"))
		dash.RegisterRoutes(srv.Router())

		log.Info("hvacpanel starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Server.Port),
			zap.String("default_section", cfg.Navigation.DefaultSection),
			zap.String("preferences", cfg.Preferences.Backend),
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serverCmd)
}
