package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"payroll/config"
	"payroll/database"
	"payroll/handlers"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type RootOptions struct {
	Port   string
	LogSQL bool
}

var ropts RootOptions

var rootCmd = &cobra.Command{
	Use:   "payroll [flags]",
	Short: "Serve the Pennsylvania payroll record API.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cmd.Flags().Changed("port") {
			cfg.ServerPort = ropts.Port
		}
		if cmd.Flags().Changed("log-sql") {
			cfg.LogSQL = ropts.LogSQL
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return Run(ctx, cfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&ropts.Port, "port", "p", "8000", "Port to listen on (overrides SERVER_PORT)")
	rootCmd.Flags().BoolVar(&ropts.LogSQL, "log-sql", false, "Log every SQL statement (overrides LOG_SQL)")
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatalf("Error executing command: %s", err)
	}
}

// Run serves the API until ctx is cancelled, then shuts the server down and
// discards the record store.
func Run(ctx context.Context, cfg *config.Config) error {
	store, err := database.Open(database.Options{LogSQL: cfg.LogSQL})
	if err != nil {
		return fmt.Errorf("failed to initialize record store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Failed to close record store: %v", err)
		}
	}()

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: handlers.NewRouter(cfg, store),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Printf("Server shutting down")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
