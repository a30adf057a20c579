package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/rikardjonsson/pylon/internal/api"
)

// serveCommand runs the layout HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout HTTP API",
		Long: `Serve exposes the stored layouts over HTTP: listing, fetching, deleting,
validating posted layouts, rendering to SVG, and first-fit placement
preview. The server shuts down cleanly on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.LoadConfig()
			if err != nil {
				return err
			}
			p, closeStore, err := c.newPersister(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			srv := &http.Server{
				Addr:              addr,
				Handler:           api.NewServer(p, c.Logger).Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("serving layout API", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return err
				}
				if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				c.Logger.Info("server stopped")
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8873", "listen address")
	return cmd
}
