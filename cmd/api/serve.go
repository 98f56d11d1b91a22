package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"animal-registry/internal/router"

	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Levanta la API HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Usage:   "puerto HTTP",
				Value:   "8080",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.BoolFlag{
				Name:    "require-non-negative",
				Usage:   "rechaza edad/peso/altura negativos",
				Sources: cli.EnvVars("ANIMALS_REQUIRE_NON_NEGATIVE"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			log := newLogger(c)
			addr := ":" + c.String("port")

			srv := &http.Server{
				Addr: addr,
				Handler: router.NewRouter(router.Options{
					Logger:             log,
					RequireNonNegative: c.Bool("require-non-negative"),
				}),
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting server", map[string]any{"addr": addr})
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", map[string]any{"error": err.Error()})
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Info("shutting down", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
