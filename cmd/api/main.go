package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"animal-registry/internal/platform/logger"

	"github.com/urfave/cli/v3"
)

// @title Animal Registry API
// @version 1.0
// @description Registro en memoria de animales: alta validada, listado y detalle.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "animals",
		Usage: "Registro de animales (servidor HTTP y cliente)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug|info|warn|error",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "text|json",
				Value:   "text",
				Sources: cli.EnvVars("LOG_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "app-name",
				Value:   "animal-registry",
				Sources: cli.EnvVars("APP_NAME"),
			},
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdList(),
			cmdShow(),
			cmdCreate(),
			cmdBreeds(),
		},
	}
}

func newLogger(c *cli.Command) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(c.String("log-level")),
		Format: logger.ParseFormat(c.String("log-format")),
		App:    c.String("app-name"),
	})
}
