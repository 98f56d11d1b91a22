package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"animal-registry/internal/client"

	"github.com/urfave/cli/v3"
)

func serverFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Usage:   "URL base de la API",
			Value:   "http://localhost:8080",
			Sources: cli.EnvVars("ANIMALS_SERVER"),
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Value: 10 * time.Second,
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "salida JSON",
		},
	}
}

func newClient(c *cli.Command) (*client.Client, error) {
	return client.New(c.String("server"), c.Duration("timeout"))
}

func cmdList() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Lista los animales registrados",
		Flags: serverFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cl, err := newClient(c)
			if err != nil {
				return err
			}
			items, err := cl.ListAnimals(ctx)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(os.Stdout, items)
			}
			return printAnimals(os.Stdout, items)
		},
	}
}

func cmdShow() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Detalle de un animal",
		ArgsUsage: "<id>",
		Flags:     serverFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Args().First()
			if id == "" {
				return errors.New("id required")
			}
			cl, err := newClient(c)
			if err != nil {
				return err
			}
			a, err := cl.GetAnimal(ctx, id)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(os.Stdout, a)
			}
			return printAnimals(os.Stdout, []client.Animal{a})
		},
	}
}

func cmdCreate() *cli.Command {
	flags := append(serverFlags(),
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "breed", Value: "CAT", Usage: "CAT|COW|DOG|LAMA"},
		&cli.StringFlag{Name: "age"},
		&cli.StringFlag{Name: "weight"},
		&cli.StringFlag{Name: "height"},
	)

	return &cli.Command{
		Name:  "create",
		Usage: "Registra un animal",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cl, err := newClient(c)
			if err != nil {
				return err
			}
			a, err := cl.CreateAnimal(ctx, client.CreateAnimalInput{
				Name:   c.String("name"),
				Breed:  c.String("breed"),
				Age:    c.String("age"),
				Weight: c.String("weight"),
				Height: c.String("height"),
			})
			if err != nil {
				var vf *client.ValidationFailure
				if errors.As(err, &vf) {
					return fmt.Errorf("%s: %s", vf.Reason, vf.Message)
				}
				return err
			}
			if c.Bool("json") {
				return writeJSON(os.Stdout, a)
			}
			_, err = fmt.Fprintln(os.Stdout, a.ID)
			return err
		},
	}
}

func cmdBreeds() *cli.Command {
	return &cli.Command{
		Name:  "breeds",
		Usage: "Lista las razas aceptadas",
		Flags: serverFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cl, err := newClient(c)
			if err != nil {
				return err
			}
			breeds, err := cl.Breeds(ctx)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(os.Stdout, breeds)
			}
			for _, b := range breeds {
				fmt.Fprintln(os.Stdout, b)
			}
			return nil
		},
	}
}

func printAnimals(w io.Writer, items []client.Animal) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBREED\tAGE\tWEIGHT\tHEIGHT")
	for _, a := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%g\t%g\n", a.ID, a.Name, a.Breed, a.Age, a.Weight, a.Height)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
