// Package client es el cliente Go de la API de animales (lo usa el CLI).
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"animal-registry/internal/platform/httpclient"
)

// Animal es la vista de un registro tal como la devuelve la API.
type Animal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Age       int       `json:"age"`
	Weight    float64   `json:"weight"`
	Height    float64   `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateAnimalInput son los campos del formulario, sin convertir.
type CreateAnimalInput struct {
	Name   string `json:"name"`
	Breed  string `json:"breed"`
	Age    string `json:"age"`
	Weight string `json:"weight"`
	Height string `json:"height"`
}

// ValidationFailure es el 422 del alta: Reason dice qué campo corregir.
type ValidationFailure struct {
	Reason  string `json:"error"`
	Message string `json:"message"`
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("validation failed: %s (%s)", e.Reason, e.Message)
}

var ErrNotFound = errors.New("animal not found")

type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	if hc.BaseURL == "" {
		return nil, errors.New("client: base url required")
	}
	hc.UserAgent = "animal-registry-cli"
	return &Client{http: hc}, nil
}

func (c *Client) ListAnimals(ctx context.Context) ([]Animal, error) {
	var out []Animal
	if err := c.http.GetJSON(ctx, "/animals", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAnimal(ctx context.Context, id string) (Animal, error) {
	var out Animal
	err := c.http.GetJSON(ctx, "/animals/"+url.PathEscape(id), &out)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) && he.StatusCode == http.StatusNotFound {
			return Animal{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return Animal{}, err
	}
	return out, nil
}

func (c *Client) CreateAnimal(ctx context.Context, in CreateAnimalInput) (Animal, error) {
	var out Animal
	err := c.http.PostJSON(ctx, "/animals", in, &out)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) && he.StatusCode == http.StatusUnprocessableEntity {
			var vf ValidationFailure
			if derr := he.DecodeBody(&vf); derr == nil {
				return Animal{}, &vf
			}
		}
		return Animal{}, err
	}
	return out, nil
}

func (c *Client) Breeds(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.http.GetJSON(ctx, "/breeds", &out); err != nil {
		return nil, err
	}
	return out, nil
}
