package animals

import (
	"context"
	"strings"
	"time"

	"animal-registry/internal/platform/logger"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type Options struct {
	Logger logger.Logger // nil => no loguea

	// Por defecto no se valida rango (edad/peso/altura negativos se aceptan).
	// Con esto activo, un valor negativo falla con el error del campo.
	RequireNonNegative bool
}

type Service struct {
	repo  Repository
	log   logger.Logger
	now   func() time.Time
	newID func() string

	requireNonNegative bool
}

func NewService(repo Repository, opts Options) *Service {
	l := opts.Logger
	if l == nil {
		l = logger.Nop()
	}
	return &Service{
		repo:               repo,
		log:                l.With(map[string]any{"component": "animals"}),
		now:                time.Now,
		newID:              uuid.NewString,
		requireNonNegative: opts.RequireNonNegative,
	}
}

// CreateInput trae los campos tal como los escribió el usuario.
type CreateInput struct {
	Name   string
	Breed  Breed
	Age    string
	Weight string
	Height string
}

// Create valida en orden fijo (nombre, raza, edad, peso, altura) y corta en el
// primer error. Solo si todo es válido se agrega un registro al store.
func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	a, err := s.validate(in)
	if err != nil {
		reason, _ := ReasonOf(err)
		s.log.Debug("animal rejected", map[string]any{"reason": string(reason)})
		return Animal{}, err
	}

	a.ID = s.newID()
	a.CreatedAt = s.now()

	if err := s.repo.Append(ctx, a); err != nil {
		return Animal{}, goerr.Wrap(err, "failed to append animal", goerr.V("id", a.ID))
	}

	s.log.Info("animal created", map[string]any{
		"id":    a.ID,
		"breed": a.Breed.String(),
	})
	return a, nil
}

func (s *Service) validate(in CreateInput) (Animal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Animal{}, goerr.Wrap(ErrEmptyName, "name is required")
	}

	if !in.Breed.Valid() {
		return Animal{}, goerr.Wrap(ErrInvalidBreed, "breed must be one of CAT, COW, DOG, LAMA",
			goerr.V("breed", string(in.Breed)))
	}

	age, ok := parseAge(in.Age)
	if !ok || (s.requireNonNegative && age < 0) {
		return Animal{}, goerr.Wrap(ErrInvalidAge, "age must be an integer", goerr.V("age", in.Age))
	}

	weight, ok := parseMeasure(in.Weight)
	if !ok || (s.requireNonNegative && weight < 0) {
		return Animal{}, goerr.Wrap(ErrInvalidWeight, "weight must be a number", goerr.V("weight", in.Weight))
	}

	height, ok := parseMeasure(in.Height)
	if !ok || (s.requireNonNegative && height < 0) {
		return Animal{}, goerr.Wrap(ErrInvalidHeight, "height must be a number", goerr.V("height", in.Height))
	}

	return Animal{
		Name:   name,
		Breed:  in.Breed,
		Age:    age,
		Weight: weight,
		Height: height,
	}, nil
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
