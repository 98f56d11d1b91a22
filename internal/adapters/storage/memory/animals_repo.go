package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animal-registry/internal/domain/animals"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrNotFound = animals.ErrNotFound
)

// animalRepo guarda los registros en orden de llegada; byID es solo índice.
type animalRepo struct {
	mu    sync.RWMutex
	items []animals.Animal
	byID  map[string]int
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		items: make([]animals.Animal, 0),
		byID:  make(map[string]int),
	}
}

func (r *animalRepo) Append(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return goerr.New("animal already exists", goerr.V("id", a.ID))
	}

	r.byID[a.ID] = len(r.items)
	r.items = append(r.items, a)
	return nil
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// copia: el caller no debe poder tocar el slice interno
	out := make([]animals.Animal, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, goerr.Wrap(ErrNotFound, "animal not found", goerr.V("id", id))
	}
	return r.items[i], nil
}

func (r *animalRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}
