package animals

import "context"

// Repository es el store de registros. Append es la única mutación.
type Repository interface {
	Append(ctx context.Context, a Animal) error
	List(ctx context.Context) ([]Animal, error)
	GetByID(ctx context.Context, id string) (Animal, error)
	Count(ctx context.Context) (int, error)
}
