package animals

import "time"

// Animal es un registro creado por el flujo de validación. No se modifica ni se borra.
type Animal struct {
	ID string

	Name  string
	Breed Breed

	Age    int
	Weight float64
	Height float64

	CreatedAt time.Time
}
