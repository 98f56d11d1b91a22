package animals

import "errors"

// Errores de validación: uno por campo. Son esperables (input del usuario),
// el caller decide cómo mostrarlos. El service los envuelve con goerr para
// adjuntar el valor recibido; usar errors.Is / ReasonOf para distinguirlos.
var (
	ErrEmptyName     = errors.New("name is empty")
	ErrInvalidBreed  = errors.New("invalid breed")
	ErrInvalidAge    = errors.New("invalid age")
	ErrInvalidWeight = errors.New("invalid weight")
	ErrInvalidHeight = errors.New("invalid height")
)

// ErrNotFound lo devuelven los repositorios cuando no existe el id.
var ErrNotFound = errors.New("animal not found")

// Reason identifica el campo que falló, estable para clientes (p.ej. la UI lo traduce).
type Reason string

const (
	ReasonEmptyName     Reason = "EMPTY_NAME"
	ReasonInvalidBreed  Reason = "INVALID_BREED"
	ReasonInvalidAge    Reason = "INVALID_AGE"
	ReasonInvalidWeight Reason = "INVALID_WEIGHT"
	ReasonInvalidHeight Reason = "INVALID_HEIGHT"
)

var reasons = []struct {
	err    error
	reason Reason
}{
	{ErrEmptyName, ReasonEmptyName},
	{ErrInvalidBreed, ReasonInvalidBreed},
	{ErrInvalidAge, ReasonInvalidAge},
	{ErrInvalidWeight, ReasonInvalidWeight},
	{ErrInvalidHeight, ReasonInvalidHeight},
}

// ReasonOf devuelve (reason, true) si err es un error de validación.
func ReasonOf(err error) (Reason, bool) {
	if err == nil {
		return "", false
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason, true
		}
	}
	return "", false
}

// IsValidation indica si err viene de la validación de input.
func IsValidation(err error) bool {
	_, ok := ReasonOf(err)
	return ok
}
