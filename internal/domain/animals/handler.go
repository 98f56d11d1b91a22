package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/breeds", listBreedsHandler())

	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))

		// Detalle
		ar.Get("/{animalID}", getAnimalHandler(svc))
	})
}

// createAnimalRequest es el formulario de alta. Los números llegan como texto,
// igual que los escribe el usuario; la validación y conversión la hace el service.
type createAnimalRequest struct {
	Name   string `json:"name"`
	Breed  string `json:"breed" enums:"CAT,COW,DOG,LAMA"`
	Age    string `json:"age"`
	Weight string `json:"weight"`
	Height string `json:"height"`
}

// animalResponse representa un animal registrado devuelto por la API.
type animalResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Breed     Breed     `json:"breed"`
	Age       int       `json:"age"`
	Weight    float64   `json:"weight"`
	Height    float64   `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

// validationErrorResponse indica qué campo falló.
type validationErrorResponse struct {
	Error   Reason `json:"error" enums:"EMPTY_NAME,INVALID_BREED,INVALID_AGE,INVALID_WEIGHT,INVALID_HEIGHT"`
	Message string `json:"message"`
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Description Valida el formulario en orden (nombre, raza, edad, peso, altura) y registra el animal. Ante el primer campo inválido responde 422 con el motivo y no registra nada.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Campos del formulario, age/weight/height como texto"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json"
// @Failure 422 {object} validationErrorResponse
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// Raza desconocida: se deja pasar tal cual y el service responde INVALID_BREED,
		// respetando el orden de validación (un nombre vacío gana).
		breed, ok := ParseBreed(req.Breed)
		if !ok {
			breed = Breed(req.Breed)
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:   req.Name,
			Breed:  breed,
			Age:    req.Age,
			Weight: req.Weight,
			Height: req.Height,
		})
		if err != nil {
			if reason, ok := ReasonOf(err); ok {
				writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{
					Error:   reason,
					Message: err.Error(),
				})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Devuelve todos los animales en orden de registro.
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Detalle de un animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "animal not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// listBreedsHandler godoc
// @Summary Listar razas
// @Description Conjunto cerrado de razas, en orden fijo.
// @Tags animals
// @Produce json
// @Success 200 {array} string
// @Router /breeds [get]
func listBreedsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Breeds())
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:        a.ID,
		Name:      a.Name,
		Breed:     a.Breed,
		Age:       a.Age,
		Weight:    a.Weight,
		Height:    a.Height,
		CreatedAt: a.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
