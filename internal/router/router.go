package router

import (
	"net/http"

	_ "animal-registry/docs"
	mem "animal-registry/internal/adapters/storage/memory"
	"animal-registry/internal/domain/animals"
	"animal-registry/internal/middleware"
	"animal-registry/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil

	// Opcional: store inyectado (tests). Si no viene, in-memory propio del router.
	Repository animals.Repository

	RequireNonNegative bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	repo := opts.Repository
	if repo == nil {
		repo = mem.NewAnimalRepo()
	}

	svc := animals.NewService(repo, animals.Options{
		Logger:             log,
		RequireNonNegative: opts.RequireNonNegative,
	})

	animals.RegisterRoutes(r, svc)

	return r
}
