package router

import (
	"context"
	"net/http"

	"pet-adoption-workflow/internal/adapters/storage/memory"
	"pet-adoption-workflow/internal/adapters/storage/seed"
	"pet-adoption-workflow/internal/adapters/storage/sqldb"
	_ "pet-adoption-workflow/internal/docs"
	"pet-adoption-workflow/internal/domain/adoptions"
	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/questionnaires"
	"pet-adoption-workflow/internal/domain/recommendations"
	"pet-adoption-workflow/internal/domain/users"
	"pet-adoption-workflow/internal/domain/workflow"
	"pet-adoption-workflow/internal/middleware"
	"pet-adoption-workflow/internal/platform/logger"
	"pet-adoption-workflow/internal/platform/metrics"
	"pet-adoption-workflow/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa el store SQL (sqlite/postgres). Si no, in-memory.
	DB *sqldb.DB
	// Memory permite inyectar un store en memoria ya sembrado (tests).
	// Si DB y Memory son nil se crea uno con los fixtures por defecto.
	Memory *memory.DB

	// AdminAuth=false deja /api/admin sin gate (modo dev).
	AdminAuth bool

	// RateLimit en cero = sin límite.
	RateLimit middleware.RateLimitConfig

	Machine workflow.Machine
	Logger  logger.Logger    // puede ser nil
	Metrics *metrics.Metrics // puede ser nil
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(m.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var stores Stores
	if opts.DB != nil {
		stores = SQLStores(opts.DB)
	} else {
		mem := opts.Memory
		if mem == nil {
			mem = memory.NewDB()
			if f, err := seed.Default(); err == nil {
				if err := seed.Apply(context.Background(), mem, f, log); err != nil {
					log.Warn("seeding in-memory store failed", map[string]any{"err": err})
				}
			}
		}
		stores = MemoryStores(mem)
	}

	var verifier auth.AdminVerifier
	if opts.AdminAuth {
		verifier = stores.Admins
	}

	// Services por módulo
	usersSvc := users.NewService(stores.Users, log)
	petsSvc := pets.NewService(stores.Pets)
	questionnairesSvc := questionnaires.NewService(stores.Questionnaires, questionnaires.Options{
		Machine:  opts.Machine,
		Observer: m,
		Logger:   log,
	})
	reader := recommendations.NewReader(stores.Recommendations)
	adoptionsSvc := adoptions.NewService(stores.Adoptions, adoptions.Options{
		Machine:  opts.Machine,
		Observer: m,
		Logger:   log,
	})

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.RateLimitWrites(opts.RateLimit))

		users.RegisterRoutes(api, usersSvc)
		pets.RegisterRoutes(api, petsSvc)
		questionnaires.RegisterRoutes(api, questionnairesSvc)
		recommendations.RegisterRoutes(api, reader)
		adoptions.RegisterRoutes(api, adoptionsSvc)

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireAdmin(verifier, log))
			questionnaires.RegisterAdminRoutes(admin, questionnairesSvc)
			adoptions.RegisterAdminRoutes(admin, adoptionsSvc)
		})
	})

	return r
}
