package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/203225014/WB-calc/internal/middleware"
)

// NewRouter assembles the full HTTP surface of the service.
//
// Public routes: POST /token, POST /users/, GET /health. The two auth routes
// sit behind a per-IP rate limit. Protected routes require a bearer token
// resolved by the auth middleware. The SPA fallback is registered as the
// NotFound handler so it can never shadow an API route.
func NewRouter(
	authHandler *AuthHandler,
	calcHandler *CalculationHandler,
	spa *SPAHandler,
	resolver middleware.UserResolver,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Get("/health", HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/token", authHandler.HandleToken)
		r.Post("/users/", authHandler.HandleCreateUser)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(resolver))
		r.Get("/users/me", authHandler.HandleMe)
		r.Post("/calculate/", calcHandler.HandleCalculate)
		r.Get("/history/", calcHandler.HandleHistory)
		r.Post("/calculations/", calcHandler.HandleCalculate)
		r.Get("/calculations/", calcHandler.HandleListAll)
	})

	if assets := spa.AssetsHandler(); assets != nil {
		r.Handle("/static/*", assets)
	}

	r.NotFound(spa.ServeIndex)

	return r
}
