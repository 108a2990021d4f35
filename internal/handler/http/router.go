package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/induspriya/attendance-portal/internal/domain/auth"
	"github.com/induspriya/attendance-portal/internal/domain/user"
	"github.com/induspriya/attendance-portal/internal/handler/http/middleware"
)

// RouterDeps bundles everything the router wires together.
type RouterDeps struct {
	Logger      *slog.Logger
	FrontendURL string
	Verifier    auth.Verifier

	AuthHandler       AuthHandler
	AttendanceHandler AttendanceHandler
	LeaveHandler      LeaveHandler
	HolidayHandler    HolidayHandler
	NewsHandler       NewsHandler
	UserHandler       UserHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(deps.Logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	requireAuth := middleware.AuthRequired(deps.Verifier)

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.AuthHandler.Register)
			r.Post("/refresh", deps.AuthHandler.RefreshToken)
			r.Post("/logout", deps.AuthHandler.Logout)
			r.Get("/oauth/callback/google", deps.AuthHandler.OAuthCallbackGoogle)

			r.Route("/login", func(r chi.Router) {
				r.Post("/", deps.AuthHandler.Login)
				r.Get("/oauth/google", deps.AuthHandler.LoginWithGoogle)
			})
		})

		// Public reads
		r.Get("/holidays", deps.HolidayHandler.List)
		r.Get("/holidays/upcoming", deps.HolidayHandler.Upcoming)
		r.Get("/news", deps.NewsHandler.List)
		r.Get("/news/{id}", deps.NewsHandler.Get)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/mark", deps.AttendanceHandler.Mark)
				r.Get("/today", deps.AttendanceHandler.Today)
				r.Get("/me", deps.AttendanceHandler.MyMonth)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleHR))
					r.Get("/", deps.AttendanceHandler.List)
					r.Get("/{id}", deps.AttendanceHandler.Get)
					r.Put("/{id}", deps.AttendanceHandler.Update)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/apply", deps.LeaveHandler.Apply)
				r.Get("/me", deps.LeaveHandler.Mine)
				r.Get("/{id}", deps.LeaveHandler.Get)
				r.Delete("/{id}", deps.LeaveHandler.Cancel)

				r.With(middleware.RequireRole(user.RoleManager, user.RoleHR)).
					Post("/approve/{id}", deps.LeaveHandler.Approve)
				r.With(middleware.RequireRole(user.RoleManager)).
					Get("/pending/manager", deps.LeaveHandler.PendingForManager)
				r.With(middleware.RequireRole(user.RoleHR)).
					Get("/pending/hr", deps.LeaveHandler.PendingForHR)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/holidays", deps.HolidayHandler.Create)
				r.Put("/holidays/{id}", deps.HolidayHandler.Update)
				r.Delete("/holidays/{id}", deps.HolidayHandler.Delete)

				r.Post("/news", deps.NewsHandler.Create)
				r.Put("/news/{id}", deps.NewsHandler.Update)
				r.Post("/news/{id}/publish", deps.NewsHandler.Publish)
				r.Post("/news/{id}/unpublish", deps.NewsHandler.Unpublish)
				r.Delete("/news/{id}", deps.NewsHandler.Delete)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", deps.UserHandler.Me)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", deps.UserHandler.List)
					r.Put("/{id}/role", deps.UserHandler.UpdateRole)
					r.Post("/{id}/deactivate", deps.UserHandler.Deactivate)
					r.Post("/{id}/activate", deps.UserHandler.Activate)
				})
			})
		})
	})

	return r
}
