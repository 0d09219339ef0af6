package http

import (
	"log/slog"
	"os"

	"github.com/careerbridge/recruit-backend-go/internal/handler/http/middleware"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	applicationHandler ApplicationHandler,
	interviewHandler InterviewHandler,
	scheduleHandler ScheduleHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "careerbridge-recruit"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// SSE stream authenticates via short-lived query token
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/applications", func(r chi.Router) {
				r.With(middleware.RequireStudent).Get("/my", applicationHandler.ListMine)
				r.Get("/{id}", applicationHandler.GetByID)

				// Recruiter only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRecruiter)
					r.Patch("/{id}/status", applicationHandler.Transition)
					r.Post("/{id}/interviews", interviewHandler.Schedule)
				})
			})

			r.With(middleware.RequireRecruiter).
				Get("/opportunities/{id}/applications", applicationHandler.ListByOpportunity)

			r.Route("/interviews", func(r chi.Router) {
				r.Get("/{id}", interviewHandler.GetByID)

				// Recruiter only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRecruiter)
					r.Patch("/{id}/reschedule", interviewHandler.Reschedule)
					r.Patch("/{id}/status", interviewHandler.UpdateStatus)
					r.Delete("/{id}", interviewHandler.Cancel)
				})
			})

			r.Get("/schedule", scheduleHandler.GetSchedule)

			r.Route("/events", func(r chi.Router) {
				r.Get("/", scheduleHandler.ListEvents)
				r.Post("/", scheduleHandler.CreateEvent)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Patch("/read", notificationHandler.MarkAsRead)
				r.Patch("/read-all", notificationHandler.MarkAllAsRead)
				r.Delete("/{id}", notificationHandler.Delete)
				r.Get("/sse-token", notificationHandler.GetSSEToken)
			})
		})
	})
	return r
}
