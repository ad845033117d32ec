package http

import (
	"log/slog"
	"os"

	"github.com/balapan-hq/payroll-backend-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	tokenAuth *jwtauth.JWTAuth,
	payrollHandler PayrollHandler,
	attendanceHandler AttendanceHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "balapan-payroll"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(middleware.AuthRequired(tokenAuth))

			r.Route("/payrolls", func(r chi.Router) {
				r.Route("/periods/{period}", func(r chi.Router) {
					r.Get("/", payrollHandler.ListByPeriod)
					r.Post("/generate", payrollHandler.Generate)
				})

				r.Post("/employees/{employeeID}/periods/{period}/reconcile", payrollHandler.Reconcile)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payrollHandler.Get)
					r.Post("/approve", payrollHandler.Approve)
					r.Post("/pay", payrollHandler.MarkPaid)
					r.Post("/process", payrollHandler.MarkProcessed)
					r.Post("/fines", payrollHandler.AddFine)
					r.Put("/adjustments", payrollHandler.SetAdjustments)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/employees/{employeeID}/periods/{period}/recalculate", attendanceHandler.Recalculate)
			})
		})
	})
	return r
}
