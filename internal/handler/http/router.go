package http

import (
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/wagebook/wagebook-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	workerHandler WorkerHandler,
	masterHandler MasterHandler,
	attendanceHandler AttendanceHandler,
	paymentHandler PaymentHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wagebook"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/workers", func(r chi.Router) {
			r.Post("/", workerHandler.Create)
			r.Get("/", workerHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", workerHandler.Get)
				r.Put("/", workerHandler.Update)
				r.Delete("/", workerHandler.Delete)
				r.Get("/balance", workerHandler.Balance)
				r.Get("/audits", workerHandler.ListAudits)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", masterHandler.CreateCategory)
			r.Get("/", masterHandler.ListCategories)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", masterHandler.GetCategory)
				r.Put("/", masterHandler.UpdateCategory)
				r.Delete("/", masterHandler.DeleteCategory)
			})
		})

		r.Route("/subcategories", func(r chi.Router) {
			r.Post("/", masterHandler.CreateSubcategory)
			r.Get("/", masterHandler.ListSubcategories)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", masterHandler.GetSubcategory)
				r.Put("/", masterHandler.UpdateSubcategory)
				r.Delete("/", masterHandler.DeleteSubcategory)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", attendanceHandler.Mark)
			r.Post("/bulk", attendanceHandler.BulkMark)
			r.Get("/", attendanceHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", attendanceHandler.Get)
				r.Put("/", attendanceHandler.Update)
				r.Delete("/", attendanceHandler.Delete)
			})
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/", paymentHandler.Record)
			r.Get("/", paymentHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", paymentHandler.Get)
				r.Delete("/", paymentHandler.Delete)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/detailed", reportHandler.Detailed)
			r.Get("/summary", reportHandler.Summary)
		})
	})

	return r
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
