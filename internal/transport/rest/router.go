package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/dschabow91/maintrack/internal/asset"
	"github.com/dschabow91/maintrack/internal/auth"
	"github.com/dschabow91/maintrack/internal/handoff"
	"github.com/dschabow91/maintrack/internal/inventory"
	"github.com/dschabow91/maintrack/internal/pmschedule"
	"github.com/dschabow91/maintrack/internal/report"
	"github.com/dschabow91/maintrack/internal/template"
	"github.com/dschabow91/maintrack/internal/transport/middleware"
	"github.com/dschabow91/maintrack/internal/transport/swagger"
	"github.com/dschabow91/maintrack/internal/user"
	"github.com/dschabow91/maintrack/internal/workorder"
)

// Handlers bundles every transport handler the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	User      *user.Handler
	WorkOrder *workorder.Handler
	Inventory *inventory.Handler
	Asset     *asset.Handler
	PM        *pmschedule.Handler
	Handoff   *handoff.Handler
	Report    *report.Handler
	Template  *template.Handler
}

// RegisterAllRoutes mounts the API under /api/v1. Admin gates for user
// registration live here as middleware; ownership checks stay in the
// services because they need the record.
func RegisterAllRoutes(router *chi.Mux, db *gorm.DB, h Handlers, logger *slog.Logger, metricsEnabled bool) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))
	if metricsEnabled {
		router.Use(middleware.MetricsMiddleware)
		router.Handle("/metrics", promhttp.Handler())
	}

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Post("/auth/login", h.Auth.Login)

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			// Registration is admin-driven, there is no self sign-up.
			pr.With(h.Auth.RequireAdmin).Post("/auth/register", h.Auth.Register)

			pr.Put("/users/me/password", h.Auth.ChangePassword)
			pr.With(h.Auth.RequireAdmin).Get("/users", h.User.ListUsers)
			pr.Get("/techs", h.User.ListTechs)

			pr.Route("/workorders", func(wr chi.Router) {
				wr.Get("/", h.WorkOrder.List)
				wr.Post("/", h.WorkOrder.Create)
				wr.Get("/{id}", h.WorkOrder.Get)
				wr.Put("/{id}", h.WorkOrder.Update)
				wr.Delete("/{id}", h.WorkOrder.Delete)
				wr.Get("/{id}/comments", h.WorkOrder.ListComments)
				wr.Post("/{id}/comments", h.WorkOrder.AddComment)
				wr.Delete("/{id}/comments/{commentID}", h.WorkOrder.DeleteComment)
			})

			pr.Route("/inventory", func(ir chi.Router) {
				ir.Get("/", h.Inventory.List)
				ir.Post("/", h.Inventory.Create)
				// Quantity updates are open to any authenticated user so
				// techs can decrement stock as they consume parts.
				ir.Put("/{id}", h.Inventory.Update)
				ir.Delete("/{id}", h.Inventory.Delete)
			})

			pr.Route("/pms", func(mr chi.Router) {
				mr.Get("/", h.PM.List)
				mr.Post("/", h.PM.Create)
				mr.Get("/{id}", h.PM.Get)
				mr.Put("/{id}", h.PM.Update)
				mr.Delete("/{id}", h.PM.Delete)
			})

			pr.Route("/reports", func(rr chi.Router) {
				rr.Get("/", h.Report.List)
				rr.Post("/", h.Report.Create)
				rr.Get("/{id}", h.Report.Get)
				rr.Put("/{id}", h.Report.Update)
				rr.Delete("/{id}", h.Report.Delete)
			})

			pr.Route("/handoffs", func(hr chi.Router) {
				hr.Get("/", h.Handoff.List)
				hr.Post("/", h.Handoff.Create)
				hr.Get("/{id}", h.Handoff.Get)
				hr.Put("/{id}", h.Handoff.Update)
				hr.Delete("/{id}", h.Handoff.Delete)
				hr.Post("/{id}/pickup", h.Handoff.Pickup)
				hr.Post("/{id}/done", h.Handoff.Done)
			})

			pr.Route("/assets", func(ar chi.Router) {
				ar.Get("/", h.Asset.List)
				ar.Post("/", h.Asset.Create)
				ar.Put("/{id}", h.Asset.Update)
				ar.Delete("/{id}", h.Asset.Delete)
			})

			pr.Route("/wo-templates", func(tr chi.Router) {
				tr.Get("/", h.Template.List)
				tr.Post("/", h.Template.Create)
				tr.Get("/{id}", h.Template.Get)
				tr.Put("/{id}", h.Template.Update)
				tr.Delete("/{id}", h.Template.Delete)
			})
		})
	})
}
