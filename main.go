package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"reloxmovers/collections"
	"reloxmovers/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateQuotationDates(app); err != nil {
			log.Printf("Warning: quotation date migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Marketing site is static files under ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Admin session ────────────────────────────────────────
		se.Router.POST("/api/admin/login", handlers.HandleAdminLogin(app))
		se.Router.GET("/api/admin/check", handlers.HandleAdminCheck(app))
		se.Router.POST("/api/admin/logout", handlers.HandleAdminLogout(app))

		// ── Quotation CRUD ───────────────────────────────────────
		se.Router.GET("/api/quotations", handlers.RequireAdmin(app, handlers.HandleQuotationList(app)))
		se.Router.POST("/api/quotations", handlers.RequireAdmin(app, handlers.HandleQuotationCreate(app)))

		// Register export must be before /{id} routes so "export" is not
		// matched as a quotation id.
		se.Router.GET("/api/quotations/export/excel", handlers.RequireAdmin(app, handlers.HandleQuotationRegisterExcel(app)))

		se.Router.GET("/api/quotations/{id}", handlers.RequireAdmin(app, handlers.HandleQuotationView(app)))
		se.Router.PUT("/api/quotations/{id}", handlers.RequireAdmin(app, handlers.HandleQuotationUpdate(app)))
		se.Router.DELETE("/api/quotations/{id}", handlers.RequireAdmin(app, handlers.HandleQuotationDelete(app)))

		// ── Quotation export ─────────────────────────────────────
		se.Router.GET("/api/quotations/{id}/export/pdf", handlers.RequireAdmin(app, handlers.HandleQuotationExportPDF(app)))

		// Redirect home to the marketing site
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/static/")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
