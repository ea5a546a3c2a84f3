package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"wbsoaanvraag/collections"
	"wbsoaanvraag/handlers"
	"wbsoaanvraag/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	app := pocketbase.New()
	cfg := handlers.LoadConfig()

	// Create the drafts collection on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		s := store.New(app)

		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Load the draft into the request context for every route
		se.Router.BindFunc(handlers.DraftMiddleware(s))

		// ── Step 1: company data ─────────────────────────────────
		se.Router.GET("/aanvraag", handlers.HandleCompanyForm(s, cfg))
		se.Router.POST("/aanvraag", handlers.HandleCompanySave(s, cfg))

		// ── Step 2: projects ─────────────────────────────────────
		se.Router.GET("/aanvraag/projecten", handlers.HandleProjectsForm(s, cfg))
		se.Router.POST("/aanvraag/projecten", handlers.HandleProjectsSave(s, cfg))
		se.Router.POST("/aanvraag/projecten/add", handlers.HandleProjectAdd(s, cfg))
		se.Router.POST("/aanvraag/projecten/opslaan", handlers.HandleProjectsDraftSave(s, cfg))
		se.Router.DELETE("/aanvraag/projecten/{id}", handlers.HandleProjectDelete(s))

		// ── Step 3: overview, hours/costs, export ────────────────
		se.Router.GET("/aanvraag/overzicht", handlers.HandleOverview(s, cfg))
		se.Router.POST("/aanvraag/uren-kosten", handlers.HandleHoursCostsSave(s, cfg))
		se.Router.GET("/aanvraag/export/pdf", handlers.HandleExportPDF(s, cfg))
		se.Router.GET("/aanvraag/export/excel", handlers.HandleExportExcel(s, cfg))

		// ── Reset ────────────────────────────────────────────────
		se.Router.POST("/aanvraag/reset", handlers.HandleReset(s))

		// Redirect home to the first step
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/aanvraag")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
