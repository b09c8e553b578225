package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"bizdocs/config"
	"bizdocs/db"
	"bizdocs/db/mongo"
	"bizdocs/db/postgres"
	"bizdocs/handlers"
	"bizdocs/logger"
	"bizdocs/models"
	"bizdocs/repository"
	"bizdocs/routes"
)

func main() {
	// Load config from .env or environment
	cfg := config.LoadConfig()

	if err := logger.Setup(cfg.LogLevel, "console"); err != nil {
		panic(err)
	}

	var blobRepo repository.BlobRepository

	switch cfg.DBType {
	case "postgres":
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		blobRepo = repository.NewPostgresBlobRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		blobRepo = repository.NewMongoBlobRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Cabinets, one per document type, loaded from the blob store
	set := repository.NewDocumentSet(blobRepo)
	defer set.FlushAll()

	companyRepo := repository.NewCompanyRepo(blobRepo)
	userRepo := repository.NewUserRepo(blobRepo)

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo}
	companyHandler := &handlers.CompanyHandler{Repo: companyRepo}
	dashboardHandler := &handlers.DashboardHandler{Set: set}

	pdfRepo := repository.NewPDFRepository(set, companyRepo)
	pdfHandler := &handlers.PDFHandler{Repo: pdfRepo, SavePath: cfg.PDFSavePath}

	invoiceHandler := handlers.NewDocumentHandler(models.DocTypeInvoice, set.Invoices, companyRepo,
		func() *models.Invoice { return &models.Invoice{} })
	quotationHandler := handlers.NewDocumentHandler(models.DocTypeQuotation, set.Quotations, companyRepo,
		func() *models.Quotation { return &models.Quotation{} })
	projectHandler := handlers.NewDocumentHandler(models.DocTypeProject, set.Projects, companyRepo,
		func() *models.ProjectOrder { return &models.ProjectOrder{} })
	challanHandler := handlers.NewDocumentHandler(models.DocTypeChallan, set.Challans, companyRepo,
		func() *models.Challan { return &models.Challan{} })
	proformaHandler := handlers.NewDocumentHandler(models.DocTypeProforma, set.Proformas, companyRepo,
		func() *models.Proforma { return &models.Proforma{} })

	routes.SetupRoutes(
		userHandler, companyHandler, dashboardHandler, pdfHandler,
		invoiceHandler, quotationHandler, projectHandler, challanHandler, proformaHandler,
	)

	log.Info().Str("port", cfg.Port).Msg("server running")
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		panic(err)
	}
}
