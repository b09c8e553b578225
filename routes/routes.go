package routes

import (
	"net/http"

	"bizdocs/handlers"
	"bizdocs/models"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// documentAPI is the route surface every document-type handler exposes.
type documentAPI interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request, id string)
	Update(w http.ResponseWriter, r *http.Request, id string)
	Delete(w http.ResponseWriter, r *http.Request)
}

func registerDocumentRoutes(path string, t models.DocType, h documentAPI, pdfHandler *handlers.PDFHandler) {
	http.Handle(path, withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			h.Create(w, r)
		case http.MethodGet:
			h.List(w, r)
		case http.MethodDelete:
			h.Delete(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	exportPDF := pdfHandler.Export(t)
	removeExports := pdfHandler.RemoveExports(t)
	http.Handle(path+"/pdf", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			removeExports(w, r)
			return
		}
		exportPDF(w, r)
	}))))
	http.Handle(path+"/preview", withCORS(http.HandlerFunc(handlers.RecoverWrapper(pdfHandler.Preview(t)))))

	// Get / update by ID
	http.Handle(path+"/", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len(path)+1:]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			h.GetByID(w, r, id)
		case http.MethodPut:
			h.Update(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))
}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	companyHandler *handlers.CompanyHandler,
	dashboardHandler *handlers.DashboardHandler,
	pdfHandler *handlers.PDFHandler,
	invoices documentAPI,
	quotations documentAPI,
	projects documentAPI,
	challans documentAPI,
	proformas documentAPI,
) {
	// User routes
	http.Handle("/signup", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Signup))))
	http.Handle("/login", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Login))))

	// Document routes, one group per type
	registerDocumentRoutes("/invoices", models.DocTypeInvoice, invoices, pdfHandler)
	registerDocumentRoutes("/quotations", models.DocTypeQuotation, quotations, pdfHandler)
	registerDocumentRoutes("/projects", models.DocTypeProject, projects, pdfHandler)
	registerDocumentRoutes("/challans", models.DocTypeChallan, challans, pdfHandler)
	registerDocumentRoutes("/proformas", models.DocTypeProforma, proformas, pdfHandler)

	// Company profile routes
	http.Handle("/company", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			companyHandler.SaveCompany(w, r)
		case http.MethodGet:
			companyHandler.GetCompany(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Dashboard
	http.Handle("/dashboard", withCORS(http.HandlerFunc(handlers.RecoverWrapper(dashboardHandler.Overview))))
}
