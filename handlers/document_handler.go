package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bizdocs/models"
	"bizdocs/repository"
)

// DocumentHandler serves the CRUD surface for one document type. The same
// code drives all five types; newDoc supplies an empty draft of the
// concrete variant for decoding.
type DocumentHandler[T models.Document] struct {
	Type        models.DocType
	Repo        *repository.Store[T]
	CompanyRepo repository.CompanyRepository
	newDoc      func() T
}

func NewDocumentHandler[T models.Document](
	t models.DocType,
	repo *repository.Store[T],
	companyRepo repository.CompanyRepository,
	newDoc func() T,
) *DocumentHandler[T] {
	return &DocumentHandler[T]{Type: t, Repo: repo, CompanyRepo: companyRepo, newDoc: newDoc}
}

// prepare snapshots the company onto the draft, rederives every computed
// field and runs save validation.
func (h *DocumentHandler[T]) prepare(doc T) error {
	company, err := h.CompanyRepo.GetCompany()
	if err != nil {
		return err
	}
	doc.ApplyCompany(company)
	doc.Recompute()
	return doc.Validate()
}

func (h *DocumentHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	doc := h.newDoc()
	if err := json.NewDecoder(r.Body).Decode(doc); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.prepare(doc); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	stored := h.Repo.Add(doc)
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: stored})
}

func (h *DocumentHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	list := h.Repo.List()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *DocumentHandler[T]) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	docID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid document ID", http.StatusBadRequest)
		return
	}

	doc, err := h.Repo.Get(docID)
	if err != nil {
		http.Error(w, "Document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(doc)
}

func (h *DocumentHandler[T]) Update(w http.ResponseWriter, r *http.Request, id string) {
	docID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid document ID", http.StatusBadRequest)
		return
	}

	doc := h.newDoc()
	if err := json.NewDecoder(r.Body).Decode(doc); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.prepare(doc); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	if err := h.Repo.Update(docID, doc); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Document not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: doc})
}

func (h *DocumentHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		http.Error(w, "missing document id", http.StatusBadRequest)
		return
	}

	docID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return
	}

	h.Repo.Delete(docID)

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Document deleted successfully"})
}
