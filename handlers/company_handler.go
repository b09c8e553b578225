package handlers

import (
	"encoding/json"
	"net/http"

	"bizdocs/models"
	"bizdocs/repository"
)

type CompanyHandler struct {
	Repo repository.CompanyRepository
}

func (h *CompanyHandler) SaveCompany(w http.ResponseWriter, r *http.Request) {
	var company models.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repo.SaveCompany(&company); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(company)
}

func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.Repo.GetCompany()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(company)
}
