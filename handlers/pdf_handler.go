package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"bizdocs/models"
	"bizdocs/render"
	"bizdocs/repository"
	"bizdocs/utils"
)

type PDFHandler struct {
	Repo     *repository.PDFRepository
	SavePath string
}

func (h *PDFHandler) documentView(w http.ResponseWriter, r *http.Request, t models.DocType) *models.DocumentView {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		http.Error(w, "missing document id", http.StatusBadRequest)
		return nil
	}
	docID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return nil
	}

	view, err := h.Repo.GetDocumentView(t, docID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Document not found", http.StatusNotFound)
			return nil
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	return view
}

// Export generates the PDF for one document, saves it under the export
// directory and uploads it to R2 when configured. A rendering failure
// leaves no file behind.
func (h *PDFHandler) Export(t models.DocType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := h.documentView(w, r, t)
		if view == nil {
			return
		}

		company, err := h.Repo.GetCompanyForPDF()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		pdfBytes, err := render.GeneratePDF(view, company)
		if err != nil {
			log.Error().Err(err).Str("type", string(t)).Str("number", view.Number).Msg("pdf generation failed")
			writeJSON(w, http.StatusInternalServerError, ApiResponse{
				Success: false,
				Message: "Could not generate document",
			})
			return
		}

		saveDir := h.SavePath
		if saveDir == "" {
			saveDir = "./pdfs"
		}
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			http.Error(w, "failed to create save directory: "+err.Error(), http.StatusInternalServerError)
			return
		}

		filename := render.ExportFileName(t, view.Number, time.Now())
		savePath := filepath.Join(saveDir, filename)
		if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
			os.Remove(savePath)
			http.Error(w, "failed to save PDF: "+err.Error(), http.StatusInternalServerError)
			return
		}

		result := map[string]string{"file": filename}
		if utils.R2Configured() {
			fileURL, err := utils.UploadToR2(pdfBytes, filename)
			if err != nil {
				// Upload is best-effort; the local file already exists.
				log.Warn().Err(err).Str("file", filename).Msg("R2 upload failed")
			} else {
				result["url"] = fileURL
			}
		}

		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: result})
	}
}

// RemoveExports deletes every exported PDF for one document: the local
// files and, when R2 is configured, their uploaded copies. Called when a
// document is deleted or its exports are stale.
func (h *PDFHandler) RemoveExports(t models.DocType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := h.documentView(w, r, t)
		if view == nil {
			return
		}

		saveDir := h.SavePath
		if saveDir == "" {
			saveDir = "./pdfs"
		}

		pattern := filepath.Join(saveDir, fmt.Sprintf("%s_%s_*.pdf", t, view.Number))
		matches, err := filepath.Glob(pattern)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		removed := make([]string, 0, len(matches))
		for _, path := range matches {
			if err := os.Remove(path); err != nil {
				log.Warn().Err(err).Str("file", path).Msg("removing exported pdf failed")
				continue
			}
			filename := filepath.Base(path)
			removed = append(removed, filename)
			if utils.R2Configured() {
				if err := utils.DeleteFromR2(filename); err != nil {
					// Same best-effort stance as the upload.
					log.Warn().Err(err).Str("file", filename).Msg("R2 delete failed")
				}
			}
		}

		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: map[string]interface{}{"removed": removed}})
	}
}

// Preview serves the same printable page as on-screen markup.
func (h *PDFHandler) Preview(t models.DocType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := h.documentView(w, r, t)
		if view == nil {
			return
		}

		company, err := h.Repo.GetCompanyForPDF()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		html, err := render.BuildHTML(view, company)
		if err != nil {
			log.Error().Err(err).Str("type", string(t)).Str("number", view.Number).Msg("preview rendering failed")
			writeJSON(w, http.StatusInternalServerError, ApiResponse{
				Success: false,
				Message: "Could not generate document",
			})
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}
