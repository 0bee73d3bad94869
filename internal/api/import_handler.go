package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/commercedesk/geodata-api/internal/importer"
	"github.com/commercedesk/geodata-api/internal/model"
	"github.com/gorilla/mux"
)

// ImportHandler handles location data import requests
type ImportHandler struct {
	importer importer.Interface
}

// NewImportHandler creates a new import handler
func NewImportHandler(imp importer.Interface) *ImportHandler {
	return &ImportHandler{importer: imp}
}

// StartImport handles POST /api/v1/locations/import
func (h *ImportHandler) StartImport(w http.ResponseWriter, r *http.Request) {
	var req model.StartImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	importID, err := h.importer.StartImport(req.Format, req.Tables)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrImportInProgress):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, importer.ErrUnknownFormat),
			errors.Is(err, importer.ErrNoTables),
			errors.Is(err, importer.ErrUnknownTable):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("Error starting import: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(model.StartImportResponse{ImportID: importID}); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// GetImportProgress handles GET /api/v1/locations/import/{id}
func (h *ImportHandler) GetImportProgress(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	job := h.importer.GetProgress(id)
	if job == nil {
		http.Error(w, "import not found", http.StatusNotFound)
		return
	}

	writeJSON(w, job)
}

// GetDatasetVersion handles GET /api/v1/locations/version
func (h *ImportHandler) GetDatasetVersion(w http.ResponseWriter, r *http.Request) {
	version, err := h.importer.GetCurrentVersion(r.Context())
	if err != nil {
		log.Printf("Error reading dataset version: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	syncDate, err := h.importer.GetLastSyncDate(r.Context())
	if err != nil {
		log.Printf("Error reading last sync date: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := model.DatasetVersionResponse{DataVersion: version}
	if syncDate != nil {
		formatted := syncDate.Format("2006-01-02 15:04:05")
		resp.LastSyncedAt = &formatted
	}

	writeJSON(w, resp)
}
