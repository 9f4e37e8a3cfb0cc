// Package server implements the settings backend's wire contract for local
// development: GET returns the full document, POST validates and overwrites
// it whole. There are no partial updates and no authentication, matching
// the production contract.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"watchtune/internal/constants"
	"watchtune/internal/logger"
	"watchtune/internal/models"
	"watchtune/internal/server/store"
)

type Server struct {
	store *store.Store
}

func New(st *store.Store) *Server {
	return &Server{store: st}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get(constants.SettingsPath, s.handleGetSettings)
	r.Post(constants.SettingsPath, s.handleSaveSettings)

	return r
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.store.GetSettings()
	if err != nil {
		logger.Error("Failed to load settings", "error", err)
		http.Error(w, "settings unavailable", http.StatusInternalServerError)
		return
	}

	body, err := models.EncodeSettings(settings)
	if err != nil {
		logger.Error("Failed to encode settings", "error", err)
		http.Error(w, "settings unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeAck(w, http.StatusBadRequest, "reading request body failed")
		return
	}

	settings, err := models.DecodeSettings(body)
	if err != nil {
		writeAck(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateDocument(settings); err != nil {
		writeAck(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.SaveSettings(settings); err != nil {
		logger.Error("Failed to persist settings", "error", err)
		writeAck(w, http.StatusInternalServerError, "persisting settings failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func writeAck(w http.ResponseWriter, status int, errMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   errMsg,
	})
}

// validateDocument enforces the value ranges the real backend checks.
func validateDocument(settings models.Settings) error {
	if settings.AbsenceThreshold <= 0 {
		return fmt.Errorf("absence_threshold must be positive")
	}
	if settings.SmartphoneThreshold <= 0 {
		return fmt.Errorf("smartphone_threshold must be positive")
	}
	for k, v := range settings.MessageExtensions {
		if v <= 0 {
			return fmt.Errorf("message_extensions[%s] must be positive", k)
		}
	}
	for k, obj := range settings.DetectionObjects {
		if obj.ConfidenceThreshold < 0 || obj.ConfidenceThreshold > 1 {
			return fmt.Errorf("detection_objects[%s].confidence_threshold must be within [0,1]", k)
		}
		if obj.AlertThreshold <= 0 {
			return fmt.Errorf("detection_objects[%s].alert_threshold must be positive", k)
		}
	}
	return nil
}
