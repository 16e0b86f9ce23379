// Package admin exposes the configuration over HTTP for the connector's
// settings screen: GET returns the full map (defaults merged in), POST
// validates and persists a full replacement.
package admin

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/qburst/pimcore-magento-product-connector/internal/config"
)

// Server serves the configuration endpoints.
type Server struct {
	Store  *config.Store
	Logger *log.Logger
}

// Router builds the HTTP routes. Every configuration route requires the
// admin bearer token from the stored configuration.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/productsync/configuration", func(r chi.Router) {
		r.Use(s.requireToken)
		r.Get("/", s.getConfiguration)
		r.Post("/", s.postConfiguration)
	})

	return r
}

// requireToken matches the Authorization bearer token against the configured
// admin token. An empty configured token locks the endpoint entirely.
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg, err := s.Store.Snapshot()
		if err != nil {
			s.fail(w, http.StatusInternalServerError, "configuration unavailable")
			return
		}

		token := cfg.Get(config.KeyAdminToken)
		presented := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		if token == "" || presented != token {
			s.fail(w, http.StatusUnauthorized, "invalid admin token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) getConfiguration(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.Store.Snapshot()
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "configuration unavailable")
		return
	}

	// merge in defaults for keys added after the file was first written
	for key, value := range config.DefaultConfig() {
		if _, ok := cfg[key]; !ok {
			cfg[key] = value
		}
	}

	s.respond(w, http.StatusOK, cfg)
}

func (s *Server) postConfiguration(w http.ResponseWriter, r *http.Request) {
	var posted config.Config
	if err := json.NewDecoder(r.Body).Decode(&posted); err != nil {
		s.fail(w, http.StatusBadRequest, "request body must be a flat string map")
		return
	}

	if err := validate(posted); err != nil {
		s.fail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.Store.Save(posted); err != nil {
		if s.Logger != nil {
			s.Logger.Printf("save configuration: %v", err)
		}

		s.fail(w, http.StatusInternalServerError, "could not persist configuration")
		return
	}

	s.respond(w, http.StatusOK, map[string]string{"message": "configuration saved"})
}

// validate rejects maps with empty values and malformed or unknown
// locale→store view pairs.
func validate(cfg config.Config) error {
	for key, value := range cfg {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("field %q cannot be empty", key)
		}
	}

	raw := cfg.Get(config.KeyStoreViewTranslations)
	pairs := strings.Fields(raw)
	parsed := config.ParseStoreViews(raw)

	if len(parsed) != len(pairs) {
		return fmt.Errorf("store view translations must be space-separated locale:storeview pairs")
	}

	for _, view := range parsed {
		if !cfg.HasLanguage(view.Locale) {
			return fmt.Errorf("%s is not a configured language", view.Locale)
		}
	}

	return nil
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil && s.Logger != nil {
		s.Logger.Printf("write response: %v", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, message string) {
	s.respond(w, status, map[string]string{"error": message})
}
