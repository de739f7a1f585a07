package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zarlcorp/zpersona/internal/export"
	"github.com/zarlcorp/zpersona/internal/persona"
	"github.com/zarlcorp/zpersona/internal/store"
)

type generateRequest struct {
	Seed string `json:"seed"`
	Save bool   `json:"save"`
}

type fillFormRequest struct {
	PersonaID string `json:"persona_id"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if r.Body != nil {
		// an empty body means "random, don't save"
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	var p persona.Persona
	var err error
	if req.Seed != "" {
		p, err = s.asm.FromSeedString(req.Seed)
	} else {
		p, err = s.asm.Generate(nil, "")
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if req.Save {
		if _, err := s.store.Save(p); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Load(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeNotFound(w)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	existed, err := s.store.Delete(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !existed {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Regenerate(chi.URLParam(r, "id"), s.asm)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeNotFound(w)
		case errors.Is(err, persona.ErrNotReproducible):
			writeJSON(w, http.StatusConflict, map[string]string{
				"error": "persona has no seed and cannot be regenerated",
			})
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Load(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeNotFound(w)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	out, err := export.Render(p, format)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if format == "json" {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}

func (s *Server) handleFillForm(w http.ResponseWriter, r *http.Request) {
	var req fillFormRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	var p persona.Persona
	var err error
	if req.PersonaID != "" {
		p, err = s.store.Load(req.PersonaID)
		if errors.Is(err, store.ErrNotFound) {
			writeNotFound(w)
			return
		}
	} else {
		p, err = s.asm.Generate(nil, "")
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, formFields(p))
}

// formFields projects a persona onto the field names common HTML forms
// use, for the browser-extension autofill.
func formFields(p persona.Persona) map[string]string {
	return map[string]string{
		"firstName":  p.FirstName,
		"lastName":   p.LastName,
		"name":       p.Name,
		"email":      p.Email,
		"phone":      p.Phone,
		"address":    p.Address.Street,
		"city":       p.Address.City,
		"state":      p.Address.State,
		"zip":        p.Address.Zipcode,
		"country":    p.Address.Country,
		"company":    p.Company,
		"jobTitle":   p.JobTitle,
		"website":    p.Website,
		"creditCard": p.CreditCard.Number,
		"ccExpiry":   p.CreditCard.Expire,
		"ccCvv":      p.CreditCard.SecurityCode,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "persona not found"})
}

func writeError(w http.ResponseWriter, status int, err error) {
	slog.Error("request failed", "err", err)
	writeJSON(w, status, map[string]string{"error": "internal error"})
}
