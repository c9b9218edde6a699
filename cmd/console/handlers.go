package main

import (
	"encoding/json"
	"net/http"

	"github.com/helloviza/frontend-hrms-sub002/internal/access"
	"github.com/helloviza/frontend-hrms-sub002/internal/navigation"
	"github.com/helloviza/frontend-hrms-sub002/internal/session"
	"github.com/helloviza/frontend-hrms-sub002/internal/shared/metrics"
)

// meHandler returns the persona and capability set for the current session.
// Page components gate in-page controls off this payload instead of
// re-deriving role heuristics locally.
func (app *App) meHandler(w http.ResponseWriter, r *http.Request) {
	record := session.FromContext(r.Context())
	capabilities := access.Resolve(record)
	metrics.RecordPersonaResolution(string(capabilities.Persona))

	writeJSON(w, http.StatusOK, capabilities)
}

// navigationHandler returns the menu subset visible to the current session.
func (app *App) navigationHandler(w http.ResponseWriter, r *http.Request) {
	record := session.FromContext(r.Context())
	visible := navigation.Project(app.Menu, record)
	metrics.RecordMenuProjection()

	writeJSON(w, http.StatusOK, map[string]any{
		"groups": visible,
	})
}

func (app *App) peopleHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"section": "people",
		"actions": []string{"directory", "invite"},
	})
}

func (app *App) inviteHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email is required"})
		return
	}

	// Invitation delivery is owned by the identity provider; this surface
	// only confirms the caller was allowed to reach it.
	writeJSON(w, http.StatusAccepted, map[string]string{
		"status": "invite accepted",
		"email":  req.Email,
	})
}

// sectionHandler acknowledges access to a guarded console section. Rendering
// is owned by the frontend; the guard outcome is the product here.
func sectionHandler(section string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"section": section})
	}
}

func infoHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    "Workforce Console Access Service",
		"version": "0.1.0",
		"docs":    "/api/v1",
	})
}

func healthHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

func readyHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"server": "ready",
		}

		if app.DB != nil {
			if err := app.DB.Health(r.Context()); err != nil {
				checks["database"] = "not ready: " + err.Error()
			} else {
				checks["database"] = "ready"
			}
		} else {
			checks["database"] = "not configured"
		}

		allReady := true
		for _, status := range checks {
			if status != "ready" && status != "not configured" {
				allReady = false
				break
			}
		}

		status := http.StatusOK
		if !allReady {
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, map[string]any{
			"status": map[bool]string{true: "ready", false: "not ready"}[allReady],
			"checks": checks,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
