// Package api exposes HTTP handlers for the signup service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/signup/internal/domain"
	"example.com/signup/internal/observability"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/", h.rosterAction)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}
	h.listActivities(w, r)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make(map[string]ActivityView, len(activities))
	for name, activity := range activities {
		out[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, out)
}

// rosterAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister. The activity name is the decoded path
// segment, matched exactly: case-sensitive, spaces and all.
func (h *Handler) rosterAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		http.NotFound(w, r)
		return
	}
	name, action := rest[:idx], rest[idx+1:]

	switch action {
	case "signup":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "unsupported method")
			return
		}
		h.signup(w, r, name)
	case "unregister":
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, "unsupported method")
			return
		}
		h.unregister(w, r, name)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name string) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "missing email parameter")
		return
	}

	activity, err := h.service.Signup(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordRejected("signup", "activity_not_found")
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrAlreadySignedUp):
			observability.RecordRejected("signup", "duplicate")
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is already signed up", email))
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	observability.RecordSignup(name, len(activity.Participants))
	writeMessage(w, fmt.Sprintf("Signed up %s for %s", email, name))
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name string) {
	var req UnregisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "missing email")
		return
	}

	activity, err := h.service.Unregister(r.Context(), name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordRejected("unregister", "activity_not_found")
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrNotRegistered):
			observability.RecordRejected("unregister", "not_registered")
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not registered", req.Email))
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	observability.RecordUnregister(name, len(activity.Participants))
	writeMessage(w, fmt.Sprintf("Unregistered %s from %s", req.Email, name))
}

// UnregisterRequest is the payload for DELETE /activities/{name}/unregister.
type UnregisterRequest struct {
	Email string `json:"email"`
}

// ActivityView is the wire shape of a single activity.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func toActivityView(activity domain.Activity) ActivityView {
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    activity.Participants,
	}
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
