package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/service"
)

type eventHandler struct {
	events service.EventService
	clubs  service.ClubService
}

func (h *eventHandler) listClubEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListClubEvents(r.Context(), domain.ClubID(mux.Vars(r)["id"]))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

type eventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location"`
	Image       string `json:"image" validate:"omitempty,url"`
}

// createOrPropose creates the event directly when the caller manages the
// club, and files a proposal for admin review otherwise.
func (h *eventHandler) createOrPropose(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	clubID := domain.ClubID(mux.Vars(r)["id"])

	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	event := &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		ClubID:      clubID,
		Image:       req.Image,
	}

	if claims.Role == domain.UserRoleCoordinator {
		if err := h.events.CreateEvent(r.Context(), claims.UserID, event); err != nil {
			writeError(w, err)
			return
		}
	} else {
		if err := h.events.ProposeEvent(r.Context(), claims.UserID, event); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *eventHandler) listPending(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if err := requireRole(claims, domain.UserRoleAdmin); err != nil {
		writeError(w, err)
		return
	}

	events, err := h.events.ListPendingEvents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

type resolveEventRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}

func (h *eventHandler) resolve(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	eventID := domain.EventID(mux.Vars(r)["id"])

	proposed, err := h.events.GetEvent(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := authorizeClubManager(r.Context(), claims, h.clubs, proposed.ClubID); err != nil {
		writeError(w, err)
		return
	}

	var req resolveEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	event, err := h.events.ResolveEvent(r.Context(), eventID, domain.EventStatus(req.Decision))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *eventHandler) register(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	event, err := h.events.RegisterForEvent(r.Context(), domain.EventID(mux.Vars(r)["id"]), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *eventHandler) unregister(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	event, err := h.events.UnregisterFromEvent(r.Context(), domain.EventID(mux.Vars(r)["id"]), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}
