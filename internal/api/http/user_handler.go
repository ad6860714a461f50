package httpapi

import (
	"net/http"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/service"
)

type userHandler struct {
	users       service.UserService
	memberships service.MembershipService
	events      service.EventService
}

type profileResponse struct {
	User             *domain.User            `json:"user"`
	Clubs            []domain.Club           `json:"clubs"`
	Memberships      []domain.ClubMembership `json:"memberships"`
	JoinRequests     []domain.JoinRequest    `json:"joinRequests"`
	RegisteredEvents []domain.Event          `json:"registeredEvents"`
}

func (h *userHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	user, clubs, memberships, err := h.users.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	requests, err := h.memberships.ListUserRequests(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	events, err := h.events.ListRegisteredEvents(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		User:             user,
		Clubs:            clubs,
		Memberships:      memberships,
		JoinRequests:     requests,
		RegisteredEvents: events,
	})
}

type updateProfileRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Avatar     string `json:"avatar" validate:"omitempty,url"`
}

func (h *userHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), claims.UserID, req.Name, req.Phone, req.Department, req.Avatar)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
