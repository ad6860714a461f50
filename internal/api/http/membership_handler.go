package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/service"
)

type membershipHandler struct {
	memberships service.MembershipService
	clubs       service.ClubService
}

type memberListResponse struct {
	Users       []domain.User           `json:"users"`
	Memberships []domain.ClubMembership `json:"memberships"`
}

func (h *membershipHandler) listMembers(w http.ResponseWriter, r *http.Request) {
	clubID := domain.ClubID(mux.Vars(r)["id"])

	users, memberships, err := h.memberships.ListClubMembers(r.Context(), clubID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, memberListResponse{Users: users, Memberships: memberships})
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

func (h *membershipHandler) updateRole(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	vars := mux.Vars(r)
	clubID := domain.ClubID(vars["id"])

	if err := authorizeClubManager(r.Context(), claims, h.clubs, clubID); err != nil {
		writeError(w, err)
		return
	}

	var req updateRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	membership, err := h.memberships.UpdateMemberRole(r.Context(), domain.UserID(vars["userId"]), clubID, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, membership)
}

func (h *membershipHandler) removeMember(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	vars := mux.Vars(r)
	clubID := domain.ClubID(vars["id"])

	if err := authorizeClubManager(r.Context(), claims, h.clubs, clubID); err != nil {
		writeError(w, err)
		return
	}

	if err := h.memberships.RemoveMember(r.Context(), domain.UserID(vars["userId"]), clubID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *membershipHandler) listRequests(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	clubID := domain.ClubID(mux.Vars(r)["id"])

	if err := authorizeClubManager(r.Context(), claims, h.clubs, clubID); err != nil {
		writeError(w, err)
		return
	}

	requests, err := h.memberships.ListPendingRequests(r.Context(), clubID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

type submitRequestRequest struct {
	Message string `json:"message"`
}

func (h *membershipHandler) submitRequest(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if err := requireRole(claims, domain.UserRoleStudent); err != nil {
		writeError(w, err)
		return
	}

	var req submitRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	request, err := h.memberships.SubmitJoinRequest(r.Context(), claims.UserID, domain.ClubID(mux.Vars(r)["id"]), req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

type resolveRequestRequest struct {
	Decision        string `json:"decision" validate:"required,oneof=approved rejected"`
	ResponseMessage string `json:"responseMessage"`
	AssignedRole    string `json:"assignedRole"`
}

type resolveRequestResponse struct {
	Request    *domain.JoinRequest    `json:"request"`
	Membership *domain.ClubMembership `json:"membership,omitempty"`
}

func (h *membershipHandler) resolveRequest(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	requestID := domain.RequestID(mux.Vars(r)["id"])

	pending, err := h.memberships.GetJoinRequest(r.Context(), requestID)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := authorizeClubManager(r.Context(), claims, h.clubs, pending.ClubID); err != nil {
		writeError(w, err)
		return
	}

	var req resolveRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	request, membership, err := h.memberships.ResolveJoinRequest(r.Context(), requestID,
		domain.JoinRequestStatus(req.Decision), req.ResponseMessage, req.AssignedRole)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resolveRequestResponse{Request: request, Membership: membership})
}

func (h *membershipHandler) listRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.memberships.ListCustomRoles(r.Context(), domain.ClubID(mux.Vars(r)["id"]))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roles)
}

type createRoleRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (h *membershipHandler) createRole(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	clubID := domain.ClubID(mux.Vars(r)["id"])

	if err := authorizeClubManager(r.Context(), claims, h.clubs, clubID); err != nil {
		writeError(w, err)
		return
	}

	var req createRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	role, err := h.memberships.CreateCustomRole(r.Context(), clubID, req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, role)
}
