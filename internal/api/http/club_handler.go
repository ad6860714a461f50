package httpapi

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/security"
	"campusclubs-backend/internal/service"
)

type clubHandler struct {
	clubs service.ClubService
}

func (h *clubHandler) list(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubs.ListClubs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clubs)
}

func (h *clubHandler) get(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubs.GetClub(r.Context(), domain.ClubID(mux.Vars(r)["id"]))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, club)
}

type clubRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	Category      string `json:"category" validate:"required"`
	CoordinatorID string `json:"coordinatorId" validate:"required"`
	Image         string `json:"image" validate:"omitempty,url"`
}

func (h *clubHandler) create(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if err := requireRole(claims, domain.UserRoleAdmin); err != nil {
		writeError(w, err)
		return
	}

	var req clubRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	club := &domain.Club{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		CoordinatorID: domain.UserID(req.CoordinatorID),
		Image:         req.Image,
	}
	if err := h.clubs.CreateClub(r.Context(), claims.UserID, club); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, club)
}

func (h *clubHandler) update(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	clubID := domain.ClubID(mux.Vars(r)["id"])

	if err := authorizeClubManager(r.Context(), claims, h.clubs, clubID); err != nil {
		writeError(w, err)
		return
	}

	var req clubRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	club := &domain.Club{
		ID:            clubID,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		CoordinatorID: domain.UserID(req.CoordinatorID),
		Image:         req.Image,
	}
	if err := h.clubs.UpdateClub(r.Context(), club); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, club)
}

// authorizeClubManager admits admins unconditionally and coordinators only for
// the club they coordinate.
func authorizeClubManager(ctx context.Context, claims *security.UserClaims, clubs service.ClubService, clubID domain.ClubID) error {
	if claims.Role == domain.UserRoleAdmin {
		return nil
	}
	if claims.Role != domain.UserRoleCoordinator {
		return domain.ErrForbidden
	}
	club, err := clubs.GetClub(ctx, clubID)
	if err != nil {
		return err
	}
	if club.CoordinatorID != claims.UserID {
		return domain.ErrForbidden
	}
	return nil
}
