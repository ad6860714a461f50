package httpapi

import (
	"fmt"
	"net/http"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/service"
)

type adminHandler struct {
	admin service.AdminService
}

type createUserRequest struct {
	Role       string `json:"role" validate:"required,oneof=coordinator student"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	RegNo      string `json:"regNo"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	Avatar     string `json:"avatar" validate:"omitempty,url"`
}

func (h *adminHandler) createUser(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if err := requireRole(claims, domain.UserRoleAdmin); err != nil {
		writeError(w, err)
		return
	}

	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.admin.CreateUser(r.Context(), service.CreateUserInput{
		Role:       domain.UserRole(req.Role),
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		RegNo:      req.RegNo,
		Department: req.Department,
		Phone:      req.Phone,
		Avatar:     req.Avatar,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *adminHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if err := requireRole(claims, domain.UserRoleAdmin); err != nil {
		writeError(w, err)
		return
	}

	users, err := h.admin.ListUsers(r.Context(), domain.UserRole(r.URL.Query().Get("role")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *adminHandler) export(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if err := requireRole(claims, domain.UserRoleAdmin); err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.admin.ExportData(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=campus_life_export_%s.json", doc.ExportDate))
	writeJSON(w, http.StatusOK, doc)
}
