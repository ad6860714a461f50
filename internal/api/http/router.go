package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"campusclubs-backend/internal/security"
	"campusclubs-backend/internal/service"
)

// Services holds the service dependencies the handlers dispatch to.
type Services struct {
	Auth        service.AuthService
	Users       service.UserService
	Clubs       service.ClubService
	Memberships service.MembershipService
	Events      service.EventService
	Admin       service.AdminService
}

func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	authH := &authHandler{auth: svcs.Auth}
	api.HandleFunc("/auth/login", authH.login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authH.refresh).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokens))

	userH := &userHandler{users: svcs.Users, memberships: svcs.Memberships, events: svcs.Events}
	protected.HandleFunc("/me", userH.getProfile).Methods(http.MethodGet)
	protected.HandleFunc("/me", userH.updateProfile).Methods(http.MethodPut)

	clubH := &clubHandler{clubs: svcs.Clubs}
	protected.HandleFunc("/clubs", clubH.list).Methods(http.MethodGet)
	protected.HandleFunc("/clubs", clubH.create).Methods(http.MethodPost)
	protected.HandleFunc("/clubs/{id}", clubH.get).Methods(http.MethodGet)
	protected.HandleFunc("/clubs/{id}", clubH.update).Methods(http.MethodPut)

	memberH := &membershipHandler{memberships: svcs.Memberships, clubs: svcs.Clubs}
	protected.HandleFunc("/clubs/{id}/members", memberH.listMembers).Methods(http.MethodGet)
	protected.HandleFunc("/clubs/{id}/members/{userId}/role", memberH.updateRole).Methods(http.MethodPut)
	protected.HandleFunc("/clubs/{id}/members/{userId}", memberH.removeMember).Methods(http.MethodDelete)
	protected.HandleFunc("/clubs/{id}/requests", memberH.listRequests).Methods(http.MethodGet)
	protected.HandleFunc("/clubs/{id}/requests", memberH.submitRequest).Methods(http.MethodPost)
	protected.HandleFunc("/requests/{id}/resolve", memberH.resolveRequest).Methods(http.MethodPost)
	protected.HandleFunc("/clubs/{id}/roles", memberH.listRoles).Methods(http.MethodGet)
	protected.HandleFunc("/clubs/{id}/roles", memberH.createRole).Methods(http.MethodPost)

	eventH := &eventHandler{events: svcs.Events, clubs: svcs.Clubs}
	protected.HandleFunc("/clubs/{id}/events", eventH.listClubEvents).Methods(http.MethodGet)
	protected.HandleFunc("/clubs/{id}/events", eventH.createOrPropose).Methods(http.MethodPost)
	protected.HandleFunc("/events/pending", eventH.listPending).Methods(http.MethodGet)
	protected.HandleFunc("/events/{id}/resolve", eventH.resolve).Methods(http.MethodPost)
	protected.HandleFunc("/events/{id}/register", eventH.register).Methods(http.MethodPost)
	protected.HandleFunc("/events/{id}/register", eventH.unregister).Methods(http.MethodDelete)

	adminH := &adminHandler{admin: svcs.Admin}
	protected.HandleFunc("/admin/users", adminH.createUser).Methods(http.MethodPost)
	protected.HandleFunc("/admin/users", adminH.listUsers).Methods(http.MethodGet)
	protected.HandleFunc("/admin/export", adminH.export).Methods(http.MethodGet)

	return r
}
