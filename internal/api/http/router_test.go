package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "campusclubs-backend/internal/api/http"
	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/logger"
	"campusclubs-backend/internal/repository/snapshot"
	"campusclubs-backend/internal/security"
	"campusclubs-backend/internal/service"
	"campusclubs-backend/internal/storage"
)

func init() {
	logger.Initialize("error", "text")
}

// newTestServer wires the full service stack over an in-memory seed snapshot.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := snapshot.NewStore(context.Background(), storage.NewMemoryStore(nil))
	require.NoError(t, err)

	tokens := security.NewTokenManager("test-secret-0123456789abcdef0123456789", time.Hour, 24*time.Hour)
	verifier, err := security.NewVerifier("plain")
	require.NoError(t, err)
	emailSvc := service.NewDisabledEmailService()

	router := httpapi.NewRouter(httpapi.Services{
		Auth:  service.NewAuthService(store.UserRepository, store.CredentialRepository, verifier, tokens),
		Users: service.NewUserService(store.UserRepository, store.ClubRepository, store.MembershipRepository),
		Clubs: service.NewClubService(store.ClubRepository, store.UserRepository),
		Memberships: service.NewMembershipService(
			store.JoinRequestRepository,
			store.MembershipRepository,
			store.UserRepository,
			store.ClubRepository,
			store.CustomRoleRepository,
			emailSvc,
		),
		Events: service.NewEventService(store.EventRepository, store.ClubRepository, store.UserRepository),
		Admin:  service.NewAdminService(store.UserRepository, verifier, store, emailSvc),
	}, tokens)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

func login(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/auth/login", "", map[string]string{
		"email": email, "password": "abc123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestAuthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Login Rejects Bad Password", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/auth/login", "", map[string]string{
			"email": "mike@college.edu", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Login Validates Body", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/auth/login", "", map[string]string{
			"email": "not-an-email", "password": "abc123",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Protected Route Requires Token", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/v1/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Refresh Rotates Tokens", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/auth/login", "", map[string]string{
			"email": "mike@college.edu", "password": "abc123",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out struct {
			RefreshToken string `json:"refreshToken"`
		}
		require.NoError(t, json.Unmarshal(body, &out))

		resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/auth/refresh", "", map[string]string{
			"refreshToken": out.RefreshToken,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Refresh Token Cannot Access Protected Routes", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/auth/login", "", map[string]string{
			"email": "mike@college.edu", "password": "abc123",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out struct {
			RefreshToken string `json:"refreshToken"`
		}
		require.NoError(t, json.Unmarshal(body, &out))

		resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/v1/me", out.RefreshToken, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestJoinRequestFlow(t *testing.T) {
	srv := newTestServer(t)
	student := login(t, srv, "mike@college.edu")     // user 4
	coordinator := login(t, srv, "john@college.edu") // coordinates clubs 1 and 3

	// Student asks to join the Arts & Music Society.
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/clubs/2/requests", student, map[string]string{
		"message": "I play the drums",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created domain.JoinRequest
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, domain.JoinRequestStatusPending, created.Status)

	t.Run("Coordinator Of Another Club Cannot Resolve", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/requests/"+string(created.ID)+"/resolve", coordinator, map[string]string{
			"decision": "approved",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Student Cannot Resolve", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/requests/"+string(created.ID)+"/resolve", student, map[string]string{
			"decision": "approved",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Bad Decision Is Rejected", func(t *testing.T) {
		owner := login(t, srv, "sarah@college.edu")
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/requests/"+string(created.ID)+"/resolve", owner, map[string]string{
			"decision": "maybe",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Owning Coordinator Approves", func(t *testing.T) {
		owner := login(t, srv, "sarah@college.edu")
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/requests/"+string(created.ID)+"/resolve", owner, map[string]string{
			"decision": "approved", "assignedRole": "Performance Director",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		var out struct {
			Request    domain.JoinRequest     `json:"request"`
			Membership *domain.ClubMembership `json:"membership"`
		}
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, domain.JoinRequestStatusApproved, out.Request.Status)
		require.NotNil(t, out.Membership)
		assert.Equal(t, "Performance Director", out.Membership.Role)
	})

	t.Run("Second Resolution Conflicts", func(t *testing.T) {
		owner := login(t, srv, "sarah@college.edu")
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/requests/"+string(created.ID)+"/resolve", owner, map[string]string{
			"decision": "rejected",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Member Cannot Submit Again", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/clubs/2/requests", student, map[string]string{})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestMembershipEndpoints(t *testing.T) {
	srv := newTestServer(t)
	coordinator := login(t, srv, "john@college.edu")
	student := login(t, srv, "mike@college.edu")

	t.Run("List Members", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/clubs/1/members", student, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Users []domain.User `json:"users"`
		}
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Len(t, out.Users, 2)
	})

	t.Run("Coordinator Updates Role", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPut, srv.URL+"/api/v1/clubs/1/members/6/role", coordinator, map[string]string{
			"role": "Tech Lead",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		var m domain.ClubMembership
		require.NoError(t, json.Unmarshal(body, &m))
		assert.Equal(t, "Tech Lead", m.Role)
	})

	t.Run("Student Cannot Update Roles", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPut, srv.URL+"/api/v1/clubs/1/members/6/role", student, map[string]string{
			"role": "Tech Lead",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Coordinator Removes Member", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/api/v1/clubs/1/members/6", coordinator, nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/clubs/1/members", coordinator, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out struct {
			Users []domain.User `json:"users"`
		}
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Len(t, out.Users, 1)
	})

	t.Run("Custom Roles", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/clubs/1/roles", coordinator, map[string]string{
			"name": "Treasurer", "description": "Keeps the books",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/clubs/1/roles", student, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var roles []domain.CustomRole
		require.NoError(t, json.Unmarshal(body, &roles))
		assert.Len(t, roles, 2)
	})
}

func TestAdminEndpoints(t *testing.T) {
	srv := newTestServer(t)
	admin := login(t, srv, "admin@college.edu")
	student := login(t, srv, "mike@college.edu")

	t.Run("Admin Creates User", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/admin/users", admin, map[string]string{
			"role": "student", "name": "Emma Watson", "email": "emma@college.edu", "password": "secret99",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

		var user domain.User
		require.NoError(t, json.Unmarshal(body, &user))
		assert.Equal(t, domain.UserRoleStudent, user.Role)
	})

	t.Run("Duplicate Email Conflicts", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/admin/users", admin, map[string]string{
			"role": "student", "name": "Mike Clone", "email": "mike@college.edu", "password": "secret99",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Admin Role Is Rejected By Validation", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/admin/users", admin, map[string]string{
			"role": "admin", "name": "Second Admin", "email": "admin2@college.edu", "password": "secret99",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Student Cannot Provision Accounts", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/admin/users", student, map[string]string{
			"role": "student", "name": "X", "email": "x@college.edu", "password": "secret99",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("List Users By Role", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/admin/users?role=coordinator", admin, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var users []domain.User
		require.NoError(t, json.Unmarshal(body, &users))
		assert.Len(t, users, 2)
	})

	t.Run("Export", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/admin/export", admin, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "campus_life_export_")

		var doc service.ExportDocument
		require.NoError(t, json.Unmarshal(body, &doc))
		assert.Len(t, doc.Clubs, 3)
		assert.NotEmpty(t, doc.Users)
	})
}

func TestEventEndpoints(t *testing.T) {
	srv := newTestServer(t)
	admin := login(t, srv, "admin@college.edu")
	coordinator := login(t, srv, "john@college.edu")
	student := login(t, srv, "mike@college.edu")

	t.Run("Coordinator Creates Approved Event", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/clubs/1/events", coordinator, map[string]string{
			"title": "Demo Day", "date": "2024-05-15", "time": "10:00",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

		var event domain.Event
		require.NoError(t, json.Unmarshal(body, &event))
		assert.Equal(t, domain.EventStatusApproved, event.Status)
	})

	t.Run("Student Proposal Awaits Review", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/clubs/1/events", student, map[string]string{
			"title": "Hack Night", "date": "2024-05-20", "time": "19:00",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var event domain.Event
		require.NoError(t, json.Unmarshal(body, &event))
		assert.Equal(t, domain.EventStatusProposed, event.Status)

		resp, _ = doJSON(t, http.MethodPost, srv.URL+fmt.Sprintf("/api/v1/events/%s/resolve", event.ID), admin, map[string]string{
			"decision": "approved",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Wrong Coordinator Cannot Resolve", func(t *testing.T) {
		other := login(t, srv, "sarah@college.edu") // coordinates club 2; event 3 belongs to club 3
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/events/3/resolve", other, map[string]string{
			"decision": "approved",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Owning Coordinator Resolves", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/events/3/resolve", coordinator, map[string]string{
			"decision": "approved",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Registration Round Trip", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/events/2/register", student, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var event domain.Event
		require.NoError(t, json.Unmarshal(body, &event))
		assert.True(t, event.Registered("4"))

		resp, body = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/events/2/register", student, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NoError(t, json.Unmarshal(body, &event))
		assert.False(t, event.Registered("4"))
	})
}

func TestProfileEndpoints(t *testing.T) {
	srv := newTestServer(t)
	student := login(t, srv, "david@college.edu") // user 6

	t.Run("Get Profile", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/me", student, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			User  domain.User   `json:"user"`
			Clubs []domain.Club `json:"clubs"`
		}
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, "David Chen", out.User.Name)
		assert.Len(t, out.Clubs, 2)
	})

	t.Run("Update Profile", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPut, srv.URL+"/api/v1/me", student, map[string]string{
			"phone": "5551234",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var user domain.User
		require.NoError(t, json.Unmarshal(body, &user))
		assert.Equal(t, "5551234", user.Phone)
		assert.Equal(t, "David Chen", user.Name)
	})
}
