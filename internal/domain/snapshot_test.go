package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusclubs-backend/internal/domain"
)

func TestSnapshotClone(t *testing.T) {
	orig := &domain.Snapshot{
		Users:       []domain.User{{ID: "1", Name: "Admin"}},
		Credentials: map[string]string{"admin@college.edu": "abc123"},
		Clubs:       []domain.Club{{ID: "1", Name: "Tech"}},
		Events: []domain.Event{
			{ID: "1", RegisteredUsers: []domain.UserID{"1"}},
		},
		ClubMemberships: []domain.ClubMembership{{UserID: "1", ClubID: "1"}},
		JoinRequests:    []domain.JoinRequest{{ID: "1", Status: domain.JoinRequestStatusPending}},
		CustomRoles:     []domain.CustomRole{{ID: "1", Name: "Lead"}},
	}

	clone := orig.Clone()
	clone.Users[0].Name = "Changed"
	clone.Credentials["admin@college.edu"] = "hacked"
	clone.Events[0].RegisteredUsers[0] = "999"
	clone.JoinRequests[0].Status = domain.JoinRequestStatusApproved

	assert.Equal(t, "Admin", orig.Users[0].Name)
	assert.Equal(t, "abc123", orig.Credentials["admin@college.edu"])
	assert.Equal(t, domain.UserID("1"), orig.Events[0].RegisteredUsers[0])
	assert.Equal(t, domain.JoinRequestStatusPending, orig.JoinRequests[0].Status)
}

func TestSnapshotCloneNil(t *testing.T) {
	var snap *domain.Snapshot
	require.Nil(t, snap.Clone())
}

func TestJoinRequestStatusTerminal(t *testing.T) {
	assert.False(t, domain.JoinRequestStatusPending.Terminal())
	assert.True(t, domain.JoinRequestStatusApproved.Terminal())
	assert.True(t, domain.JoinRequestStatusRejected.Terminal())
}

func TestEventRegistered(t *testing.T) {
	e := &domain.Event{RegisteredUsers: []domain.UserID{"1", "2"}}
	assert.True(t, e.Registered("1"))
	assert.False(t, e.Registered("3"))
}
