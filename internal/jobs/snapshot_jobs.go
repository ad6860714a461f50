package jobs

import (
	"context"
	"fmt"
	"time"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/logger"
)

// BackupSnapshot copies the snapshot file into the configured backup
// directory with a timestamped name.
func (jr *JobRunner) BackupSnapshot() {
	jr.runWithRecovery("BackupSnapshot", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		path, err := jr.backupper.Backup(ctx)
		if err != nil {
			logger.Error("Snapshot backup failed", "error", err)
			return
		}
		logger.Info("Snapshot backed up", "path", path)
	})
}

// AuditSnapshot checks the referential integrity of the persisted object
// graph and logs every finding. It never mutates the snapshot.
func (jr *JobRunner) AuditSnapshot() {
	jr.runWithRecovery("AuditSnapshot", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		snap, err := jr.source.Snapshot(ctx)
		if err != nil {
			logger.Error("Snapshot audit failed to load snapshot", "error", err)
			return
		}

		findings := AuditFindings(snap)
		if len(findings) == 0 {
			logger.Info("Snapshot audit clean",
				"users", len(snap.Users),
				"clubs", len(snap.Clubs),
				"memberships", len(snap.ClubMemberships),
				"joinRequests", len(snap.JoinRequests))
			return
		}
		for _, finding := range findings {
			logger.Warn("Snapshot audit finding", "finding", finding)
		}
	})
}

// AuditFindings reports every integrity violation in the snapshot: dangling
// references, duplicate memberships, pending requests shadowed by an existing
// membership, and coordinators attached to more than one club.
func AuditFindings(snap *domain.Snapshot) []string {
	var findings []string

	users := make(map[domain.UserID]bool, len(snap.Users))
	for _, u := range snap.Users {
		users[u.ID] = true
	}
	clubs := make(map[domain.ClubID]bool, len(snap.Clubs))
	for _, c := range snap.Clubs {
		clubs[c.ID] = true
	}

	coordinators := make(map[domain.UserID]domain.ClubID)
	for _, c := range snap.Clubs {
		if !users[c.CoordinatorID] {
			findings = append(findings, fmt.Sprintf("club %s: coordinator %s does not exist", c.ID, c.CoordinatorID))
		}
		if other, ok := coordinators[c.CoordinatorID]; ok {
			findings = append(findings, fmt.Sprintf("coordinator %s assigned to clubs %s and %s", c.CoordinatorID, other, c.ID))
		} else {
			coordinators[c.CoordinatorID] = c.ID
		}
	}

	type pair struct {
		user domain.UserID
		club domain.ClubID
	}
	members := make(map[pair]bool, len(snap.ClubMemberships))
	for _, m := range snap.ClubMemberships {
		if !users[m.UserID] {
			findings = append(findings, fmt.Sprintf("membership %s/%s: user does not exist", m.UserID, m.ClubID))
		}
		if !clubs[m.ClubID] {
			findings = append(findings, fmt.Sprintf("membership %s/%s: club does not exist", m.UserID, m.ClubID))
		}
		key := pair{m.UserID, m.ClubID}
		if members[key] {
			findings = append(findings, fmt.Sprintf("duplicate membership for user %s in club %s", m.UserID, m.ClubID))
		}
		members[key] = true
	}

	for _, req := range snap.JoinRequests {
		if !users[req.UserID] {
			findings = append(findings, fmt.Sprintf("join request %s: user %s does not exist", req.ID, req.UserID))
		}
		if !clubs[req.ClubID] {
			findings = append(findings, fmt.Sprintf("join request %s: club %s does not exist", req.ID, req.ClubID))
		}
		switch {
		case req.Status == domain.JoinRequestStatusPending && members[pair{req.UserID, req.ClubID}]:
			findings = append(findings, fmt.Sprintf("join request %s: pending but user %s already belongs to club %s", req.ID, req.UserID, req.ClubID))
		case req.Status.Terminal() && req.RespondedAt == "":
			findings = append(findings, fmt.Sprintf("join request %s: %s without a response timestamp", req.ID, req.Status))
		}
	}

	for _, e := range snap.Events {
		if !clubs[e.ClubID] {
			findings = append(findings, fmt.Sprintf("event %s: club %s does not exist", e.ID, e.ClubID))
		}
		for _, uid := range e.RegisteredUsers {
			if !users[uid] {
				findings = append(findings, fmt.Sprintf("event %s: registered user %s does not exist", e.ID, uid))
			}
		}
	}

	for _, r := range snap.CustomRoles {
		if !clubs[r.ClubID] {
			findings = append(findings, fmt.Sprintf("custom role %s: club %s does not exist", r.ID, r.ClubID))
		}
	}

	return findings
}
