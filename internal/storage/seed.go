package storage

import "campusclubs-backend/internal/domain"

// SeedSnapshot returns the deterministic snapshot a fresh deployment starts
// from. Served by Load when no snapshot has been persisted yet.
func SeedSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Users: []domain.User{
			{
				ID:         "1",
				Name:       "Admin User",
				Email:      "admin@college.edu",
				Role:       domain.UserRoleAdmin,
				Department: "Administration",
				Avatar:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&q=80&w=100",
			},
			{
				ID:         "2",
				Name:       "John Tech",
				Email:      "john@college.edu",
				Role:       domain.UserRoleCoordinator,
				RegNo:      "COORD001",
				Department: "Computer Science",
				Phone:      "1234567890",
				Avatar:     "https://images.unsplash.com/photo-1599566150163-29194dcaad36?auto=format&fit=crop&q=80&w=100",
			},
			{
				ID:         "3",
				Name:       "Sarah Arts",
				Email:      "sarah@college.edu",
				Role:       domain.UserRoleCoordinator,
				RegNo:      "COORD002",
				Department: "Fine Arts",
				Phone:      "0987654321",
				Avatar:     "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=100",
			},
			{
				ID:         "4",
				Name:       "Mike Student",
				Email:      "mike@college.edu",
				Role:       domain.UserRoleStudent,
				RegNo:      "STU001",
				Department: "Computer Science",
				Avatar:     "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&q=80&w=100",
			},
			{
				ID:         "5",
				Name:       "Alice Johnson",
				Email:      "alice@college.edu",
				Role:       domain.UserRoleStudent,
				RegNo:      "STU002",
				Department: "Fine Arts",
				Avatar:     "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&q=80&w=100",
			},
			{
				ID:         "6",
				Name:       "David Chen",
				Email:      "david@college.edu",
				Role:       domain.UserRoleStudent,
				RegNo:      "STU003",
				Department: "Computer Science",
				Avatar:     "https://images.unsplash.com/photo-1633332755192-727a05c4013d?auto=format&fit=crop&q=80&w=100",
			},
		},
		Credentials: map[string]string{
			"admin@college.edu": "abc123",
			"john@college.edu":  "abc123",
			"sarah@college.edu": "abc123",
			"mike@college.edu":  "abc123",
			"alice@college.edu": "abc123",
			"david@college.edu": "abc123",
		},
		Clubs: []domain.Club{
			{
				ID:            "1",
				Name:          "Tech Innovation Club",
				Description:   "Exploring cutting-edge technologies and fostering innovation through hands-on projects, workshops, and tech talks.",
				CoordinatorID: "2",
				Image:         "https://images.unsplash.com/photo-1540575467063-178a50c2df87?auto=format&fit=crop&q=80&w=1200",
				Category:      "Technology",
				CreatedAt:     "2024-01-01T00:00:00Z",
				CreatedBy:     "1",
			},
			{
				ID:            "2",
				Name:          "Arts & Music Society",
				Description:   "A creative hub for artists and musicians to collaborate, perform, and showcase their talents through exhibitions and concerts.",
				CoordinatorID: "3",
				Image:         "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?auto=format&fit=crop&q=80&w=1200",
				Category:      "Arts",
				CreatedAt:     "2024-01-15T00:00:00Z",
				CreatedBy:     "1",
			},
			{
				ID:            "3",
				Name:          "Robotics Club",
				Description:   "Building and programming robots, participating in competitions, and exploring automation technologies.",
				CoordinatorID: "2",
				Image:         "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?auto=format&fit=crop&q=80&w=1200",
				Category:      "Technology",
				CreatedAt:     "2024-02-01T00:00:00Z",
				CreatedBy:     "1",
			},
		},
		Events: []domain.Event{
			{
				ID:              "1",
				Title:           "Tech Workshop 2024",
				Description:     "Learn about AI and Machine Learning through hands-on projects and expert sessions.",
				Date:            "2024-03-15",
				Time:            "14:00",
				Location:        "Main Auditorium",
				ClubID:          "1",
				Image:           "https://images.unsplash.com/photo-1540575467063-178a50c2df87?auto=format&fit=crop&q=80&w=1200",
				RegisteredUsers: []domain.UserID{"4", "6"},
				Status:          domain.EventStatusApproved,
			},
			{
				ID:              "2",
				Title:           "Spring Music Festival",
				Description:     "Annual music festival featuring student performances, live bands, and artistic exhibitions.",
				Date:            "2024-04-01",
				Time:            "18:00",
				Location:        "Campus Amphitheater",
				ClubID:          "2",
				Image:           "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?auto=format&fit=crop&q=80&w=1200",
				RegisteredUsers: []domain.UserID{"5"},
				Status:          domain.EventStatusApproved,
			},
			{
				ID:              "3",
				Title:           "Robotics Competition",
				Description:     "Inter-college robotics competition showcasing autonomous robots and innovative designs.",
				Date:            "2024-03-30",
				Time:            "09:00",
				Location:        "Engineering Block",
				ClubID:          "3",
				Image:           "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?auto=format&fit=crop&q=80&w=1200",
				RegisteredUsers: []domain.UserID{"4", "6"},
				Status:          domain.EventStatusProposed,
				ProposedBy:      "4",
			},
		},
		ClubMemberships: []domain.ClubMembership{
			{UserID: "4", ClubID: "1", JoinedAt: "2024-01-15T00:00:00Z", Role: "Tech Lead"},
			{UserID: "5", ClubID: "2", JoinedAt: "2024-01-20T00:00:00Z", Role: "Performance Director"},
			{UserID: "6", ClubID: "1", JoinedAt: "2024-02-01T00:00:00Z", Role: domain.RoleMember},
			{UserID: "6", ClubID: "3", JoinedAt: "2024-02-15T00:00:00Z", Role: domain.RoleMember},
		},
		CustomRoles: []domain.CustomRole{
			{
				ID:          "1",
				ClubID:      "1",
				Name:        "Tech Lead",
				Description: "Leads technical projects and mentors team members",
				CreatedAt:   "2024-02-01T00:00:00Z",
			},
			{
				ID:          "2",
				ClubID:      "2",
				Name:        "Performance Director",
				Description: "Coordinates and directs club performances",
				CreatedAt:   "2024-02-01T00:00:00Z",
			},
			{
				ID:          "3",
				ClubID:      "3",
				Name:        "Project Manager",
				Description: "Manages robotics projects and team coordination",
				CreatedAt:   "2024-02-15T00:00:00Z",
			},
		},
		JoinRequests: []domain.JoinRequest{
			{
				ID:          "1",
				UserID:      "5",
				ClubID:      "1",
				Status:      domain.JoinRequestStatusPending,
				RequestedAt: "2024-03-01T00:00:00Z",
				Message:     "I would love to learn more about technology and contribute to the club's activities.",
			},
			{
				ID:          "2",
				UserID:      "4",
				ClubID:      "3",
				Status:      domain.JoinRequestStatusPending,
				RequestedAt: "2024-03-02T00:00:00Z",
				Message:     "Interested in joining the robotics team and participating in competitions.",
			},
		},
	}
}
