package domain

type RequestID string

type JoinRequestStatus string

const (
	JoinRequestStatusPending  JoinRequestStatus = "pending"
	JoinRequestStatusApproved JoinRequestStatus = "approved"
	JoinRequestStatusRejected JoinRequestStatus = "rejected"
)

// Terminal reports whether no further transition is defined for the status.
func (s JoinRequestStatus) Terminal() bool {
	return s == JoinRequestStatusApproved || s == JoinRequestStatusRejected
}

// JoinRequest is a student-initiated proposal to create a ClubMembership.
// Lifecycle: created pending, resolved exactly once to approved or rejected.
type JoinRequest struct {
	ID              RequestID         `json:"id"`
	UserID          UserID            `json:"userId"`
	ClubID          ClubID            `json:"clubId"`
	Status          JoinRequestStatus `json:"status"`
	RequestedAt     string            `json:"requestedAt"`
	Message         string            `json:"message,omitempty"`
	ResponseMessage string            `json:"responseMessage,omitempty"`
	RespondedAt     string            `json:"respondedAt,omitempty"`
	AssignedRole    string            `json:"assignedRole,omitempty"`
}
