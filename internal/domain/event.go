package domain

type EventID string

type EventStatus string

const (
	EventStatusProposed EventStatus = "proposed"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

type Event struct {
	ID              EventID     `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Date            string      `json:"date"`
	Time            string      `json:"time"`
	Location        string      `json:"location,omitempty"`
	ClubID          ClubID      `json:"clubId"`
	Image           string      `json:"image,omitempty"`
	RegisteredUsers []UserID    `json:"registeredUsers"`
	Status          EventStatus `json:"status"`
	ProposedBy      UserID      `json:"proposedBy,omitempty"`
}

// Registered reports whether the user appears in the event's registration set.
func (e *Event) Registered(userID UserID) bool {
	for _, id := range e.RegisteredUsers {
		if id == userID {
			return true
		}
	}
	return false
}
