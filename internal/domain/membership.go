package domain

// RoleMember is the default role assigned when a join request is approved
// without an explicit role.
const RoleMember = "member"

// ClubMembership is keyed by (UserID, ClubID); there is no synthetic id.
// At most one membership may exist per pair.
type ClubMembership struct {
	UserID   UserID `json:"userId"`
	ClubID   ClubID `json:"clubId"`
	JoinedAt string `json:"joinedAt"`
	Role     string `json:"role"`
}

type RoleID string

// CustomRole is a club-scoped role label. Role assignment is free text and is
// not validated against this vocabulary; it only feeds role pickers.
type CustomRole struct {
	ID          RoleID `json:"id"`
	ClubID      ClubID `json:"clubId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
}
