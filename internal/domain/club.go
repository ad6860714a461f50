package domain

type ClubID string

type Club struct {
	ID            ClubID `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	CoordinatorID UserID `json:"coordinatorId"`
	Image         string `json:"image,omitempty"`
	CreatedAt     string `json:"createdAt"`
	CreatedBy     UserID `json:"createdBy"`
}
