package domain

type UserID string

type UserRole string

const (
	UserRoleAdmin       UserRole = "admin"
	UserRoleCoordinator UserRole = "coordinator"
	UserRoleStudent     UserRole = "student"
)

type User struct {
	ID         UserID   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       UserRole `json:"role"`
	Department string   `json:"department,omitempty"`
	RegNo      string   `json:"regNo,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Avatar     string   `json:"avatar,omitempty"`
}
