package member

import "time"

const (
	RoleClient  = "client"
	RoleStaff   = "staff"
	RoleManager = "manager"
)

type User struct {
	ID           int     `db:"id" json:"id"`
	FullName     string  `db:"full_name" json:"full_name"`
	Email        string  `db:"email" json:"email"`
	Phone        *string `db:"phone" json:"phone,omitempty"`
	PasswordHash string  `db:"password_hash" json:"-"`
	Role         string  `db:"role" json:"role"`
	Active       bool    `db:"active" json:"active"`
	AvatarURL    *string `db:"avatar_url" json:"avatar_url,omitempty"`
	PushToken    *string `db:"push_token" json:"-"`
	AddedBy      *int    `db:"added_by" json:"added_by,omitempty"`

	// Denormalized display cache, refreshed on purchase. Access state is
	// always derived from the subscriptions table, never from these.
	SubscriptionType    *string    `db:"subscription_type" json:"subscription_type,omitempty"`
	SubscriptionEndDate *time.Time `db:"subscription_end_date" json:"subscription_end_date,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleClient, RoleStaff, RoleManager:
		return true
	}
	return false
}

type RegisterRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     string  `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type CreateStaffRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     string  `json:"role" binding:"required,oneof=staff manager"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=client staff manager"`
}

type PushTokenRequest struct {
	PushToken string `json:"push_token" binding:"required"`
}
