package member

import "context"

type Repository interface {
	Create(ctx context.Context, fullName, email string, phone *string, passwordHash, role string, addedBy *int) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, role string) ([]User, error)
	SetPushToken(ctx context.Context, id int, token string) error
	SetActive(ctx context.Context, id int, active bool) error
	UpdateRole(ctx context.Context, id int, role string) error
}
