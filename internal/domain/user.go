package domain

import "context"

// User is the authenticated caller resolved from a bearer token.
type User struct {
	ID    string `json:"id"` // Supabase UUID
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SignupForm is the account sign-up payload after validation.
type SignupForm struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// SignupRequest documents the sign-up validation payload.
type SignupRequest struct {
	FullName        string `json:"full_name" example:"Asha Patel"`
	Email           string `json:"email" example:"asha@example.com"`
	Password        string `json:"password" example:"secret1"`
	ConfirmPassword string `json:"confirm_password" example:"secret1"`
}

// RoleRepository resolves reviewer roles (the user_roles table).
type RoleRepository interface {
	HasRole(ctx context.Context, userID, role string) (bool, error)
	GrantRole(ctx context.Context, userID, role string) error
}

// UserFromContext returns the caller stored by the auth middleware.
func UserFromContext(ctx context.Context) (User, bool) {
	id, ok := ctx.Value(KeyUserID).(string)
	if !ok || id == "" {
		return User{}, false
	}
	email, _ := ctx.Value(KeyUserEmail).(string)
	role, _ := ctx.Value(KeyUserRole).(string)
	return User{ID: id, Email: email, Role: role}, true
}
