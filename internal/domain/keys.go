package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)

// Marketplace roles stored in profiles.user_type
const (
	RoleProfessional = "professional"
	RoleClient       = "client"
)
