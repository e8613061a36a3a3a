package domain

// Claims - identity extracted from a bearer token.
type Claims struct {
	UserID string
	Role   string
}

const (
	RoleUser  = "user"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)
