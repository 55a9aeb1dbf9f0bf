package domain

// Role is the access level of a user
type Role string

const (
	RoleGM     Role = "gm"
	RolePlayer Role = "player"
)

// User represents a session participant
type User struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Role Role   `json:"role" yaml:"role"`
}

// IsGM reports whether the user has game-master rights
func (u User) IsGM() bool {
	return u.Role == RoleGM
}
