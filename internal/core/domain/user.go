package domain

import "time"

// Role is the coarse authorization tier assigned to a user.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User models an account registered with the service.
//
// Password holds the bcrypt digest, never the plaintext; it is excluded from
// JSON so no handler can leak it. Email is optional and omitted from the
// stored document when empty, which keeps the partial unique index on the
// email field from colliding on absent values.
type User struct {
	ID        string    `json:"id" bson:"_id"`
	Username  string    `json:"username" bson:"username"`
	Password  string    `json:"-" bson:"password"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	Role      Role      `json:"role" bson:"role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Public returns the password-free projection of the user, safe to attach to
// a request context or serialize in a response.
func (u *User) Public() *User {
	clone := *u
	clone.Password = ""
	return &clone
}
