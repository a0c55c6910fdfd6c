// Package models contains data structures for the application's domain models.
package models

// Roles a user can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account. Password holds a bcrypt hash, never
// plaintext; users are persisted to the users collection but never serialized
// into a response body, so the hash does not leave the process.
type User struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Mobile    string   `json:"mobile"`
	Role      string   `json:"role"`
	Followers []string `json:"followers"`
	Following []string `json:"following"`
}
