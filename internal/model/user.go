package model

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents a shop user account.
//
// Password is serialized on purpose: the admin CRUD surface round-trips the
// full record, matching the legacy contract.
type User struct {
	ID        int    `json:"id"`
	Login     string `json:"login" binding:"required"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
