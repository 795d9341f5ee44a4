package model

import "time"

// User represents an account that can authenticate and own courses. The
// password is stored only as a salted hash; the json tag keeps the hash out
// of any serialized output.
type User struct {
	ID           string    `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	EmailAddress string    `db:"email_address" json:"emailAddress"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
