package models

import "time"

// RoleUser is assigned to every newly registered account.
const RoleUser = "user"

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext, and is never serialised to API responses.
type User struct {
	ID        string    `bson:"-" json:"-"`
	UserName  string    `bson:"username" json:"username"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"-"`
}
