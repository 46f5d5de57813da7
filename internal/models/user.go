package models

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64  `json:"id" db:"id"`                       // Primary key
	Username     string `json:"username" db:"username"`           // Unique username
	PasswordHash string `json:"-" db:"password_hash"`             // Hashed password, never serialized
	FullName     string `json:"full_name" db:"full_name"`         // Optional display name
	Bio          string `json:"bio" db:"bio"`                     // Optional bio, empty by default
}

// DisplayName returns the user's full name, falling back to the username.
func (u *UserDB) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
