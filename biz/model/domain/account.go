package domain

import "time"

type Account struct {
	AccountID string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	// Password holds the stored (hashed) credential, never the raw input.
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
