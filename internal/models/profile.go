package models

import "time"

const (
	RoleBuyer  = "buyer"
	RoleArtist = "artist"
)

type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// NewProfile is the upsert payload; created_at is assigned by the backend. ID is the
// auth user id when known.
type NewProfile struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type Artist struct {
	ArtistID  int64     `json:"artist_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
