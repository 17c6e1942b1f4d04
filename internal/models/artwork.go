package models

import "time"

const (
	ArtworkAvailable    = "available"
	ArtworkSold         = "sold"
	ArtworkNotAvailable = "not available"
)

// Artwork is the full row, reserve included. It must never be serialized to bidders;
// handlers convert it with Public first.
type Artwork struct {
	ID            int64     `json:"id"`
	ArtistID      int64     `json:"artist_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	StartingPrice float64   `json:"starting_price"`
	CurrentPrice  float64   `json:"current_price"`
	EndPrice      *float64  `json:"end_price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type PublicArtwork struct {
	ID            int64     `json:"id"`
	ArtistID      int64     `json:"artist_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	StartingPrice float64   `json:"starting_price"`
	CurrentPrice  float64   `json:"current_price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func (a Artwork) Public() PublicArtwork {
	return PublicArtwork{
		ID:            a.ID,
		ArtistID:      a.ArtistID,
		Title:         a.Title,
		Description:   a.Description,
		ImageURL:      a.ImageURL,
		StartingPrice: a.StartingPrice,
		CurrentPrice:  a.CurrentPrice,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
	}
}

func PublicArtworks(artworks []Artwork) []PublicArtwork {
	out := make([]PublicArtwork, len(artworks))
	for i, a := range artworks {
		out[i] = a.Public()
	}
	return out
}

// ReserveView is what the owning artist sees in the edit view.
type ReserveView struct {
	ArtworkID int64    `json:"artwork_id"`
	EndPrice  *float64 `json:"end_price"`
	Status    string   `json:"status"`
}

func IsArtworkStatus(s string) bool {
	switch s {
	case ArtworkAvailable, ArtworkSold, ArtworkNotAvailable:
		return true
	}
	return false
}
