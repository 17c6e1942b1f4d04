package models

import "time"

type Auction struct {
	ID        int64     `json:"id"`
	ArtworkID int64     `json:"artwork_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
