package models

type CreateArtworkRequest struct {
	ArtistID      int64    `json:"artist_id" binding:"required"`
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
	StartingPrice float64  `json:"starting_price" binding:"gte=0"`
	EndPrice      *float64 `json:"end_price,omitempty" binding:"omitempty,gte=0"`
	Status        string   `json:"status,omitempty"`
}

type CreateAuctionRequest struct {
	ArtworkID int64 `json:"artwork_id" binding:"required"`
	IsActive  *bool `json:"is_active,omitempty"`
}

// PlaceBidRequest identifies the auction either directly or through its artwork.
// Amount is accepted as an alias of BidAmount for older clients.
type PlaceBidRequest struct {
	AuctionID *int64   `json:"auction_id,omitempty"`
	ArtworkID *int64   `json:"artwork_id,omitempty"`
	BidAmount *float64 `json:"bid_amount,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email      string `json:"email"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

type ResetPasswordRequest struct {
	Password     string `json:"password"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
