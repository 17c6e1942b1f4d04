package handlers

import (
	"context"

	"art-auction-backend/internal/bidding"
	"art-auction-backend/internal/models"
)

//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=handlers

// Store is the resource backend behind the CRUD routes.
type Store interface {
	ListArtists() ([]models.Artist, error)
	GetArtist(artistID int64) (*models.Artist, error)
	GetArtistByEmail(email string) (*models.Artist, error)

	ListArtworks() ([]models.Artwork, error)
	ListArtworksByArtist(artistID int64) ([]models.Artwork, error)
	GetArtwork(artworkID int64) (*models.Artwork, error)
	CreateArtwork(req models.CreateArtworkRequest) (*models.Artwork, error)
	UpdateArtwork(artworkID int64, updates map[string]interface{}) (*models.Artwork, error)

	ListAuctions() ([]models.Auction, error)
	GetAuction(auctionID int64) (*models.Auction, error)
	ListAuctionsByArtwork(artworkID int64) ([]models.Auction, error)
	CreateAuction(req models.CreateAuctionRequest) (*models.Auction, error)
	UpdateAuction(auctionID int64, updates map[string]interface{}) (*models.Auction, error)
	DeleteAuction(auctionID int64) (*models.Auction, error)

	ListBids() ([]models.Bid, error)
	GetBid(bidID int64) (*models.Bid, error)
	LatestBidByAuction(auctionID int64) (*models.Bid, error)

	ListProfiles() ([]models.Profile, error)
	ListArtistProfiles() ([]models.Profile, error)
	GetProfile(id string) (*models.Profile, error)
}

type BidPlacer interface {
	PlaceBid(ctx context.Context, req bidding.PlaceBidRequest) (*bidding.Outcome, error)
}

type AuthService interface {
	SignUp(req models.SignupRequest) (*models.SignupResponse, error)
	Login(req models.LoginRequest) (*models.LoginResponse, error)
	ForgotPassword(req models.ForgotPasswordRequest) (*models.MessageResponse, error)
	ResetPassword(req models.ResetPasswordRequest) (*models.MessageResponse, error)
}

type ImageResolver interface {
	ResolveImageURL(ref string) string
}

type passthroughImages struct{}

func (passthroughImages) ResolveImageURL(ref string) string { return ref }
