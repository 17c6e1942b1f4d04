package supabase

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"art-auction-backend/internal/models"
)

const (
	tableArtist  = "Artist"
	tableArtwork = "Artwork"
	tableAuction = "Auction"
	tableBid     = "Bid"
	tableProfile = "Profile"
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = errors.New("record not found")

// RESTStore reads and writes resources through PostgREST. Bid placement does not
// go through here; see DatabaseClient.PlaceBid.
type RESTStore struct {
	client *supabase.Client
}

func NewRESTStore(client *Client) *RESTStore {
	return &RESTStore{client: client.Supabase}
}

func NewRESTStoreFromSupabase(client *supabase.Client) *RESTStore {
	return &RESTStore{client: client}
}

func idParam(v int64) string {
	return strconv.FormatInt(v, 10)
}

// first returns the first row or ErrNotFound.
func first[T any](rows []T) (*T, error) {
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// Artists

func (s *RESTStore) ListArtists() ([]models.Artist, error) {
	artists := []models.Artist{}
	if _, err := s.client.From(tableArtist).Select("*", "", false).ExecuteTo(&artists); err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

func (s *RESTStore) GetArtist(artistID int64) (*models.Artist, error) {
	var rows []models.Artist
	_, err := s.client.From(tableArtist).
		Select("*", "", false).
		Eq("artist_id", idParam(artistID)).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	return first(rows)
}

func (s *RESTStore) GetArtistByEmail(email string) (*models.Artist, error) {
	var rows []models.Artist
	_, err := s.client.From(tableArtist).
		Select("*", "", false).
		Eq("email", email).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get artist by email: %w", err)
	}
	return first(rows)
}

// Artworks

func (s *RESTStore) ListArtworks() ([]models.Artwork, error) {
	artworks := []models.Artwork{}
	_, err := s.client.From(tableArtwork).
		Select("*", "", false).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&artworks)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}
	return artworks, nil
}

func (s *RESTStore) ListArtworksByArtist(artistID int64) ([]models.Artwork, error) {
	artworks := []models.Artwork{}
	_, err := s.client.From(tableArtwork).
		Select("*", "", false).
		Eq("artist_id", idParam(artistID)).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&artworks)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks by artist: %w", err)
	}
	return artworks, nil
}

func (s *RESTStore) GetArtwork(artworkID int64) (*models.Artwork, error) {
	var rows []models.Artwork
	_, err := s.client.From(tableArtwork).
		Select("*", "", false).
		Eq("id", idParam(artworkID)).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}
	return first(rows)
}

type newArtwork struct {
	ArtistID      int64    `json:"artist_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
	StartingPrice float64  `json:"starting_price"`
	CurrentPrice  float64  `json:"current_price"`
	EndPrice      *float64 `json:"end_price"`
	Status        string   `json:"status"`
}

func (s *RESTStore) CreateArtwork(req models.CreateArtworkRequest) (*models.Artwork, error) {
	status := req.Status
	if status == "" {
		status = models.ArtworkNotAvailable
	}
	row := newArtwork{
		ArtistID:      req.ArtistID,
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		StartingPrice: req.StartingPrice,
		CurrentPrice:  req.StartingPrice,
		EndPrice:      req.EndPrice,
		Status:        status,
	}

	var rows []models.Artwork
	if _, err := s.client.From(tableArtwork).Insert(row, false, "", "representation", "").ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("failed to create artwork: %w", err)
	}
	created, err := first(rows)
	if err != nil {
		return nil, fmt.Errorf("insert returned no row: %w", err)
	}
	return created, nil
}

// UpdateArtwork applies a partial update. Callers are responsible for filtering keys.
// UpdateArtwork applies a partial update. A new end_price is written only while
// current_price is below it or still zero; otherwise no row matches and the
// result is ErrNotFound.
func (s *RESTStore) UpdateArtwork(artworkID int64, updates map[string]interface{}) (*models.Artwork, error) {
	var rows []models.Artwork
	query := s.client.From(tableArtwork).
		Update(updates, "representation", "").
		Eq("id", idParam(artworkID))
	if reserve, ok := updates["end_price"].(float64); ok {
		query = query.Or("current_price.lt."+strconv.FormatFloat(reserve, 'f', -1, 64)+",current_price.eq.0", "")
	}
	_, err := query.ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to update artwork: %w", err)
	}
	return first(rows)
}

// Auctions

func (s *RESTStore) ListAuctions() ([]models.Auction, error) {
	auctions := []models.Auction{}
	_, err := s.client.From(tableAuction).
		Select("*", "", false).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&auctions)
	if err != nil {
		return nil, fmt.Errorf("failed to list auctions: %w", err)
	}
	return auctions, nil
}

func (s *RESTStore) GetAuction(auctionID int64) (*models.Auction, error) {
	var rows []models.Auction
	_, err := s.client.From(tableAuction).
		Select("*", "", false).
		Eq("id", idParam(auctionID)).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get auction: %w", err)
	}
	return first(rows)
}

func (s *RESTStore) ListAuctionsByArtwork(artworkID int64) ([]models.Auction, error) {
	auctions := []models.Auction{}
	_, err := s.client.From(tableAuction).
		Select("*", "", false).
		Eq("artwork_id", idParam(artworkID)).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&auctions)
	if err != nil {
		return nil, fmt.Errorf("failed to list auctions by artwork: %w", err)
	}
	return auctions, nil
}

type newAuction struct {
	ArtworkID int64 `json:"artwork_id"`
	IsActive  bool  `json:"is_active"`
}

func (s *RESTStore) CreateAuction(req models.CreateAuctionRequest) (*models.Auction, error) {
	row := newAuction{ArtworkID: req.ArtworkID, IsActive: true}
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}

	var rows []models.Auction
	if _, err := s.client.From(tableAuction).Insert(row, false, "", "representation", "").ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("failed to create auction: %w", err)
	}
	created, err := first(rows)
	if err != nil {
		return nil, fmt.Errorf("insert returned no row: %w", err)
	}
	return created, nil
}

func (s *RESTStore) UpdateAuction(auctionID int64, updates map[string]interface{}) (*models.Auction, error) {
	var rows []models.Auction
	_, err := s.client.From(tableAuction).
		Update(updates, "representation", "").
		Eq("id", idParam(auctionID)).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to update auction: %w", err)
	}
	return first(rows)
}

func (s *RESTStore) DeleteAuction(auctionID int64) (*models.Auction, error) {
	var rows []models.Auction
	_, err := s.client.From(tableAuction).
		Delete("representation", "").
		Eq("id", idParam(auctionID)).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to delete auction: %w", err)
	}
	return first(rows)
}

// Bids

func (s *RESTStore) ListBids() ([]models.Bid, error) {
	bids := []models.Bid{}
	_, err := s.client.From(tableBid).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&bids)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	return bids, nil
}

func (s *RESTStore) GetBid(bidID int64) (*models.Bid, error) {
	var rows []models.Bid
	_, err := s.client.From(tableBid).
		Select("*", "", false).
		Eq("id", idParam(bidID)).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get bid: %w", err)
	}
	return first(rows)
}

// LatestBidByAuction returns the most recently created bid of an auction.
func (s *RESTStore) LatestBidByAuction(auctionID int64) (*models.Bid, error) {
	var rows []models.Bid
	_, err := s.client.From(tableBid).
		Select("*", "", false).
		Eq("auction_id", idParam(auctionID)).
		Order("id", &postgrest.OrderOpts{Ascending: false}).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest bid: %w", err)
	}
	return first(rows)
}

// Profiles

func (s *RESTStore) ListProfiles() ([]models.Profile, error) {
	profiles := []models.Profile{}
	if _, err := s.client.From(tableProfile).Select("*", "", false).ExecuteTo(&profiles); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (s *RESTStore) ListArtistProfiles() ([]models.Profile, error) {
	profiles := []models.Profile{}
	_, err := s.client.From(tableProfile).
		Select("*", "", false).
		Eq("role", models.RoleArtist).
		ExecuteTo(&profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to list artist profiles: %w", err)
	}
	return profiles, nil
}

func (s *RESTStore) GetProfile(profileID string) (*models.Profile, error) {
	var rows []models.Profile
	_, err := s.client.From(tableProfile).
		Select("*", "", false).
		Eq("id", profileID).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return first(rows)
}

func (s *RESTStore) GetProfileByEmail(email string) (*models.Profile, error) {
	var rows []models.Profile
	_, err := s.client.From(tableProfile).
		Select("*", "", false).
		Eq("email", email).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return first(rows)
}

// UpsertProfile inserts a profile or updates the existing row with the same email.
func (s *RESTStore) UpsertProfile(p models.NewProfile) (*models.Profile, error) {
	var rows []models.Profile
	if _, err := s.client.From(tableProfile).Upsert(p, "email", "representation", "").ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	created, err := first(rows)
	if err != nil {
		return nil, fmt.Errorf("upsert returned no row: %w", err)
	}
	return created, nil
}
