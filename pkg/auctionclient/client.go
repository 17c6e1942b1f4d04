// Package auctionclient is a Go client for the art auction API. It mirrors the
// browser client: typed calls per route, a session holder, and a per-artwork bid
// board with optimistic updates.
package auctionclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"art-auction-backend/internal/models"
)

// Resource types as served by the API.
type (
	Artist                = models.Artist
	Artwork               = models.PublicArtwork
	Reserve               = models.ReserveView
	Auction               = models.Auction
	Bid                   = models.Bid
	Profile               = models.Profile
	CreateArtworkRequest  = models.CreateArtworkRequest
	CreateAuctionRequest  = models.CreateAuctionRequest
	PlaceBidRequest       = models.PlaceBidRequest
	PlaceBidResponse      = models.PlaceBidResponse
	SignupRequest         = models.SignupRequest
	SignupResponse        = models.SignupResponse
	LoginResponse         = models.LoginResponse
	ResetPasswordRequest  = models.ResetPasswordRequest
	MessageResponse       = models.MessageResponse
	DeleteAuctionResponse = models.DeleteAuctionResponse
	HealthResponse        = models.HealthResponse
)

// APIError is a non-2xx response. Message is the API's error summary, Detail the
// upstream message when the server exposes one.
type APIError struct {
	Status  int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("auctionclient: status %d: %s: %s", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("auctionclient: status %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type tokenSource interface {
	Token() string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	backoffs   []time.Duration
	tokens     tokenSource
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithBackoff replaces the delays between GET retries. The number of delays is
// the number of retries.
func WithBackoff(delays ...time.Duration) Option {
	return func(c *Client) { c.backoffs = delays }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		backoffs: []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if method != http.MethodGet {
		return c.send(ctx, method, path, body, out)
	}
	return c.retryWithBackoff(ctx, func() error {
		return c.send(ctx, method, path, nil, out)
	})
}

func (c *Client) send(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var envelope models.ErrorResponse
		if json.Unmarshal(respBody, &envelope) == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
			apiErr.Detail = envelope.Message
		} else {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w, body: %s", err, string(respBody))
	}
	return nil
}

// retryWithBackoff retries fn on transport errors and 5xx responses. 4xx answers
// are final.
func (c *Client) retryWithBackoff(ctx context.Context, fn func() error) error {
	var lastErr error
	for i := 0; ; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable(err) || i >= len(c.backoffs) {
			break
		}

		timer := time.NewTimer(c.backoffs[i])
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	if len(c.backoffs) == 0 || !retryable(lastErr) {
		return lastErr
	}
	return fmt.Errorf("failed after %d retries: %w", len(c.backoffs), lastErr)
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	return true
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	// not retried so a degraded 503 surfaces immediately
	if err := c.send(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Artists

func (c *Client) ListArtists(ctx context.Context) ([]Artist, error) {
	var out []Artist
	if err := c.do(ctx, http.MethodGet, "/artist/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetArtist(ctx context.Context, artistNumber int64) (*Artist, error) {
	var out Artist
	if err := c.do(ctx, http.MethodGet, "/artist/"+id(artistNumber), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetArtistByEmail(ctx context.Context, email string) (*Artist, error) {
	var out Artist
	if err := c.do(ctx, http.MethodGet, "/artist/email/"+url.PathEscape(email), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Artworks

func (c *Client) ListArtworks(ctx context.Context) ([]Artwork, error) {
	var out []Artwork
	if err := c.do(ctx, http.MethodGet, "/artwork/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListArtworksByArtist(ctx context.Context, artistID int64) ([]Artwork, error) {
	var out []Artwork
	if err := c.do(ctx, http.MethodGet, "/artwork/artist/"+id(artistID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetArtwork(ctx context.Context, artworkID int64) (*Artwork, error) {
	var out Artwork
	if err := c.do(ctx, http.MethodGet, "/artwork/"+id(artworkID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateArtwork(ctx context.Context, req CreateArtworkRequest) (*Artwork, error) {
	var out Artwork
	if err := c.do(ctx, http.MethodPost, "/artwork/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateArtwork sends a partial update. A nil end_price value clears the reserve.
func (c *Client) UpdateArtwork(ctx context.Context, artworkID int64, updates map[string]interface{}) (*Artwork, error) {
	var out Artwork
	if err := c.do(ctx, http.MethodPatch, "/artwork/"+id(artworkID), updates, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReserve needs an authenticated session of the owning artist.
func (c *Client) GetReserve(ctx context.Context, artworkID int64) (*Reserve, error) {
	var out Reserve
	if err := c.do(ctx, http.MethodGet, "/artwork/"+id(artworkID)+"/reserve", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Auctions

func (c *Client) ListAuctions(ctx context.Context) ([]Auction, error) {
	var out []Auction
	if err := c.do(ctx, http.MethodGet, "/auction/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAuction(ctx context.Context, auctionID int64) (*Auction, error) {
	var out Auction
	if err := c.do(ctx, http.MethodGet, "/auction/"+id(auctionID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAuctionsByArtwork(ctx context.Context, artworkID int64) ([]Auction, error) {
	var out []Auction
	if err := c.do(ctx, http.MethodGet, "/auction/artwork/"+id(artworkID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAuction(ctx context.Context, req CreateAuctionRequest) (*Auction, error) {
	var out Auction
	if err := c.do(ctx, http.MethodPost, "/auction/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetAuctionActive(ctx context.Context, auctionID int64, active bool) (*Auction, error) {
	var out Auction
	body := map[string]interface{}{"is_active": active}
	if err := c.do(ctx, http.MethodPatch, "/auction/"+id(auctionID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAuction(ctx context.Context, auctionID int64) (*DeleteAuctionResponse, error) {
	var out DeleteAuctionResponse
	if err := c.do(ctx, http.MethodDelete, "/auction/"+id(auctionID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bids

func (c *Client) ListBids(ctx context.Context) ([]Bid, error) {
	var out []Bid
	if err := c.do(ctx, http.MethodGet, "/bid/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBid(ctx context.Context, bidID int64) (*Bid, error) {
	var out Bid
	if err := c.do(ctx, http.MethodGet, "/bid/"+id(bidID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LatestBid returns nil without error when the auction has no bids yet.
func (c *Client) LatestBid(ctx context.Context, auctionID int64) (*Bid, error) {
	var out Bid
	if err := c.do(ctx, http.MethodGet, "/bid/latest/auction/"+id(auctionID), nil, &out); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// PlaceBid is never retried.
func (c *Client) PlaceBid(ctx context.Context, req PlaceBidRequest) (*PlaceBidResponse, error) {
	var out PlaceBidResponse
	if err := c.do(ctx, http.MethodPost, "/bid/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profiles

func (c *Client) ListProfiles(ctx context.Context) ([]Profile, error) {
	var out []Profile
	if err := c.do(ctx, http.MethodGet, "/profiles/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListArtistProfiles(ctx context.Context) ([]Profile, error) {
	var out []Profile
	if err := c.do(ctx, http.MethodGet, "/profiles/artists/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProfile(ctx context.Context, profileID string) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(profileID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Auth

func (c *Client) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	var out SignupResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	body := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	var out MessageResponse
	body := models.ForgotPasswordRequest{Email: email}
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/reset-password", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
