package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"art-auction-backend/internal/bidding"
	"art-auction-backend/internal/models"
)

// DatabaseClient talks to Supabase Postgres directly. It exists for the one write
// that PostgREST cannot do safely: read-compare-write of a bid under row locks.
type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func NewDatabaseClientFromDB(db *sql.DB) *DatabaseClient {
	return &DatabaseClient{db: db}
}

const (
	lockAuctionByID = `
		SELECT id, artwork_id, is_active, created_at
		FROM "Auction"
		WHERE id = $1
		FOR UPDATE`

	lockActiveAuctionByArtwork = `
		SELECT id, artwork_id, is_active, created_at
		FROM "Auction"
		WHERE artwork_id = $1 AND is_active
		ORDER BY id
		LIMIT 1
		FOR UPDATE`

	lockArtwork = `
		SELECT starting_price, current_price, end_price, status
		FROM "Artwork"
		WHERE id = $1
		FOR UPDATE`

	highestBidForArtwork = `
		SELECT COALESCE(MAX(b.bid_amount), 0)
		FROM "Bid" b
		JOIN "Auction" a ON a.id = b.auction_id
		WHERE a.artwork_id = $1`

	insertBid = `
		INSERT INTO "Bid" (auction_id, bid_amount, bidder_id)
		VALUES ($1, $2, $3)
		RETURNING id, auction_id, bid_amount, bidder_id, created_at`

	updateCurrentPrice = `UPDATE "Artwork" SET current_price = $1 WHERE id = $2`
	markArtworkSold    = `UPDATE "Artwork" SET status = 'sold' WHERE id = $1`
	deactivateAuction  = `UPDATE "Auction" SET is_active = false WHERE id = $1`
)

// PlaceBid implements bidding.Ledger. The auction row is locked before the artwork
// row on every path so concurrent placements cannot deadlock.
func (d *DatabaseClient) PlaceBid(ctx context.Context, req bidding.PlaceBidRequest, decide bidding.Decider) (*bidding.Outcome, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	snapshot, err := d.lockSnapshot(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	decision, err := decide(snapshot)
	if err != nil {
		return nil, err
	}

	var (
		bid      models.Bid
		bidderID uuid.NullUUID
	)
	if req.BidderID != nil {
		bidderID = uuid.NullUUID{UUID: *req.BidderID, Valid: true}
	}
	err = tx.QueryRowContext(ctx, insertBid, snapshot.AuctionID, decision.Amount, bidderID).Scan(
		&bid.ID, &bid.AuctionID, &bid.BidAmount, &bidderID, &bid.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bid: %w", err)
	}
	if bidderID.Valid {
		id := bidderID.UUID
		bid.BidderID = &id
	}

	if _, err := tx.ExecContext(ctx, updateCurrentPrice, decision.Amount, snapshot.ArtworkID); err != nil {
		return nil, fmt.Errorf("failed to update current price: %w", err)
	}

	if decision.ClosesAuction {
		if _, err := tx.ExecContext(ctx, markArtworkSold, snapshot.ArtworkID); err != nil {
			return nil, fmt.Errorf("failed to mark artwork sold: %w", err)
		}
		if _, err := tx.ExecContext(ctx, deactivateAuction, snapshot.AuctionID); err != nil {
			return nil, fmt.Errorf("failed to deactivate auction: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bid: %w", err)
	}

	return &bidding.Outcome{
		Bid:           bid,
		ArtworkID:     snapshot.ArtworkID,
		CurrentPrice:  decision.Amount,
		AuctionClosed: decision.ClosesAuction,
	}, nil
}

// lockSnapshot returns an inactive snapshot when no auction matches; the decider
// turns that into the no-auction rejection.
func (d *DatabaseClient) lockSnapshot(ctx context.Context, tx *sql.Tx, req bidding.PlaceBidRequest) (bidding.Snapshot, error) {
	var (
		row     *sql.Row
		auction models.Auction
	)
	switch {
	case req.AuctionID != nil:
		row = tx.QueryRowContext(ctx, lockAuctionByID, *req.AuctionID)
	case req.ArtworkID != nil:
		row = tx.QueryRowContext(ctx, lockActiveAuctionByArtwork, *req.ArtworkID)
	default:
		return bidding.Snapshot{}, bidding.ErrMissingTarget
	}

	err := row.Scan(&auction.ID, &auction.ArtworkID, &auction.IsActive, &auction.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return bidding.Snapshot{}, nil
	}
	if err != nil {
		return bidding.Snapshot{}, fmt.Errorf("failed to lock auction: %w", err)
	}

	snapshot := bidding.Snapshot{
		AuctionID:     auction.ID,
		ArtworkID:     auction.ArtworkID,
		AuctionActive: auction.IsActive,
	}

	var (
		endPrice sql.NullFloat64
		status   string
	)
	err = tx.QueryRowContext(ctx, lockArtwork, auction.ArtworkID).Scan(
		&snapshot.StartingPrice, &snapshot.CurrentPrice, &endPrice, &status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		snapshot.AuctionActive = false
		return snapshot, nil
	}
	if err != nil {
		return bidding.Snapshot{}, fmt.Errorf("failed to lock artwork: %w", err)
	}
	if endPrice.Valid {
		snapshot.ReservePrice = &endPrice.Float64
	}
	if status == models.ArtworkSold {
		snapshot.AuctionActive = false
	}

	var highest float64
	if err := tx.QueryRowContext(ctx, highestBidForArtwork, auction.ArtworkID).Scan(&highest); err != nil {
		return bidding.Snapshot{}, fmt.Errorf("failed to read highest bid: %w", err)
	}
	snapshot.PriorBids = []float64{highest}

	return snapshot, nil
}

func (d *DatabaseClient) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
