package bidding

import (
	"errors"
	"strconv"
)

// Rejection messages are part of the API contract and are shown to bidders verbatim.
var (
	ErrInvalidBid      = errors.New("Invalid bid value")
	ErrNoActiveAuction = errors.New("No auction found for this artwork")
	ErrBidTooLow       = errors.New("bid amount too low")
	ErrMissingTarget   = errors.New("auction_id or artwork_id is required")
)

// BidTooLowError carries the highest known amount the bid had to beat.
type BidTooLowError struct {
	Highest float64
}

func (e *BidTooLowError) Error() string {
	return "Bid must be higher than the current bid of " + FormatAmount(e.Highest)
}

func (e *BidTooLowError) Is(target error) bool {
	return target == ErrBidTooLow
}

// FormatAmount renders an amount in its shortest decimal form (22, 22.5, 22.01).
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// IsRejection reports whether err is a business rejection rather than a backend failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidBid) ||
		errors.Is(err, ErrNoActiveAuction) ||
		errors.Is(err, ErrBidTooLow) ||
		errors.Is(err, ErrMissingTarget)
}
