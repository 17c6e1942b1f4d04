package bidding

import (
	"math"
	"strconv"
	"strings"
)

// MaxAmount is the largest value a NUMERIC(12,2) price column holds.
const MaxAmount = 9999999999.99

// Snapshot is the state a bid is judged against. Ledgers build it while holding
// whatever lock makes the subsequent write atomic.
type Snapshot struct {
	AuctionID     int64
	ArtworkID     int64
	AuctionActive bool
	PriorBids     []float64
	CurrentPrice  float64
	StartingPrice float64
	ReservePrice  *float64
}

// Highest is max(prior bids, current price, starting price, 0).
func (s Snapshot) Highest() float64 {
	highest := 0.0
	for _, v := range append([]float64{s.CurrentPrice, s.StartingPrice}, s.PriorBids...) {
		if isFinite(v) && v > highest {
			highest = v
		}
	}
	return highest
}

type Decision struct {
	Amount        float64
	Highest       float64
	ClosesAuction bool
}

// Decider judges a snapshot. Ledgers call it exactly once per placement.
type Decider func(Snapshot) (Decision, error)

// Evaluate applies the acceptance rule. The active-auction check comes first so a
// closed auction reports the same rejection whatever amount was offered.
func Evaluate(newBid float64, s Snapshot) (Decision, error) {
	if !s.AuctionActive {
		return Decision{}, ErrNoActiveAuction
	}
	if !ValidAmount(newBid) {
		return Decision{}, ErrInvalidBid
	}

	highest := s.Highest()
	if newBid <= highest {
		return Decision{}, &BidTooLowError{Highest: highest}
	}

	return Decision{
		Amount:        newBid,
		Highest:       highest,
		ClosesAuction: s.ReservePrice != nil && newBid >= *s.ReservePrice,
	}, nil
}

// DecideFor binds an amount to Evaluate.
func DecideFor(amount float64) Decider {
	return func(s Snapshot) (Decision, error) {
		return Evaluate(amount, s)
	}
}

// ValidAmount reports whether v is a finite whole-cent amount that fits the
// price columns. Sub-cent amounts would round on insert and could tie the
// highest bid or reach the reserve without closing the auction.
func ValidAmount(v float64) bool {
	if !isFinite(v) || math.Abs(v) > MaxAmount {
		return false
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	return dot < 0 || len(s)-dot-1 <= 2
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
