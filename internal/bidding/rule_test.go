package bidding

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func active(prior ...float64) Snapshot {
	return Snapshot{AuctionID: 1, ArtworkID: 1, AuctionActive: true, PriorBids: prior}
}

func TestSnapshot_Highest(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		want     float64
	}{
		{"empty", Snapshot{}, 0},
		{"prior bids", active(10, 15, 22), 22},
		{"current price wins", Snapshot{PriorBids: []float64{10}, CurrentPrice: 40}, 40},
		{"starting price wins", Snapshot{StartingPrice: 75}, 75},
		{"negative values clamp to zero", Snapshot{PriorBids: []float64{-5}}, 0},
		{"non-finite ignored", Snapshot{PriorBids: []float64{math.NaN(), math.Inf(1), 12}}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.snapshot.Highest())
		})
	}
}

func TestEvaluate_RejectsNotHigher(t *testing.T) {
	tests := []struct {
		name    string
		bid     float64
		prior   []float64
		wantMsg string
	}{
		{"equal to highest", 22, []float64{10, 15, 22}, "Bid must be higher than the current bid of 22"},
		{"below highest", 5, []float64{10}, "Bid must be higher than the current bid of 10"},
		{"fractional highest", 12.5, []float64{12.75}, "Bid must be higher than the current bid of 12.75"},
		{"zero against empty", 0, nil, "Bid must be higher than the current bid of 0"},
		{"negative against empty", -1, nil, "Bid must be higher than the current bid of 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.bid, active(tt.prior...))
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantMsg)
			assert.True(t, errors.Is(err, ErrBidTooLow))

			var tooLow *BidTooLowError
			require.True(t, errors.As(err, &tooLow))
		})
	}
}

func TestEvaluate_RejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Evaluate(v, active(10))
		assert.EqualError(t, err, "Invalid bid value")
		assert.ErrorIs(t, err, ErrInvalidBid)
	}
}

func TestEvaluate_NoActiveAuctionWinsOverEveryOtherCheck(t *testing.T) {
	inactive := Snapshot{AuctionActive: false, PriorBids: []float64{10}}
	for _, v := range []float64{math.NaN(), 0, 5, 10, 1e9} {
		_, err := Evaluate(v, inactive)
		assert.EqualError(t, err, "No auction found for this artwork")
	}
}

func TestEvaluate_SequenceOfBids(t *testing.T) {
	snapshot := active()
	for _, v := range []float64{10, 15, 22} {
		d, err := Evaluate(v, snapshot)
		require.NoError(t, err)
		snapshot.PriorBids = append(snapshot.PriorBids, d.Amount)
	}

	assert.Equal(t, 22.0, snapshot.Highest())

	_, err := Evaluate(22, snapshot)
	assert.EqualError(t, err, "Bid must be higher than the current bid of 22")

	d, err := Evaluate(22.01, snapshot)
	require.NoError(t, err)
	assert.Equal(t, 22.01, d.Amount)
	assert.Equal(t, 22.0, d.Highest)
	assert.False(t, d.ClosesAuction)
}

func TestEvaluate_ReserveClosesAuction(t *testing.T) {
	reserve := 100.0
	snapshot := active(50)
	snapshot.ReservePrice = &reserve

	d, err := Evaluate(99.99, snapshot)
	require.NoError(t, err)
	assert.False(t, d.ClosesAuction)

	d, err = Evaluate(100, snapshot)
	require.NoError(t, err)
	assert.True(t, d.ClosesAuction)

	d, err = Evaluate(150, snapshot)
	require.NoError(t, err)
	assert.True(t, d.ClosesAuction)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "22", FormatAmount(22))
	assert.Equal(t, "22.5", FormatAmount(22.5))
	assert.Equal(t, "22.01", FormatAmount(22.01))
	assert.Equal(t, "0", FormatAmount(0))
}

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(&BidTooLowError{Highest: 1}))
	assert.True(t, IsRejection(ErrNoActiveAuction))
	assert.True(t, IsRejection(ErrInvalidBid))
	assert.False(t, IsRejection(errors.New("connection refused")))
}

func TestEvaluate_RejectsAmountsThePriceColumnsCannotHold(t *testing.T) {
	reserve := 100.0
	snapshot := active(22)
	snapshot.ReservePrice = &reserve

	for _, v := range []float64{22.004, 99.996, 99.999, 100.001, 1e10, MaxAmount + 1} {
		_, err := Evaluate(v, snapshot)
		assert.ErrorIs(t, err, ErrInvalidBid, "amount %v", v)
	}

	d, err := Evaluate(MaxAmount, snapshot)
	require.NoError(t, err)
	assert.True(t, d.ClosesAuction)
}

func TestValidAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   bool
	}{
		{0, true},
		{22, true},
		{22.5, true},
		{22.01, true},
		{-3.25, true},
		{22.004, false},
		{0.001, false},
		{math.NaN(), false},
		{math.Inf(1), false},
		{MaxAmount, true},
		{1e10, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidAmount(tt.amount), "amount %v", tt.amount)
	}
}
