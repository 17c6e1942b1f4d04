package auctionclient

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrNegativeBid   = errors.New("Bid must be 0 or greater")
	ErrBidPrecision  = errors.New("Enter a number with up to two decimal places")
	ErrInvalidNumber = errors.New("Invalid number")
)

var twoDecimals = regexp.MustCompile(`^\d*(?:\.\d{0,2})?$`)

// ParseBidInput reads a bid typed by a user: digits with at most two decimals.
// Empty input is 0. The result is rounded to cents.
func ParseBidInput(input string) (float64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, nil
	}
	if strings.HasPrefix(s, "-") {
		return 0, ErrNegativeBid
	}
	if !twoDecimals.MatchString(s) {
		return 0, ErrBidPrecision
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, ErrInvalidNumber
	}
	return math.Round(v*100) / 100, nil
}
