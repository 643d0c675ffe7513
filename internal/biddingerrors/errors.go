package biddingerrors

import (
	"errors"
	"strings"
)

// Repository-level errors
var (
	ErrLotNotFound    = errors.New("lot not found")
	ErrBidderNotOnLot = errors.New("bidder has no bid on this lot")
	ErrLotExists      = errors.New("lot already exists")
	ErrBusy           = errors.New("lot is busy, try again")
)

// business logic errors
var (
	ErrInvalidBid     = errors.New("invalid bid")
	ErrInvalidLot     = errors.New("invalid lot")
	ErrLotClosed      = errors.New("lot is closed")
	ErrSelfBid        = errors.New("seller cannot bid on own lot")
	ErrRejected       = errors.New("bidder was rejected by the seller")
	ErrIneligible     = errors.New("bidder is not eligible for this lot")
	ErrBidTooLow      = errors.New("bid amount too low")
	ErrBelowIncrement = errors.New("bid amount below the minimum increment")
	ErrMaxBidLowered  = errors.New("maximum bid cannot be lowered")
	ErrNotSeller      = errors.New("only the seller can do this")
	ErrNoWinner       = errors.New("lot has no winning bidder")
	ErrLotStillOpen   = errors.New("lot is still open for bidding")
)

// Kind groups errors into the taxonomy surfaced to callers
type Kind string

const (
	KindValidation      Kind = "validation"
	KindPolicyViolation Kind = "policy_violation"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindUnauthorized    Kind = "unauthorized"
	KindInternal        Kind = "internal"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrInvalidBid, KindValidation},
	{ErrInvalidLot, KindValidation},
	{ErrSelfBid, KindPolicyViolation},
	{ErrRejected, KindPolicyViolation},
	{ErrIneligible, KindPolicyViolation},
	{ErrBidTooLow, KindPolicyViolation},
	{ErrBelowIncrement, KindPolicyViolation},
	{ErrMaxBidLowered, KindPolicyViolation},
	{ErrLotNotFound, KindNotFound},
	{ErrBidderNotOnLot, KindNotFound},
	{ErrLotClosed, KindConflict},
	{ErrLotExists, KindConflict},
	{ErrNoWinner, KindConflict},
	{ErrLotStillOpen, KindConflict},
	{ErrBusy, KindConflict},
	{ErrNotSeller, KindUnauthorized},
}

// KindOf classifies err; anything unknown is internal
func KindOf(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// Retryable reports whether resubmitting the same request may succeed
func Retryable(err error) bool {
	return errors.Is(err, ErrBusy)
}

// Message returns the caller-facing part of err: the known sentinel's text and the
// detail appended after it, without the wrapping context added on the way up.
// Unknown errors yield an empty string.
func Message(err error) string {
	if err == nil {
		return ""
	}
	full := err.Error()
	for _, k := range kinds {
		if !errors.Is(err, k.err) {
			continue
		}
		if i := strings.Index(full, k.err.Error()); i >= 0 {
			return full[i:]
		}
		return k.err.Error()
	}
	return ""
}
