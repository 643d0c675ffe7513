package helpers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/proxy"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload", false)
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err to a status and writes the error envelope
func HandleServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, err, message, biddingerrors.Retryable(err))

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request refused", fields)
}

// MapErrorToHTTP maps domain/service errors to an HTTP status code and a caller-facing message
func MapErrorToHTTP(err error) (int, string) {
	message := biddingerrors.Message(err)

	switch biddingerrors.KindOf(err) {
	case biddingerrors.KindValidation:
		return http.StatusBadRequest, message
	case biddingerrors.KindPolicyViolation:
		return http.StatusUnprocessableEntity, message
	case biddingerrors.KindNotFound:
		return http.StatusNotFound, message
	case biddingerrors.KindConflict:
		return http.StatusConflict, message
	case biddingerrors.KindUnauthorized:
		return http.StatusForbidden, message
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// MaskBidder hides the first half of a bidder id behind "****"
func MaskBidder(id string) string {
	if id == "" {
		return ""
	}
	r := []rune(id)
	return "****" + string(r[len(r)/2:])
}

// ToLotResponse renders a lot as seen at now
func ToLotResponse(lot models.Lot, now time.Time) LotResponse {
	resp := LotResponse{
		LotID:              lot.ID,
		SellerID:           lot.SellerID,
		StartingPrice:      lot.StartingPrice,
		StepPrice:          lot.StepPrice,
		CurrentPrice:       lot.CurrentPrice,
		MinimumBid:         proxy.MinimumBid(lot),
		LeadingBidder:      MaskBidder(lot.LeadingBidderID),
		EndAt:              lot.EndAt.UTC().Format(time.RFC3339),
		AutoExtend:         lot.AutoExtend,
		AllowUnratedBidder: lot.AllowUnratedBidder,
		Status:             lot.Status(now),
	}
	if lot.BuyNowPrice.Valid {
		buyNow := lot.BuyNowPrice.Decimal
		resp.BuyNowPrice = &buyNow
	}
	if lot.ClosedAt != nil {
		resp.ClosedAt = lot.ClosedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// ToLotsResponse renders lots as seen at now
func ToLotsResponse(lots []models.Lot, now time.Time) []LotResponse {
	out := make([]LotResponse, 0, len(lots))
	for _, lot := range lots {
		out = append(out, ToLotResponse(lot, now))
	}
	return out
}

func ToSellerStatsResponse(st models.SellerStats) SellerStatsResponse {
	return SellerStatsResponse(st)
}

// ToBidResponse renders a resolution for the bidder who placed it
func ToBidResponse(res models.ResolveResult) BidResponse {
	return BidResponse{
		LotID:         res.LotID,
		CurrentPrice:  res.CurrentPrice,
		Leading:       res.Leading,
		LeadingBidder: MaskBidder(res.LeadingBidderID),
		Sold:          res.Sold,
		Extended:      res.Extended,
		EndAt:         res.EndAt.UTC().Format(time.RFC3339),
		Notice:        BidNotice(res),
	}
}

// BidNotice is the sentence shown to the bidder after a resolution
func BidNotice(res models.ResolveResult) string {
	var parts []string
	switch {
	case res.Sold && res.Leading:
		parts = append(parts, fmt.Sprintf("you won the lot at the buy-now price %s", res.CurrentPrice))
	case res.Sold:
		parts = append(parts, fmt.Sprintf("the lot was sold at %s", res.CurrentPrice))
	case res.Leading:
		parts = append(parts, fmt.Sprintf("you are leading at %s", res.CurrentPrice))
	default:
		parts = append(parts, fmt.Sprintf("you have been outbid, current price is %s", res.CurrentPrice))
	}
	if res.Extended {
		parts = append(parts, fmt.Sprintf("bidding extended until %s", res.EndAt.UTC().Format(time.RFC3339)))
	}
	return strings.Join(parts, "; ")
}

// ToHistoryResponse renders ledger entries with masked bidder ids
func ToHistoryResponse(entries []models.LedgerEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{
			Bidder:       MaskBidder(e.BidderID),
			CurrentPrice: e.CurrentPrice,
			CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
