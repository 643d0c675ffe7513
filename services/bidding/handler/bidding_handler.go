package handler

import (
	"context"
	"net/http"
	"time"

	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/models"
	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_bidding_service.go -package=handler

type BiddingServiceInterface interface {
	CreateLot(ctx context.Context, in bidding.LotInput) (models.Lot, error)
	GetLot(ctx context.Context, lotID string) (models.Lot, error)
	GetHistory(ctx context.Context, lotID string) ([]models.LedgerEntry, error)
	Resolve(ctx context.Context, lotID, bidderID string, maxBid decimal.Decimal) (models.ResolveResult, error)
	Reject(ctx context.Context, lotID, bidderID, sellerID string) (models.RejectResult, error)
	CancelLot(ctx context.Context, lotID, sellerID string) (models.Lot, error)
	ConfirmSale(ctx context.Context, lotID, sellerID string) (models.Lot, error)
	DeleteLot(ctx context.Context, lotID, sellerID string) error
	SellerLots(ctx context.Context, sellerID string, status models.LotStatus) ([]models.Lot, error)
	SellerStats(ctx context.Context, sellerID string) (models.SellerStats, error)
	Now() time.Time
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// CreateLotHandler handles POST /lots
func (h *BiddingHandler) CreateLotHandler(c *gin.Context) {
	var req helpers.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateLotHandler", err)
		return
	}

	lot, err := h.service.CreateLot(c.Request.Context(), bidding.LotInput{
		SellerID:           req.SellerID,
		StartingPrice:      req.StartingPrice,
		StepPrice:          req.StepPrice,
		BuyNowPrice:        req.BuyNowPrice,
		EndAt:              req.EndAt,
		AutoExtend:         req.AutoExtend,
		AllowUnratedBidder: req.AllowUnratedBidder,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateLotHandler", err, map[string]any{"seller_id": req.SellerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToLotResponse(lot, h.service.Now()), "lot created successfully")
	helpers.LogSuccess("CreateLotHandler", "lot created successfully", map[string]any{
		"lot_id":    lot.ID,
		"seller_id": lot.SellerID,
	})
}

// GetLotHandler handles GET /lots/:lot_id
func (h *BiddingHandler) GetLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	lot, err := h.service.GetLot(c.Request.Context(), lotID)
	if err != nil {
		helpers.HandleServiceError(c, "GetLotHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToLotResponse(lot, h.service.Now()), "lot retrieved successfully")
}

// GetHistoryHandler handles GET /lots/:lot_id/history
func (h *BiddingHandler) GetHistoryHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	entries, err := h.service.GetHistory(c.Request.Context(), lotID)
	if err != nil {
		helpers.HandleServiceError(c, "GetHistoryHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToHistoryResponse(entries), "history retrieved successfully")
	helpers.LogSuccess("GetHistoryHandler", "history retrieved successfully", map[string]any{
		"lot_id": lotID,
		"count":  len(entries),
	})
}

// PlaceBidHandler handles POST /lots/:lot_id/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	res, err := h.service.Resolve(c.Request.Context(), lotID, req.BidderID, req.MaxBid)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{
			"lot_id":    lotID,
			"bidder_id": req.BidderID,
			"max_bid":   req.MaxBid.String(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(res), "bid resolved successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid resolved successfully", map[string]any{
		"lot_id":        lotID,
		"bidder_id":     req.BidderID,
		"current_price": res.CurrentPrice.String(),
		"leading":       res.Leading,
		"sold":          res.Sold,
		"extended":      res.Extended,
	})
}

// RejectBidderHandler handles POST /lots/:lot_id/rejections
func (h *BiddingHandler) RejectBidderHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	var req helpers.RejectBidderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RejectBidderHandler", err)
		return
	}

	res, err := h.service.Reject(c.Request.Context(), lotID, req.BidderID, req.SellerID)
	if err != nil {
		helpers.HandleServiceError(c, "RejectBidderHandler", err, map[string]any{
			"lot_id":    lotID,
			"bidder_id": req.BidderID,
			"seller_id": req.SellerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.RejectResponse{
		LotID:          res.LotID,
		RejectedBidder: res.RejectedBidder,
		CurrentPrice:   res.CurrentPrice,
		LeadingBidder:  helpers.MaskBidder(res.LeadingBidderID),
		Reset:          res.Reset,
		PurgedEntries:  res.PurgedEntries,
	}, "bidder rejected successfully")
	helpers.LogSuccess("RejectBidderHandler", "bidder rejected successfully", map[string]any{
		"lot_id":         lotID,
		"bidder_id":      req.BidderID,
		"current_price":  res.CurrentPrice.String(),
		"reset":          res.Reset,
		"purged_entries": res.PurgedEntries,
	})
}

// CancelLotHandler handles POST /lots/:lot_id/cancel
func (h *BiddingHandler) CancelLotHandler(c *gin.Context) {
	h.sellerAction(c, "CancelLotHandler", "lot cancelled successfully", h.service.CancelLot)
}

// ConfirmSaleHandler handles POST /lots/:lot_id/confirm
func (h *BiddingHandler) ConfirmSaleHandler(c *gin.Context) {
	h.sellerAction(c, "ConfirmSaleHandler", "sale confirmed successfully", h.service.ConfirmSale)
}

// DeleteLotHandler handles DELETE /lots/:lot_id
func (h *BiddingHandler) DeleteLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	var req helpers.SellerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DeleteLotHandler", err)
		return
	}

	if err := h.service.DeleteLot(c.Request.Context(), lotID, req.SellerID); err != nil {
		helpers.HandleServiceError(c, "DeleteLotHandler", err, map[string]any{"lot_id": lotID, "seller_id": req.SellerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.DeleteLotResponse{LotID: lotID}, "lot deleted successfully")
	helpers.LogSuccess("DeleteLotHandler", "lot deleted successfully", map[string]any{"lot_id": lotID, "seller_id": req.SellerID})
}

// SellerLotsHandler handles GET /sellers/:seller_id/lots?status=
func (h *BiddingHandler) SellerLotsHandler(c *gin.Context) {
	sellerID := c.Param("seller_id")
	status := models.LotStatus(c.Query("status"))

	lots, err := h.service.SellerLots(c.Request.Context(), sellerID, status)
	if err != nil {
		helpers.HandleServiceError(c, "SellerLotsHandler", err, map[string]any{"seller_id": sellerID, "status": status})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToLotsResponse(lots, h.service.Now()), "lots retrieved successfully")
}

// SellerStatsHandler handles GET /sellers/:seller_id/stats
func (h *BiddingHandler) SellerStatsHandler(c *gin.Context) {
	sellerID := c.Param("seller_id")

	stats, err := h.service.SellerStats(c.Request.Context(), sellerID)
	if err != nil {
		helpers.HandleServiceError(c, "SellerStatsHandler", err, map[string]any{"seller_id": sellerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToSellerStatsResponse(stats), "stats retrieved successfully")
}

func (h *BiddingHandler) sellerAction(c *gin.Context, name, message string, action func(ctx context.Context, lotID, sellerID string) (models.Lot, error)) {
	lotID := c.Param("lot_id")
	var req helpers.SellerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, name, err)
		return
	}

	lot, err := action(c.Request.Context(), lotID, req.SellerID)
	if err != nil {
		helpers.HandleServiceError(c, name, err, map[string]any{"lot_id": lotID, "seller_id": req.SellerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToLotResponse(lot, h.service.Now()), message)
	helpers.LogSuccess(name, message, map[string]any{"lot_id": lotID, "seller_id": req.SellerID})
}
