package server

import (
	"auction-engine/internal/monitoring"
	handler "auction-engine/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService handler.BiddingServiceInterface, enableMetrics bool) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware)
	router.Use(RequestLoggerMiddleware)

	biddingHandler := handler.NewBiddingHandler(biddingService)

	lots := router.Group("/lots")
	{
		lots.POST("", biddingHandler.CreateLotHandler)
		lots.GET("/:lot_id", biddingHandler.GetLotHandler)
		lots.DELETE("/:lot_id", biddingHandler.DeleteLotHandler)
		lots.GET("/:lot_id/history", biddingHandler.GetHistoryHandler)
		lots.POST("/:lot_id/bids", biddingHandler.PlaceBidHandler)
		lots.POST("/:lot_id/rejections", biddingHandler.RejectBidderHandler)
		lots.POST("/:lot_id/cancel", biddingHandler.CancelLotHandler)
		lots.POST("/:lot_id/confirm", biddingHandler.ConfirmSaleHandler)
	}

	sellers := router.Group("/sellers/:seller_id")
	{
		sellers.GET("/lots", biddingHandler.SellerLotsHandler)
		sellers.GET("/stats", biddingHandler.SellerStatsHandler)
	}

	if enableMetrics {
		router.GET("/metrics", gin.WrapH(monitoring.Handler()))
	}

	return router
}
