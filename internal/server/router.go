package server

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"art-auction-backend/internal/cache"
	"art-auction-backend/internal/config"
	"art-auction-backend/internal/handlers"
	"art-auction-backend/internal/metrics"
	"art-auction-backend/internal/middleware"
	"art-auction-backend/internal/models"
)

// Auth routes get a fixed budget independent of the bid limit.
const (
	authRateLimit = 1.0
	authRateBurst = 5
)

// Dependencies are the collaborators the routes are built from. Bids, Database and
// CacheHealth may be nil when the matching backend is not configured.
type Dependencies struct {
	Config      *config.Config
	Store       handlers.Store
	Bids        handlers.BidPlacer
	Auth        handlers.AuthService
	Images      handlers.ImageResolver
	Cache       cache.Cache
	CacheTTL    time.Duration
	Database    handlers.Pinger
	CacheHealth handlers.Pinger
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSOptions(deps.Config.CORSAllowedOrigins)))
	router.Use(metrics.Middleware())
	router.Use(middleware.RequestLogger())

	router.GET("/health", handlers.HealthHandler(deps.Database, deps.CacheHealth))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	artistsHandler := handlers.NewArtistsHandler(deps.Store)
	artworksHandler := handlers.NewArtworksHandler(deps.Store, deps.Cache, deps.CacheTTL, deps.Images)
	auctionsHandler := handlers.NewAuctionsHandler(deps.Store)
	bidsHandler := handlers.NewBidsHandler(deps.Store, deps.Bids, deps.Cache, deps.CacheTTL)
	profilesHandler := handlers.NewProfilesHandler(deps.Store)
	authHandler := handlers.NewAuthHandler(deps.Auth)

	bidLimiter := middleware.NewRateLimiter(deps.Config.BidRateLimit, deps.Config.BidRateBurst)
	authLimiter := middleware.NewRateLimiter(authRateLimit, authRateBurst)

	artists := router.Group("/artist")
	{
		artists.GET("/", artistsHandler.ListArtists)
		artists.GET("/:artist_number", artistsHandler.GetArtist)
		artists.GET("/email/:email", artistsHandler.GetArtistByEmail)
	}

	artworks := router.Group("/artwork")
	{
		artworks.GET("/", artworksHandler.ListArtworks)
		artworks.POST("/", artworksHandler.CreateArtwork)
		artworks.GET("/artist/:artist_id", artworksHandler.ListArtworksByArtist)
		artworks.GET("/:id", artworksHandler.GetArtwork)
		artworks.PATCH("/:id", artworksHandler.UpdateArtwork)
		artworks.PUT("/:id", artworksHandler.UpdateArtwork)
		artworks.GET("/:id/reserve",
			middleware.AuthMiddleware(deps.Config),
			middleware.RequireRole(deps.Store, models.RoleArtist),
			artworksHandler.GetReserve,
		)
	}

	auctions := router.Group("/auction")
	{
		auctions.GET("/", auctionsHandler.ListAuctions)
		auctions.POST("/", auctionsHandler.CreateAuction)
		auctions.GET("/artwork/:artworkId", auctionsHandler.ListAuctionsByArtwork)
		auctions.GET("/:id", auctionsHandler.GetAuction)
		auctions.PATCH("/:id", auctionsHandler.UpdateAuction)
		auctions.PUT("/:id", auctionsHandler.UpdateAuction)
		auctions.DELETE("/:id", auctionsHandler.DeleteAuction)
	}

	bids := router.Group("/bid")
	{
		bids.GET("/", bidsHandler.ListBids)
		bids.POST("/", middleware.OptionalAuth(deps.Config), bidLimiter.Handler(), bidsHandler.PlaceBid)
		bids.GET("/latest/auction/:auctionId", bidsHandler.LatestBidByAuction)
		bids.GET("/:bidId", bidsHandler.GetBid)
	}

	profiles := router.Group("/profiles")
	{
		profiles.GET("/", profilesHandler.ListProfiles)
		profiles.GET("/artists/", profilesHandler.ListArtistProfiles)
		profiles.GET("/:id", profilesHandler.GetProfile)
	}

	auth := router.Group("/auth")
	auth.Use(authLimiter.Handler())
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	return router
}
