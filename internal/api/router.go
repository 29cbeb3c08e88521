package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"hostel-manager-backend/config"
	"hostel-manager-backend/internal/auth"
	"hostel-manager-backend/internal/mail"
	"hostel-manager-backend/internal/mw"
	"hostel-manager-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.Config, tokens *auth.Issuer, mailer mail.Mailer, webpushOptions *webpush.Options) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, tokens, mailer, webpushOptions, cfg.Auth.BcryptCost)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	// Read caching is opt-in via cache_ttl_seconds and applies only to the
	// public VAPID key. Authenticated reads are never cached: the cache is
	// keyed by URI alone and would replay one caller's response to another.
	caching := func(c *gin.Context) { c.Next() }
	if cfg.Server.CacheTTLSeconds > 0 {
		ttl := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
		caching = mw.Cache(cache.New(ttl, 2*ttl), ttl)
	}

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/login", handler.Login)
		api.POST("/forgot-password", handler.ForgotPassword)
		api.GET("/vapid_public_key", caching, handler.GetVAPIDPublicKey)

		authed := api.Group("")
		authed.Use(mw.RequireAuth(tokens))
		{
			admin := authed.Group("/admin")
			admin.Use(mw.RequireAdmin())
			{
				admin.GET("/users", handler.ListOwners)
				admin.POST("/approve", handler.Approve)
				admin.POST("/change-password", handler.ChangeAdminPassword)
				admin.POST("/delete-owner", handler.DeleteOwner)
			}

			authed.POST("/setup", handler.Setup)
			authed.POST("/reset-hostel", handler.ResetHostel)
			authed.GET("/dashboard/:userId", handler.Dashboard)
			authed.POST("/rooms/add-bed", handler.AddBed)
			authed.POST("/rooms/remove-bed", handler.RemoveBed)

			authed.POST("/book", handler.Book)
			authed.POST("/update-tenant", handler.UpdateTenant)
			authed.POST("/update-leave", handler.UpdateLeave)
			authed.POST("/pay-rent", handler.PayRent)
			authed.POST("/vacate", handler.Vacate)
			authed.POST("/import-data", handler.ImportData)
			authed.GET("/rent-history/:bedId", handler.RentHistory)

			authed.GET("/finance/:userId", handler.Finance)
			authed.POST("/expenses/add", handler.AddExpense)
			authed.POST("/expenses/delete", handler.DeleteExpense)
			authed.GET("/expenses/:userId", handler.ListExpenses)
			authed.POST("/workers/add", handler.AddWorker)
			authed.POST("/workers/delete", handler.DeleteWorker)
			authed.GET("/workers/:userId", handler.ListWorkers)

			authed.POST("/profile/update", handler.UpdateProfile)

			authed.GET("/subscriptions", handler.GetSubscription)
			authed.PUT("/subscriptions", handler.PutSubscription)
			authed.DELETE("/subscriptions", handler.DeleteSubscription)
		}
	}

	return r
}
