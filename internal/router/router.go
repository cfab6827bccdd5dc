// Package router assembles the gin engine: global middleware, the session
// store and every route of the API.
package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"secondhand-market/internal/config"
	"secondhand-market/internal/dto"
	"secondhand-market/internal/handler"
	"secondhand-market/internal/metrics"
	"secondhand-market/internal/middleware"
	"secondhand-market/internal/service"
)

type Deps struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Metrics  *metrics.Metrics
	Handlers *handler.Handlers
}

// New builds the engine. Forwarding headers such as X-Forwarded-For are
// honoured only for peers in Server.TrustedProxies; with none configured the
// client IP is always the TCP peer address.
func New(d Deps) (*gin.Engine, error) {
	if d.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(d.Config.Server.TrustedProxies); err != nil {
		return nil, errors.Wrap(err, "set trusted proxies")
	}
	// Instrument wraps Recover so recovered panics are counted as 500s.
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Logger),
		d.Metrics.Instrument(),
		middleware.Recover(),
		sessions.Sessions(d.Config.Session.Name, newSessionStore(d.Config.Session)),
		middleware.ErrorAdvice(),
	)

	r.Static(service.PublicPrefix, d.Config.Server.UploadDir)
	r.GET("/health", d.Handlers.Health.Health)
	r.GET(metrics.Path, gin.WrapH(d.Metrics.Handler()))
	r.GET("/swagger/doc.json", d.Handlers.Docs.Document)

	userOnly := middleware.LoginCheck(dto.UserTypeUser)
	adminOnly := middleware.LoginCheck(dto.UserTypeAdmin)

	profile := d.Handlers.Profile
	r.GET("/user/:id", profile.GetUserProfile)
	r.GET("/usermsg/:msrl", profile.GetUserMessage)
	r.PUT("/user/:id", profile.UpdateUserProfile)
	r.POST("/user/:id", profile.InsertUserProfile)
	r.DELETE("/user/:id", profile.DeleteUserProfile)

	auth := d.Handlers.Auth
	users := r.Group("/users")
	{
		users.POST("/login", middleware.RateLimit(d.Config.RateLimit.LoginPerMinute, d.Config.RateLimit.LoginBurst), auth.Login)
		users.POST("/logout", auth.Logout)
		users.GET("/my-info", userOnly, auth.MyInfo)
	}

	product := d.Handlers.Product
	products := r.Group("/products")
	{
		products.POST("", userOnly, product.RegisterProduct)
		products.GET("", product.SearchProducts)
		products.GET("/my-products", userOnly, product.GetMyProducts)
		products.GET("/:productId", product.GetProduct)
		products.PATCH("/:productId", userOnly, product.UpdateProducts)
		products.DELETE("/:productId", userOnly, product.DeleteProduct)
		products.POST("/:productId/dibs", userOnly, product.AddDib)
	}

	category := d.Handlers.Category
	r.GET("/categories", category.GetCategories)
	r.POST("/categories", adminOnly, category.RegisterCategory)

	r.POST("/files", userOnly, d.Handlers.File.Upload)

	return r, nil
}

func newSessionStore(cfg config.SessionConfig) sessions.Store {
	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}
