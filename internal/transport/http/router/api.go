package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bookstore-api/internal/core/auth"
	"bookstore-api/internal/transport/http/handler"
	mdw "bookstore-api/internal/transport/http/middleware"
)

type Handlers struct {
	Account    *handler.AccountHandler
	Books      *handler.BookHandler
	Categories *handler.CategoryHandler
}

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers, allowOrigins []string) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		ginzap.Ginzap(l, time.RFC3339, true),
		corsMiddleware(allowOrigins),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	account := api.Group("/Account")
	account.POST("/register", h.Account.Register)
	account.POST("/login", h.Account.Login)

	// List endpoints are public; everything else needs a bearer token.
	books := api.Group("/Books")
	books.GET("", h.Books.List)
	booksAuth := books.Group("")
	booksAuth.Use(mdw.AuthJWT(jwter))
	booksAuth.GET("/:id", h.Books.GetByID)
	booksAuth.POST("", h.Books.Create)
	booksAuth.PUT("/:id", h.Books.Update)
	booksAuth.DELETE("/:id", h.Books.Delete)

	categories := api.Group("/Categories")
	categories.GET("", h.Categories.List)
	categoriesAuth := categories.Group("")
	categoriesAuth.Use(mdw.AuthJWT(jwter))
	categoriesAuth.GET("/:id", h.Categories.GetByID)
	categoriesAuth.POST("", h.Categories.Create)
	categoriesAuth.PUT("/:id", h.Categories.Update)
	categoriesAuth.DELETE("/:id", h.Categories.Delete)

	return r
}

func corsMiddleware(allowOrigins []string) gin.HandlerFunc {
	if len(allowOrigins) == 0 {
		return cors.Default()
	}
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = allowOrigins
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cors.New(cfg)
}
