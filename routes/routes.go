package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PaynestHQ/paynest-mobile/handlers"
	"github.com/PaynestHQ/paynest-mobile/middleware"
	"github.com/PaynestHQ/paynest-mobile/services"
	"github.com/PaynestHQ/paynest-mobile/store"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, st store.UserStore, email *services.EmailService, ws *handlers.WSHandler) {
	authHandler := &handlers.AuthHandler{Store: st, Email: email, WS: ws}

	rg.POST("/auth/register", authHandler.Register)
	rg.POST("/auth/login", authHandler.Login)
	rg.POST("/auth/verify-email", authHandler.VerifyEmail)
	rg.POST("/auth/verify-phone", authHandler.VerifyPhone)
	rg.POST("/auth/resend-verification", authHandler.ResendVerification)
	rg.POST("/auth/forgot-password", authHandler.ForgotPassword)
}

// SetupUserRoutes sets up protected user routes.
func SetupUserRoutes(rg *gin.RouterGroup, st store.UserStore) {
	userHandler := &handlers.UserHandler{Store: st}

	rg.GET("/user/profile", userHandler.GetProfile)
}

// NewRouter assembles the full API surface on the given engine. Split out of
// main so integration tests can mount the same routes on a test server.
func NewRouter(engine *gin.Engine, st store.UserStore, email *services.EmailService, ws *handlers.WSHandler) {
	v1 := engine.Group("/api/v1")
	{
		SetupAuthRoutes(v1, st, email, ws)
		v1.GET("/ws/notifications", ws.HandleWS)

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			SetupUserRoutes(protected, st)
		}
	}
}
