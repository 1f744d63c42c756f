package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripmate-backend-go/internal/core"
	"tripmate-backend-go/internal/db"
	"tripmate-backend-go/internal/middleware"
)

// SetupRoutes configures all the application routes with their handlers and
// middleware. Global middleware (Logging, Recovery, CORS) are applied to the
// router instance before this function is called, in main.go.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	membershipService core.MembershipService,
	messageService core.MessageService,
) {
	// Get Firebase Auth client. This must be available after db.InitFirebase().
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("Firebase Auth client is not initialized. AuthMiddleware cannot be created, and routes will not be set up.")
		panic("Firebase Auth client is nil during route setup. Ensure db.InitFirebase() was called and succeeded.")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)

	accessHandler := NewAccessHandler(membershipService)
	messageHandler := NewMessageHandler(messageService)

	apiV1 := router.Group("/api/v1")
	{
		// All vacation operations require an authenticated caller; the access
		// resolver then decides authorization per vacation.
		vacationsRouteGroup := apiV1.Group("/vacations/:vacationId", authMW.VerifyToken())
		{
			// GET /api/v1/vacations/{vacationId}/access?permission=view|edit|manage
			vacationsRouteGroup.GET("/access", accessHandler.CheckAccess)

			// GET /api/v1/vacations/{vacationId}/members
			vacationsRouteGroup.GET("/members", accessHandler.ListMembers)

			messagesRouteGroup := vacationsRouteGroup.Group("/messages")
			{
				messagesRouteGroup.POST("", messageHandler.SendMessage)
				messagesRouteGroup.GET("", messageHandler.ListMessages)
				messagesRouteGroup.PUT("/:messageId", messageHandler.EditMessage)
				messagesRouteGroup.DELETE("/:messageId", messageHandler.DeleteMessage)
			}
		}
	}

	// Public health check endpoint, outside the /api/v1 group.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Tripmate backend is healthy."})
	})

	logger.Info("API routes configured successfully under /api/v1 and /health.")
}
