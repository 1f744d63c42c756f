package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripmate-backend-go/internal/api"
	"tripmate-backend-go/internal/cache"
	"tripmate-backend-go/internal/config"
	"tripmate-backend-go/internal/core"
	"tripmate-backend-go/internal/db"
	"tripmate-backend-go/internal/events"
	"tripmate-backend-go/internal/middleware"
)

func main() {
	// --- 1. Initialize Logger (Zap) ---
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Zap logger initialized successfully.")

	// --- 2. Load Application Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	// --- 3. Initialize Firebase Admin SDK (Realtime DB, Firestore, Auth) ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirebase(initCtx, appConfig); err != nil {
		zapLogger.Fatal("Failed to initialize Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Realtime DB, Firestore, Auth) initialized successfully.")

	// --- 4. Retrieve initialized clients ---
	rtdbClient := db.GetRealtimeDBClient()
	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if rtdbClient == nil || firestoreClient == nil || firebaseAuthClient == nil {
		zapLogger.Fatal("Firebase clients are nil after initialization. Application cannot start.")
	}

	// --- 5. Initialize Repositories ---
	var vacationRepo db.VacationRepository = db.NewRTDBVacationRepository(rtdbClient)

	// Optional Redis snapshot cache in front of the membership store. The
	// access resolver stays cache-unaware either way.
	if appConfig.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(initCtx, cache.RedisCacheConfig{
			Address:  appConfig.RedisAddr,
			Password: appConfig.RedisPassword,
			DB:       appConfig.RedisDB,
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis membership cache", zap.Error(err))
		}
		ttl := time.Duration(appConfig.MembershipCacheTTLSeconds) * time.Second
		vacationRepo = db.NewCachedVacationRepository(vacationRepo, redisCache, ttl)
		zapLogger.Info("Membership snapshot cache enabled", zap.Duration("ttl", ttl))
	}

	messageRepo := db.NewFirestoreMessageRepository(firestoreClient)
	auditRepo := db.NewFirestoreAuditRepository(firestoreClient)
	zapLogger.Info("Repositories initialized successfully.")

	// --- 6. Initialize Event Publisher (optional) ---
	var publisher events.Publisher = events.NoopPublisher{}
	if appConfig.AMQPUrl != "" {
		publisher, err = events.NewRabbitMQPublisher(events.RabbitMQPublisherConfig{
			URL:       appConfig.AMQPUrl,
			QueueName: appConfig.EventQueue,
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to RabbitMQ event publisher", zap.Error(err))
		}
		zapLogger.Info("Message event publisher enabled", zap.String("queue", appConfig.EventQueue))
	}

	// --- 7. Initialize Core Services ---
	accessService := core.NewAccessService(vacationRepo, zapLogger)
	auditService := core.NewAuditService(auditRepo)
	membershipService := core.NewMembershipService(vacationRepo, accessService)

	messageService, err := core.NewMessageService(messageRepo, accessService, auditService, publisher, appConfig.MaxMessageLength)
	if err != nil {
		zapLogger.Fatal("Failed to initialize MessageService", zap.Error(err))
	}
	zapLogger.Info("Core services initialized successfully.")

	// --- 8. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
		zapLogger.Info("Gin mode set to 'release'.")
	} else {
		gin.SetMode(gin.DebugMode)
		zapLogger.Info("Gin mode set to 'debug'.")
	}
	router := gin.New()

	// --- 9. Apply Global Middleware (Order is important) ---
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))

	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured. API might not be accessible from a web frontend.")
	}

	// --- 10. Setup API Routes ---
	api.SetupRoutes(router, zapLogger, membershipService, messageService)

	// --- 11. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 12. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	zapLogger.Info("Attempting graceful shutdown of HTTP server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	if err := publisher.Close(); err != nil {
		zapLogger.Warn("Error closing event publisher", zap.Error(err))
	}
	if err := firestoreClient.Close(); err != nil {
		zapLogger.Warn("Error closing Firestore client", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
