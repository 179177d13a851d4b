package routes

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	_ "solar_quotes/docs" // swag init output
	"solar_quotes/internal/adapter/http/handlers"
	"solar_quotes/internal/adapter/http/middleware"
	repository2 "solar_quotes/internal/adapter/persistence/repository"
	"solar_quotes/internal/infrastructure/cache"
	"solar_quotes/internal/infrastructure/database"
	"solar_quotes/internal/infrastructure/metrics"
	"solar_quotes/internal/infrastructure/payments"
	"solar_quotes/internal/usecase"
	"solar_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	router         = gin.Default()
	serviceMetrics = metrics.New()
)

const (
	defaultPort = "8080"

	SnapshotBackendDynamoDB = "dynamodb"
	SnapshotBackendRedis    = "redis"
	SnapshotBackendNone     = "none"

	restoreTimeout = 10 * time.Second
)

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", serviceMetrics.Handler())

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", defaultPort))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	snapshots, err := newQuoteSnapshotRepository(getenvDefault("SNAPSHOT_BACKEND", SnapshotBackendDynamoDB), ddb)
	if err != nil {
		log.Fatalf("[quote][routes] snapshot backend unavailable err=%v", err)
	}
	store := newQuoteStore(snapshots)
	serviceMetrics.RegisterQuoteStore(store)

	depositRepo := repository2.NewDepositPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	statsUseCase := usecase.NewQuoteStatsUseCase(store)
	depositUseCase := usecase.NewDepositPaymentUseCase(depositRepo, store, paymentGateway)

	quoteRequestHandler := handlers.NewQuoteRequestHandler(store)
	vendorQuoteHandler := handlers.NewVendorQuoteHandler(store, statsUseCase)
	depositHandler := handlers.NewDepositPaymentHandler(depositUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteRequestHandler, vendorQuoteHandler)
	addDepositRoutes(v1, depositHandler)
}

// newQuoteSnapshotRepository picks where the quote store blob lives.
// "none" keeps the store purely in memory.
func newQuoteSnapshotRepository(backend string, ddb *dynamodb.Client) (interfaces.IQuoteSnapshotRepository, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case SnapshotBackendNone:
		log.Printf("[quote][routes] snapshot persistence disabled")
		return nil, nil
	case SnapshotBackendRedis:
		rdb, err := cache.ConnectRedis()
		if err != nil {
			return nil, err
		}
		log.Printf("[quote][routes] snapshot backend=redis")
		return repository2.NewQuoteSnapshotRedisRepository(rdb), nil
	default:
		log.Printf("[quote][routes] snapshot backend=dynamodb")
		return repository2.NewQuoteSnapshotDynamoRepository(ddb), nil
	}
}

// newQuoteStore builds the store and loads the last snapshot. A failed restore
// is logged and the service starts empty.
func newQuoteStore(snapshots interfaces.IQuoteSnapshotRepository) *usecase.QuoteMatchingUseCase {
	store := usecase.NewQuoteMatchingUseCase(snapshots, os.Getenv("QUOTE_SNAPSHOT_KEY"))

	ctx, cancel := context.WithTimeout(context.Background(), restoreTimeout)
	defer cancel()

	if err := store.Restore(ctx); err != nil {
		log.Printf("[quote][routes] snapshot restore failed; starting empty err=%v", err)
	}
	if usecase.IsDemoSeedEnabled() {
		store.SeedDemoData(ctx)
	}
	return store
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(serviceMetrics.Middleware())
	router.Use(middleware.CORS())
	router.Use(middleware.NewIPRateLimiterFromEnv().RateLimit())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
