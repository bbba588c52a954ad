package routes

import (
	"context"
	"fmt"
	"log"
	"strconv"

	_ "upi_escrow/docs" // swagger docs
	"upi_escrow/internal/adapter/http/handlers"
	"upi_escrow/internal/adapter/http/middleware"
	"upi_escrow/internal/adapter/persistence/repository"
	"upi_escrow/internal/infrastructure/auth"
	"upi_escrow/internal/infrastructure/config"
	"upi_escrow/internal/infrastructure/database"
	"upi_escrow/internal/usecase"
	"upi_escrow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()
	store, closeStore, err := openPaymentStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open payment store %q: %v", cfg.PaymentStore, err)
	}
	defer closeStore()

	oracle, err := auth.NewJWTOracle(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to configure authorization: %v", err)
	}

	ledger := usecase.NewEscrowLedgerUseCase(store, oracle, cfg.StrictTransitions)
	log.Printf("[escrow][server] ledger ready store=%s strict_transitions=%t", cfg.PaymentStore, cfg.StrictTransitions)

	router := NewRouter(ledger)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires middlewares, swagger and the /v1 routes around a ledger.
func NewRouter(ledger usecase.IEscrowLedgerUseCase) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	paymentHandler := handlers.NewEscrowPaymentHandler(ledger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEscrowRoutes(v1, paymentHandler)
	return router
}

func openPaymentStore(ctx context.Context, cfg *config.Config) (interfaces.IPaymentStore, func(), error) {
	noop := func() {}
	switch cfg.PaymentStore {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, noop, err
		}
		table := repository.PaymentsTableName()
		if err := database.EnsurePaymentsTable(ctx, ddb, table); err != nil {
			return nil, noop, err
		}
		return repository.NewPaymentDynamoRepository(ddb), noop, nil
	case config.StoreBolt:
		db, err := database.OpenBolt(cfg.BoltPath, repository.PaymentsBucket)
		if err != nil {
			return nil, noop, err
		}
		return repository.NewPaymentBoltRepository(db), func() {
			if err := db.Close(); err != nil {
				log.Printf("[escrow][server] bolt close failed err=%v", err)
			}
		}, nil
	case config.StorePostgres:
		db, err := database.ConnectPostgres(cfg.DatabaseURL, &repository.PaymentRecord{})
		if err != nil {
			return nil, noop, err
		}
		return repository.NewPaymentGormRepository(db), func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil
	default:
		return nil, noop, fmt.Errorf("%w: %s", config.ErrUnknownStore, cfg.PaymentStore)
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: request_id=%s err=%v", middleware.RequestIDFrom(c), recovered)
		c.AbortWithStatus(500)
	}))
}
