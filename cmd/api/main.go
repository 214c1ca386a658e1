package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/AuMiauServices/petshop-api/internal/audit"
	"github.com/AuMiauServices/petshop-api/internal/config"
	dbpkg "github.com/AuMiauServices/petshop-api/internal/db"
	"github.com/AuMiauServices/petshop-api/internal/mailer"
	"github.com/AuMiauServices/petshop-api/internal/observability"
	"github.com/AuMiauServices/petshop-api/internal/payments"
	"github.com/AuMiauServices/petshop-api/internal/resetcode"
	"github.com/AuMiauServices/petshop-api/internal/routes"
	"github.com/AuMiauServices/petshop-api/internal/storage"
	"github.com/AuMiauServices/petshop-api/internal/token"
)

func main() {

	cfg := config.Load()

	logger, err := observability.NewLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	codes := resetcode.New(rdb, time.Duration(cfg.Auth.ResetTTLMinutes)*time.Minute)
	images := storage.NewImageStore(cfg.Storage)
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes)
	mail := mailer.NewLogMailer(logger)

	var linker payments.Linker
	if cfg.Payments.MercadoPagoToken != "" {
		mp, err := payments.NewMercadoPago(cfg.Payments.MercadoPagoToken)
		if err != nil {
			logger.Fatal("failed to init mercado pago client", zap.Error(err))
		}
		linker = mp
	} else {
		logger.Warn("mercado pago token not set, payment links disabled")
	}

	dispatcher := audit.NewDispatcher(audit.New(db), logger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "Bem vindo a PetShop API"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Cfg:      cfg,
		Log:      logger,
		Tokens:   tokens,
		Codes:    codes,
		Mail:     mail,
		Images:   images,
		Payments: linker,
		Audit:    dispatcher,
	})

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
