package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/notaventas/backend/internal/application/billing"
	catalogapp "github.com/notaventas/backend/internal/application/catalog"
	identityapp "github.com/notaventas/backend/internal/application/identity"
	partnerapp "github.com/notaventas/backend/internal/application/partner"
	procurementapp "github.com/notaventas/backend/internal/application/procurement"
	salesapp "github.com/notaventas/backend/internal/application/sales"
	workforceapp "github.com/notaventas/backend/internal/application/workforce"
	"github.com/notaventas/backend/internal/infrastructure/auth"
	"github.com/notaventas/backend/internal/infrastructure/config"
	"github.com/notaventas/backend/internal/infrastructure/logger"
	"github.com/notaventas/backend/internal/infrastructure/persistence"
	"github.com/notaventas/backend/internal/infrastructure/printing"
	"github.com/notaventas/backend/internal/infrastructure/storage"
	"github.com/notaventas/backend/internal/interfaces/http/handler"
	"github.com/notaventas/backend/internal/interfaces/http/middleware"
	"github.com/notaventas/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	appLogger, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer appLogger.Sync() //nolint:errcheck

	appLogger.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port))

	// Database
	gormLogLevel := gormlogger.Warn
	if cfg.App.Env == "development" {
		gormLogLevel = gormlogger.Info
	}
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database,
		logger.NewGormLogger(appLogger, gormLogLevel))
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	// Token blacklist: Redis when reachable, in-memory otherwise so a
	// Redis outage degrades revocation instead of taking the API down.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, falling back to in-memory token blacklist",
			zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
	}

	// Object storage for invoice files
	var objectStorage billingapp.ObjectStorage
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage)
		if err != nil {
			appLogger.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStorage = s3Storage
	} else {
		appLogger.Warn("No storage bucket configured, invoice files are kept in memory")
		objectStorage = storage.NewInMemoryObjectStorage()
	}

	// PDF renderer for dispatch notes. A nil renderer disables the PDF
	// endpoint, which then answers with a service-unavailable error.
	var renderer printing.PDFRenderer
	if cfg.PDF.Enabled {
		chromeRenderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
			DefaultTimeout: cfg.PDF.RenderTimeout,
			ExecPath:       cfg.PDF.ChromePath,
			NoSandbox:      true,
			Logger:         appLogger,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize PDF renderer", zap.Error(err))
		}
		renderer = chromeRenderer
		defer chromeRenderer.Close() //nolint:errcheck
	} else {
		appLogger.Info("PDF rendering disabled")
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	attendanceRepo := persistence.NewGormAttendanceRepository(db.DB)
	noteRepo := persistence.NewGormNoteRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	orderRepo := persistence.NewGormMaterialOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Application services
	clientService := partnerapp.NewClientService(clientRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	productService := catalogapp.NewProductService(productRepo)
	employeeService := workforceapp.NewEmployeeService(employeeRepo)
	attendanceService := workforceapp.NewAttendanceService(employeeRepo, attendanceRepo, cfg.Reports)
	noteService := salesapp.NewNoteService(noteRepo, clientService, renderer)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, objectStorage, cfg.Storage.PresignExpiry, appLogger)
	orderService := procurementapp.NewOrderService(orderRepo, supplierRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, appLogger)
	userService := identityapp.NewUserService(userRepo, blacklist, jwtService, appLogger)

	engine := buildEngine(cfg, appLogger, jwtService, blacklist)

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewSystemHandler(db.DB, cfg.App.Name)).
		Register(handler.NewAuthHandler(authService, cfg.Cookie)).
		Register(handler.NewClientHandler(clientService)).
		Register(handler.NewSupplierHandler(supplierService)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewEmployeeHandler(employeeService, attendanceService)).
		Register(handler.NewNoteHandler(noteService)).
		Register(handler.NewInvoiceHandler(invoiceService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewUserHandler(userService)).
		Setup()

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("Server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

// buildEngine assembles the gin engine with the shared middleware chain.
// Route handlers are registered separately through the router.
func buildEngine(cfg *config.Config, appLogger *zap.Logger, jwtService *auth.JWTService, blacklist auth.TokenBlacklist) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		appLogger.Fatal("Invalid trusted proxy configuration", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(appLogger))
	engine.Use(logger.Recovery(appLogger))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = appLogger
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	return engine
}
