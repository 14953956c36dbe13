package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/epeers/company-accounts/config"
	_ "github.com/epeers/company-accounts/docs"
	"github.com/epeers/company-accounts/internal/cache"
	"github.com/epeers/company-accounts/internal/chs"
	"github.com/epeers/company-accounts/internal/handlers"
	"github.com/epeers/company-accounts/internal/middleware"
	"github.com/epeers/company-accounts/internal/render"
	"github.com/epeers/company-accounts/internal/repository"
	"github.com/epeers/company-accounts/internal/services"
	"github.com/epeers/company-accounts/internal/transformer"
	"github.com/epeers/company-accounts/internal/util"
	"github.com/epeers/company-accounts/internal/validation"
)

//	@title			Company Accounts API
//	@version		1.0
//	@description	Submit and validate small full company accounts within a filing transaction.
//	@BasePath		/

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.SetFormatter(&log.JSONFormatter{})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize document store
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Errorf("Failed to close store: %v", err)
		}
	}()

	// Initialize API clients
	chsClient := chs.NewClient(cfg.APIKey, cfg.APIURL)
	renderClient := render.NewClient(cfg.APIKey, cfg.DocumentRenderServiceHost)

	// Initialize caches
	profileCache := cache.NewMemoryCache(5 * time.Minute)
	keys := util.NewKeyGenerator(cfg.KeyIDSalt)

	// Initialize repositories
	companyAccountRepo := repository.NewCompanyAccountRepository(store)
	smallFullRepo := repository.NewSmallFullRepository(store)
	periodRepos := services.NewPeriodRepositories(store)
	noteRepos := repository.NewNoteRepositoryFactory(repository.NoteRepositories(store))

	// Initialize services
	companySvc := services.NewCompanyService(chsClient, profileCache)
	periodReader := services.NewPeriodReader(periodRepos, keys)
	accountsValidator := validation.NewValidator(companySvc, periodReader)
	parents := services.NewParentResourceFactory(services.NewSmallFullParentResource(smallFullRepo, keys))

	svc := handlers.Services{
		Transactions:    chsClient,
		CompanyAccounts: services.NewCompanyAccountService(companyAccountRepo, chsClient),
		SmallFull:       services.NewSmallFullService(smallFullRepo, companyAccountRepo, keys),
		Periods:         services.NewPeriodService(periodRepos, accountsValidator, parents, keys),
		Notes: services.NewNoteService(
			validation.NewNoteValidatorFactory(validation.NoteValidators(accountsValidator)),
			transformer.NewNoteTransformerFactory(transformer.NoteTransformers()),
			noteRepos,
			parents,
			keys,
		),
		Filings: services.NewFilingService(companyAccountRepo, periodReader, renderClient),
	}

	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterBindingValidations(engine); err != nil {
			log.Fatalf("Failed to register binding validations: %v", err)
		}
	}

	// Setup Gin router
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery(), middleware.ValidateIdentity())

	handlers.RegisterRoutes(router, svc)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}

func openStore(ctx context.Context, cfg *config.Config) (repository.DocumentStore, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		return repository.NewMongoStore(ctx, cfg.MongoURL, cfg.MongoDatabase)
	case config.StorePostgres:
		return repository.NewPostgresStore(ctx, cfg.PGURL)
	case config.StoreBolt:
		return repository.NewBoltStore(cfg.BoltPath)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
