package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"vidlib/docs"
	"vidlib/internal/auth"
	"vidlib/internal/cache"
	"vidlib/internal/config"
	"vidlib/internal/db"
	"vidlib/internal/handler"
	"vidlib/internal/model"
	"vidlib/internal/repository"
	"vidlib/internal/router"
	"vidlib/internal/service"
)

// @title VidLib API
// @version 1.0
// @description Video rental management API with customers, movies, genres, rentals/returns and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Rental{},
			&model.Movie{},
			&model.Genre{},
			&model.Customer{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Genre{},
		&model.Movie{},
		&model.Customer{},
		&model.User{},
		&model.Rental{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	genreRepo := repository.NewGenreRepository(gormDB)
	movieRepo := repository.NewMovieRepository(gormDB)
	customerRepo := repository.NewCustomerRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	rentalRepo := repository.NewRentalRepository(gormDB)
	txManager := repository.NewTxManager(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, service.NewPasswordValidator())
	genreService := service.NewGenreService(genreRepo, cacheClient)
	movieService := service.NewMovieService(movieRepo, genreRepo, cacheClient)
	customerService := service.NewCustomerService(customerRepo)
	rentalService := service.NewRentalService(customerRepo, rentalRepo, txManager, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	genreHandler := handler.NewGenreHandler(genreService)
	movieHandler := handler.NewMovieHandler(movieService)
	customerHandler := handler.NewCustomerHandler(customerService)
	rentalHandler := handler.NewRentalHandler(rentalService)
	returnHandler := handler.NewReturnHandler(rentalService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		userHandler,
		genreHandler,
		movieHandler,
		customerHandler,
		rentalHandler,
		returnHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
