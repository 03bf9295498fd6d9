package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"vidlib/internal/config"
	"vidlib/internal/db"
	"vidlib/internal/model"
	"vidlib/internal/repository"
)

// Seeds the database with a handful of genres, movies and customers plus
// an admin user, so a fresh install has something to rent.
func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Genre{},
		&model.Movie{},
		&model.Customer{},
		&model.User{},
		&model.Rental{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	genreRepo := repository.NewGenreRepository(gormDB)
	movieRepo := repository.NewMovieRepository(gormDB)
	customerRepo := repository.NewCustomerRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	genres := map[string]*model.Genre{}
	for _, name := range []string{"Action", "Comedy", "Drama", "Thriller"} {
		genre := &model.Genre{Name: name}
		if err := genreRepo.Create(ctx, genre); err != nil {
			log.Fatalf("seed genre %q: %v", name, err)
		}
		genres[name] = genre
	}

	movies := []struct {
		title string
		genre string
		stock int
		rate  string
	}{
		{"Airplane!", "Comedy", 5, "2.00"},
		{"Die Hard", "Action", 10, "2.50"},
		{"The Terminator", "Action", 10, "2.00"},
		{"12 Angry Men", "Drama", 3, "1.50"},
		{"Rear Window", "Thriller", 4, "2.00"},
	}
	for _, m := range movies {
		rate, err := decimal.NewFromString(m.rate)
		if err != nil {
			log.Fatalf("parse rate %q: %v", m.rate, err)
		}
		movie := &model.Movie{
			Title:           m.title,
			Genre:           genres[m.genre].Snapshot(),
			NumberInStock:   m.stock,
			DailyRentalRate: rate,
		}
		if err := movieRepo.Create(ctx, movie); err != nil {
			log.Fatalf("seed movie %q: %v", m.title, err)
		}
	}

	customers := []model.Customer{
		{Name: "Alice Morgan", Phone: "0511111111", IsGold: true},
		{Name: "Bob Turner", Phone: "0522222222"},
		{Name: "Carol Danvers", Phone: "0533333333"},
	}
	for i := range customers {
		if err := customerRepo.Create(ctx, &customers[i]); err != nil {
			log.Fatalf("seed customer %q: %v", customers[i].Name, err)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("Admin-123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}
	admin := &model.User{
		Name:         "Administrator",
		Email:        "admin@vidlib.local",
		PasswordHash: string(hashed),
		IsAdmin:      true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("seed admin user: %v", err)
	}

	log.Printf("seeded %d genres, %d movies, %d customers, 1 admin user", len(genres), len(movies), len(customers))
}
