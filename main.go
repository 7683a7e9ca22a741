package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/bookhaven/backend/catalog"
	"github.com/bookhaven/backend/config"
	"github.com/bookhaven/backend/handlers"
	"github.com/bookhaven/backend/middleware"
	"github.com/bookhaven/backend/service"
	"github.com/bookhaven/backend/store"
)

func main() {
	_ = godotenv.Load()
	if os.Getenv("APP_ENV") == "production" {
		config.ValidateEnv()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	ctx := context.Background()
	db, err := store.NewMongoDB(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("mongodb:", err)
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			log.Println("mongodb disconnect:", err)
		}
	}()
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal("indexes:", err)
	}

	var covers *service.CoverStore
	if cfg.S3Bucket != "" {
		covers, err = service.NewCoverStore(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3AccessKeyID, cfg.S3SecretKey)
		if err != nil {
			log.Fatal("s3:", err)
		}
	} else {
		log.Println("warning: AWS_S3_BUCKET not set; cover uploads disabled")
	}

	authHandler := &handlers.AuthHandler{DB: db, JWTSecret: cfg.JWTSecret}
	booksHandler := &handlers.BooksHandler{
		DB:        db,
		PageSize:  cfg.PageSize,
		MaxUpload: cfg.MaxUploadMB * 1024 * 1024,
	}
	if covers != nil {
		booksHandler.Covers = covers
	}
	searchHandler := &handlers.SearchHandler{Aggregator: &catalog.Aggregator{Store: db}}
	authorsHandler := &handlers.AuthorsHandler{DB: db, PageSize: cfg.PageSize}
	genresHandler := &handlers.GenresHandler{DB: db, PageSize: cfg.PageSize}
	reviewsHandler := &handlers.ReviewsHandler{DB: db}
	wishlistHandler := &handlers.WishlistHandler{DB: db}

	r := chi.NewRouter()
	r.Use(middleware.CORS())
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/books", booksHandler.List)
		r.Get("/books/top-rated", booksHandler.TopRated)
		r.Get("/books/{id}", booksHandler.Get)
		r.Get("/books/{id}/cover", booksHandler.Cover)
		r.Get("/search", searchHandler.Search)
		r.Get("/authors", authorsHandler.List)
		r.Get("/genres", genresHandler.List)
		r.Get("/reviews", reviewsHandler.List)
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTSecret))
			r.Get("/me", authHandler.Me)
			r.Get("/reviews/user", reviewsHandler.ListMine)
			r.Post("/reviews", reviewsHandler.Create)
			r.Put("/reviews", reviewsHandler.Update)
			r.Delete("/reviews", reviewsHandler.Delete)
			r.Get("/wishlist", wishlistHandler.List)
			r.Post("/wishlist", wishlistHandler.Update)
			r.Delete("/wishlist", wishlistHandler.Remove)
			r.Get("/wishlist/check", wishlistHandler.Check)
			r.Post("/books/{id}/cover", booksHandler.UploadCover)
		})
	})

	server := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Println("server listening on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown:", err)
	}
}
