package main

import (
	"context"
	"log"

	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"

	"github.com/rakandev/portfolio-cms/internal/bootstrap"
	"github.com/rakandev/portfolio-cms/internal/config"
	"github.com/rakandev/portfolio-cms/internal/entity"
	searchservice "github.com/rakandev/portfolio-cms/internal/modules/search/service"
	"github.com/rakandev/portfolio-cms/internal/server"
	"github.com/rakandev/portfolio-cms/pkg/database"
	"github.com/rakandev/portfolio-cms/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Profile{},
		&entity.Project{},
		&entity.Post{},
		&entity.Experience{},
		&entity.Education{},
		&entity.Skill{},
		&entity.Certificate{},
		&entity.Testimonial{},
		&entity.SocialLink{},
		&entity.Message{},
		&entity.Setting{},
		&entity.PageView{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := bootstrap.Seed(context.Background(), db, cfg); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("redis unreachable, continuing without it: %v", err)
			rdb = nil
		}
	}

	var searchSvc searchservice.SearchService
	if cfg.MeiliSearchHost != "" {
		client := meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
		searchSvc = searchservice.NewSearchService(client)
	}

	imageStorage, err := storage.NewCloudinaryStorage(cfg.CloudinaryUploadFolder)
	if err != nil {
		log.Printf("image storage disabled: %v", err)
		imageStorage = nil
	}

	srv := server.New(cfg, db, rdb, imageStorage, searchSvc)
	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
