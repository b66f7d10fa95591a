package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cgabhane/author-website/internal/config"
	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/repository"
	"github.com/cgabhane/author-website/internal/service"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// seed prepares a deployment: it creates the MongoDB indexes and can print
// a bcrypt hash for auth.admin_password_hash.
func main() {
	hashPassword := flag.String("hash-password", "", "print the bcrypt hash of this password and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := service.HashPassword(*hashPassword)
		if err != nil {
			fmt.Fprintln(os.Stderr, "hash password:", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	if !cfg.Mongo.Enabled() {
		log.Error("mongo.uri is not set, nothing to prepare", nil)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.WithError(err).Error("failed to connect to mongodb", nil)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.Mongo.Database)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.WithError(err).Error("failed to create indexes", nil)
		os.Exit(1)
	}
	log.Info("indexes ready", map[string]interface{}{"database": cfg.Mongo.Database})
}
