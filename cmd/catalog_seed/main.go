package main

import (
	"context"
	"flag"
	"net"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/clubtrainer/internal/logging"
	"github.com/2beens/clubtrainer/internal/store"
)

func main() {
	seedPath := flag.String("file", "./seed.toml", "path to the TOML seed file")
	redisHost := flag.String("redis-host", "localhost", "redis host")
	redisPort := flag.String("redis-port", "6379", "redis port")
	redisDB := flag.Int("redis-db", 0, "redis database")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	_ = godotenv.Load()
	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    *logLevel,
	})

	seedFile, err := loadSeedFile(*seedPath)
	if err != nil {
		log.Fatalf("load seed file: %s", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(*redisHost, *redisPort),
		Password: os.Getenv("CLUB_REDIS_PASS"),
		DB:       *redisDB,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("ping redis: %s", err)
	}

	summary, err := seed(ctx, store.NewRedisStore(rdb), seedFile)
	if err != nil {
		log.Fatalf("seed: %s", err)
	}
	log.Infof(
		"seeded %d templates, %d categories, %d players, %d wellness rules",
		summary.Templates, summary.Categories, summary.Players, summary.Rules,
	)
}
