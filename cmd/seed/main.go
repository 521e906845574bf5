// Command seed bootstraps the MongoDB store: it creates the unique email
// index and inserts the sample catalog when the videos collection is
// empty. The server does the same at startup; this command exists for
// provisioning a store ahead of the first deploy.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/avelinom/vidgate/internal/config"
	mongorepo "github.com/avelinom/vidgate/internal/repository/mongo"
	redisrepo "github.com/avelinom/vidgate/internal/repository/redis"
	"github.com/avelinom/vidgate/internal/service"
)

func main() {
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	db, err := mongorepo.NewClient(ctx, cfg.Mongo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to MongoDB: %v\n", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())

	if err := mongorepo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create indexes: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("users: unique email index ensured")

	videos := mongorepo.NewVideoRepository(db)
	inserted, err := videos.SeedIfEmpty(ctx, service.SampleCatalog(cfg.Catalog.ThumbBaseURL))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed catalog: %v\n", err)
		os.Exit(1)
	}

	count, err := videos.Count(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to count catalog: %v\n", err)
		os.Exit(1)
	}

	if inserted > 0 {
		fmt.Printf("videos: seeded %d sample record(s)\n", inserted)
		invalidateDashboardCache(ctx, cfg)
	} else {
		fmt.Println("videos: catalog not empty, nothing to seed")
	}
	fmt.Printf("videos: %d record(s) total\n", count)
}

// invalidateDashboardCache drops any listing cached before the seed so a
// running server does not keep serving an empty dashboard. Best-effort:
// the cache has a short TTL anyway.
func invalidateDashboardCache(ctx context.Context, cfg *config.Config) {
	redisClient, err := redisrepo.NewClient(cfg.Redis)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: Redis unavailable, dashboard cache not invalidated: %v\n", err)
		return
	}
	defer redisClient.Close()

	if err := redisrepo.NewDashboardCache(redisClient).Invalidate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to invalidate dashboard cache: %v\n", err)
		return
	}
	fmt.Println("dashboard cache invalidated")
}
