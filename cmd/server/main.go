package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"location-sunrise-service/internal/adapters/cache"
	"location-sunrise-service/internal/adapters/geocoding"
	"location-sunrise-service/internal/adapters/sunrise"
	"location-sunrise-service/internal/api"
	"location-sunrise-service/internal/config"
	"location-sunrise-service/internal/platform/db"
	"location-sunrise-service/internal/ports"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (geocode cache, ORS, sunrise-sunset.org)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	// Geocode results are cached in Postgres when DATABASE_URL is set,
	// otherwise in a local SQLite file.
	conn, geocodeCache, err := openGeocodeCache()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := cache.InitGeocodeSchema(conn); err != nil {
		log.Fatal(err)
	}

	// Sunrise/sunset caching is optional; without REDIS_ADDR every
	// lookup goes to the upstream API.
	var sunriseCache ports.SunriseCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		sunriseCache = cache.NewRedisSunriseCache(client)
	}

	geo, err := geocoding.NewORSGeoLocationProvider(orsKey, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	sun := sunrise.NewProvider(config.Get("SUNRISE_BASE_URL", ""), sunriseCache)

	router := api.NewRouter(geo, sun)
	handler := cors.Default().Handler(router)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openGeocodeCache() (*sql.DB, ports.GeocodeCache, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return conn, cache.NewSQLGeocodeCache(conn), nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}
	if err := conn.Ping(); err != nil {
		return nil, nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return conn, cache.NewSqliteGeocodeCache(conn), nil
}
