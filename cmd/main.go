package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/saeidalz13/battleship-solo/api"
	"github.com/saeidalz13/battleship-solo/db"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
	"github.com/saeidalz13/battleship-solo/web"
)

func main() {
	// Flags fall back to the upper case env vars (STAGE, PORT, ...)
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file loaded:", err)
		}
	}

	var (
		stage        = flag.String("stage", "dev", "either dev or prod")
		port         = flag.Int("port", 8080, "HTTP service port")
		psqlUrl      = flag.String("database_url", "", "postgres url for the analytics counters; empty disables them")
		migrationDir = flag.String("migration_dir", db.DefaultMigrationDir, "source url of the migrations")
		seed         = flag.Int64("seed", 0, "seed for random placement; 0 uses the clock")
		origins      = flag.String("allowed_origins", "", "comma separated websocket origins accepted in prod; empty means same host only")
	)
	flag.Parse()

	if *stage != "dev" && *stage != "prod" {
		panic("stage must be either dev or prod")
	}

	analytics := sqlc.NewAnalyticsManager(nil)
	if *psqlUrl != "" {
		pgDb := db.MustConnectToDb(*psqlUrl, *migrationDir)
		defer pgDb.Close()
		analytics = sqlc.NewDbManager(pgDb).Analytics
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	sessionManager := mc.NewBattleshipSessionManager()
	gameManager := mb.NewBattleshipGameManager(rand.New(rand.NewSource(*seed)))
	var opts []api.Option
	if *stage == "prod" {
		opts = append(opts, api.WithAllowedOrigins(strings.Split(*origins, ",")...))
	}
	rp := api.NewRequestProcessor(sessionManager, gameManager, analytics, opts...)

	go sessionManager.CleanupPeriodically()

	mux := http.NewServeMux()
	mux.Handle("GET /battleship", rp)
	mux.Handle("GET /", http.FileServer(web.FS()))

	log.Printf("Listening to port %d (stage: %s, analytics: %t)\n", *port, *stage, analytics.Enabled())
	log.Fatalln(http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", *port), mux))
}
