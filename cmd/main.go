package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/pass-vault/internal/handlers"
	"github.com/sbilibin2017/pass-vault/internal/jwt"
	"github.com/sbilibin2017/pass-vault/internal/logger"
	"github.com/sbilibin2017/pass-vault/internal/middlewares"
	"github.com/sbilibin2017/pass-vault/internal/migrations"
	"github.com/sbilibin2017/pass-vault/internal/repositories"
	"github.com/sbilibin2017/pass-vault/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title pass-vault API
// @version 1.0.0
// @description Zero-knowledge password vault: the server stores only client-side ciphertext
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name auth_token
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, appEnv, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, cacheTTLSecond,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, appEnv, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, cacheTTLSecond,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, appEnv, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, cacheTTLSecond int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	appEnv = getEnv("APP_ENV", "development")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "vault")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if cacheTTLSecond, err = strconv.Atoi(getEnv("CATEGORY_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "vault-audit")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "604800")); err != nil { // 7 days
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It applies pending migrations, sets up routes and middleware, and
// handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, appEnv, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, cacheTTLSecond int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	secureCookie := appEnv == "production"

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply pending migrations
	engine, err := migrations.New(db, migrations.Definitions())
	if err != nil {
		return err
	}
	applied, err := engine.Migrate(ctx)
	if err != nil {
		logger.Log.Fatal("migration failed:", err)
	}
	logger.Log.Infof("Applied %d migrations", applied)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for audit events; optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)
	cookieMaxAge := jwtSvc.Exp()

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	sessionWriteRepo := repositories.NewSessionWriteRepository(db)
	vaultReadRepo := repositories.NewVaultReadRepository(db)
	vaultWriteRepo := repositories.NewVaultWriteRepository(db)
	categoryCacheRepo := repositories.NewCategoryCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessionWriteRepo, jwtSvc)
	vaultService := services.NewVaultService(vaultReadRepo, vaultWriteRepo, categoryCacheRepo, kafkaWriter)

	// Initialize handlers
	signupHandler := handlers.NewSignupHandler(authService, cookieMaxAge, secureCookie)
	loginHandler := handlers.NewLoginHandler(authService, cookieMaxAge, secureCookie)
	logoutHandler := handlers.NewLogoutHandler(authService, jwtSvc)
	vaultCreateHandler := handlers.NewVaultCreateHandler(vaultService)
	vaultListHandler := handlers.NewVaultListHandler(vaultService)
	vaultGetHandler := handlers.NewVaultGetHandler(vaultService)
	vaultUpdateHandler := handlers.NewVaultUpdateHandler(vaultService)
	vaultDeleteHandler := handlers.NewVaultDeleteHandler(vaultService)
	vaultCategoriesHandler := handlers.NewVaultCategoriesHandler(vaultService)
	migrationStatusHandler := handlers.NewMigrationStatusHandler(engine)
	migrationRunHandler := handlers.NewMigrationRunHandler(engine)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/api/auth/signup", signupHandler)
	r.Post("/api/auth/login", loginHandler)
	r.Post("/api/auth/logout", logoutHandler)
	r.Get("/api/health", healthHandler)

	// Protected routes with session middleware
	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/api/vault", vaultListHandler)
		r.Post("/api/vault", vaultCreateHandler)
		r.Get("/api/vault/categories", vaultCategoriesHandler)
		r.Get("/api/vault/{id}", vaultGetHandler)
		r.Put("/api/vault/{id}", vaultUpdateHandler)
		r.Delete("/api/vault/{id}", vaultDeleteHandler)
		r.Get("/api/migrations", migrationStatusHandler)
		r.Post("/api/migrations", migrationRunHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
