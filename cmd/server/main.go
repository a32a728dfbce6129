package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DevKaiky/appfit-API/internal/config"
	"github.com/DevKaiky/appfit-API/internal/handler"
	"github.com/DevKaiky/appfit-API/internal/logger"
	"github.com/DevKaiky/appfit-API/internal/metrics"
	"github.com/DevKaiky/appfit-API/internal/middleware"
	"github.com/DevKaiky/appfit-API/internal/migrations"
	"github.com/DevKaiky/appfit-API/internal/repository"
	"github.com/DevKaiky/appfit-API/internal/router"
	"github.com/DevKaiky/appfit-API/internal/service"
	"github.com/DevKaiky/appfit-API/internal/token"
)

const serviceName = "desafios"

func main() {
	// .env is optional; real deployments configure through the environment.
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables only")
	}

	log := logger.NewLogger(serviceName)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if cfg.RunMigrations {
		if err := runMigrations(context.Background(), db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	tokens, err := token.NewService(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	usuarioRepo := repository.NewUsuarioRepository(db)
	desafioRepo := repository.NewDesafioRepository(db)

	authService := service.NewAuthService(usuarioRepo, tokens)
	desafioService := service.NewDesafioService(desafioRepo)

	authHandler := handler.NewAuthHandler(authService, log)
	desafioHandler := handler.NewDesafioHandler(desafioService, log)

	authGate := middleware.NewAuthGate(tokens)
	m := metrics.NewMetrics(serviceName)

	rt := router.New()
	rt.Get("/", handler.Index)
	rt.Get("/health", handler.Health)
	rt.Get("/metrics", func(w http.ResponseWriter, r *http.Request, _ []string) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	rt.Post("/login", authHandler.Login)

	rt.Get("/desafios", authGate.Protect(desafioHandler.ListarTodos))
	rt.Get("/desafios/{id}", authGate.Protect(desafioHandler.BuscarPorID))
	rt.Post("/desafios", authGate.Protect(desafioHandler.Criar))
	rt.Put("/desafios/{id}", authGate.Protect(desafioHandler.Atualizar))
	rt.Delete("/desafios/{id}", authGate.Protect(desafioHandler.Excluir))

	var root http.Handler = rt
	root = metrics.Middleware(m)(root)
	root = middleware.RequestLogger(log)(root)
	root = middleware.CORS(root)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go m.CollectDBPoolStats(ctx, db, 15*time.Second)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Server listening on :%s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Shutdown error: %v", err)
	}
}

// openDatabase builds the MySQL connector and configures the connection
// pool. parseTime is required so DATE columns scan into time.Time.
func openDatabase(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBDatabase)

	mysqlCfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	connector, err := mysql.NewConnector(mysqlCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("mysql"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
