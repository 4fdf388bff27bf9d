package main

import (
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"tendering/cmd"
	httpadapter "tendering/internal/adapters/in/http"
	"tendering/internal/adapters/out/postgres/sequencer"
	"tendering/internal/adapters/out/postgres/tenderrepo"
	"tendering/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)

	root, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		root.CreateSweepDeadlinesCommandHandler(),
		root.CreateSweepEscalationsCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		BrokerServiceURL:   goDotEnvVariable("BROKER_SERVICE_URL"),
		OrderServiceURL:    goDotEnvVariable("ORDER_SERVICE_URL"),
		ShipmentServiceURL: goDotEnvVariable("SHIPMENT_SERVICE_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&tenderrepo.TenderDTO{},
		&tenderrepo.OfferDTO{},
		&sequencer.CounterDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		root.CreateCreateCascadeCommandHandler(),
		root.CreateCreateTenderCommandHandler(),
		root.CreateOpenTenderCommandHandler(),
		root.CreateCloseTenderCommandHandler(),
		root.CreateCancelTenderCommandHandler(),
		root.CreateSubmitOfferCommandHandler(),
		root.CreateWithdrawOfferCommandHandler(),
		root.CreateAcceptOfferCommandHandler(),
		root.CreateRejectOfferCommandHandler(),
		root.CreateAwardTenderCommandHandler(),
		root.CreateGetCascadeQueryHandler(),
		root.CreateGetOpenTendersQueryHandler(),
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != stdhttp.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := e.Close(); err != nil {
		e.Logger.Error(err)
	}
}
