package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/cmd"
	httpin "github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/adapters/in/http"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/adapters/out/postgres/orderrepo"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/adapters/out/postgres/reconrepo"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateGetOpenReconciliationsQueryHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		RateLimitRPS:      goDotEnvVariable("RATE_LIMIT_RPS"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		CarrierBaseURL:    goDotEnvVariable("CARRIER_BASE_URL"),
		CarrierTimeout:    goDotEnvVariable("CARRIER_TIMEOUT"),
		ChannelBaseURL:    goDotEnvVariable("CHANNEL_BASE_URL"),
		ChannelTimeout:    goDotEnvVariable("CHANNEL_TIMEOUT"),
		CatalogBaseURL:    goDotEnvVariable("CATALOG_BASE_URL"),
		CatalogTimeout:    goDotEnvVariable("CATALOG_TIMEOUT"),
		CatalogCacheTTL:   goDotEnvVariable("CATALOG_CACHE_TTL"),
		ShipperLine1:      goDotEnvVariable("SHIPPER_LINE1"),
		ShipperLine2:      goDotEnvVariable("SHIPPER_LINE2"),
		ShipperCity:       goDotEnvVariable("SHIPPER_CITY"),
		ShipperRegion:     goDotEnvVariable("SHIPPER_REGION"),
		ShipperPostalCode: goDotEnvVariable("SHIPPER_POSTAL_CODE"),
		ShipperCountry:    goDotEnvVariable("SHIPPER_COUNTRY"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.RefundDTO{},
		&orderrepo.CancellationDTO{},
		&orderrepo.ShipmentDTO{},
		&orderrepo.PackageDTO{},
		&reconrepo.ReconciliationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	server := httpin.NewServer(
		app.CreateRefundOrderCommandHandler(),
		app.CreateGenerateLabelCommandHandler(),
		app.CreateMarkShippedCommandHandler(),
		app.CreateRequestCancellationCommandHandler(),
		app.CreateApproveCancellationCommandHandler(),
		app.CreateRejectCancellationCommandHandler(),
		app.CreateGetShippingRatesQueryHandler(),
		app.CreateGetOrderSummaryQueryHandler(),
		logger,
	)

	e := echo.New()
	server.RegisterRoutes(e, cmd.RateLimitRPS(configs))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
