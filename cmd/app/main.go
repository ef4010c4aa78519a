package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"ordering/cmd"
	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the user repository maps to the duplicate-email domain error.
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusChangeDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddOrderItemCommandHandler(),
		app.CreatePayOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateShipOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateGetAllUsersQueryHandler(),
		app.CreateGetUserQueryHandler(),
		app.CreateGetUserByEmailQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderHistoryQueryHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
