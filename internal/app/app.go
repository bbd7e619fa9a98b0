package app

import (
	"context"
	"os"

	"go-viagens/internal/bootstrap"
	"go-viagens/internal/costtype"
	"go-viagens/internal/employee"
	"go-viagens/internal/federativeunit"
	"go-viagens/internal/messaging/kafka"
	"go-viagens/internal/municipality"
	"go-viagens/internal/role"
	"go-viagens/internal/shared/connection"
	"go-viagens/internal/shared/sequence"
	"go-viagens/internal/trip"
	"go-viagens/internal/tripstatus"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, migrates the schema, seeds the lookup
// tables and registers every route on the router.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := db.AutoMigrate(
		&role.Role{},
		&tripstatus.TripStatus{},
		&costtype.CostType{},
		&federativeunit.FederativeUnit{},
		&municipality.Municipality{},
		&employee.Employee{},
		&trip.Trip{},
		&trip.Destination{},
		&trip.Cost{},
		&kafka.OutboxEvent{},
		&sequence.EntityCounter{},
	); err != nil {
		return err
	}

	if err := bootstrap.SeedReferenceData(context.Background(), db); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	return registerModules(router, db, redisClient)
}
