package app

import (
	"go-viagens/internal/auth"
	"go-viagens/internal/costtype"
	"go-viagens/internal/employee"
	"go-viagens/internal/federativeunit"
	"go-viagens/internal/messaging/kafka"
	"go-viagens/internal/middleware"
	"go-viagens/internal/municipality"
	"go-viagens/internal/rbac"
	"go-viagens/internal/rbac/infra"
	"go-viagens/internal/role"
	"go-viagens/internal/shared/database"
	"go-viagens/internal/shared/sequence"
	"go-viagens/internal/trip"
	"go-viagens/internal/tripstatus"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	txm := database.NewTxManager(db)

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(db)
	roleRepo := role.NewRepository(db)
	unitRepo := federativeunit.NewRepository(db)
	municipalityRepo := municipality.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	statusRepo := tripstatus.NewRepository(db)
	costTypeRepo := costtype.NewRepository(db)
	tripRepo := trip.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	seqRepo := sequence.NewRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	roleService := role.NewService(txm, roleRepo, seqRepo)
	unitService := federativeunit.NewService(txm, unitRepo, seqRepo)
	municipalityService := municipality.NewService(
		txm, municipalityRepo, unitRepo, municipality.NewIBGEClient(), seqRepo,
	)
	employeeService := employee.NewService(txm, employeeRepo, seqRepo)
	authService := auth.NewService(employeeRepo, employeeService)
	tripAssembler := trip.NewAssembler(
		tripRepo, employeeRepo, municipalityRepo, unitRepo, statusRepo, costTypeRepo,
	)
	tripService := trip.NewService(
		txm, tripRepo, outboxRepo, seqRepo, rbacService, rdb, tripAssembler,
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	roleHandler := role.NewHandler(roleService)
	unitHandler := federativeunit.NewHandler(unitService)
	municipalityHandler := municipality.NewHandler(municipalityService)
	employeeHandler := employee.NewHandler(employeeService)
	statusHandler := tripstatus.NewHandler(statusRepo)
	costTypeHandler := costtype.NewHandler(costTypeRepo)
	tripHandler := trip.NewHandlerWithRedis(tripService, rdb)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		role.RegisterRoutes(api, roleHandler, rbacService)
		federativeunit.RegisterRoutes(api, unitHandler, rbacService)
		municipality.RegisterRoutes(api, municipalityHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		tripstatus.RegisterRoutes(api, statusHandler)
		costtype.RegisterRoutes(api, costTypeHandler)
		trip.RegisterRoutes(api, tripHandler, rbacService, rdb)
	}

	return nil
}
