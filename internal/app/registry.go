package app

import (
	"database/sql"

	"kgb-anri/internal/auth"
	"kgb-anri/internal/employee"
	"kgb-anri/internal/history"
	"kgb-anri/internal/messaging/kafka"
	"kgb-anri/internal/proposal"
	"kgb-anri/internal/rbac"
	"kgb-anri/internal/rbac/infra"
	"kgb-anri/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	historyRepo := history.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	proposalRepo := proposal.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewService(db, employeeRepo, rdb)
	historyService := history.NewService(db, historyRepo)
	proposalService := proposal.NewServiceWithOutbox(db, proposalRepo, counterRepo, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	historyHandler := history.NewHandler(historyService)
	proposalHandler := proposal.NewHandlerWithRedis(proposalService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		history.RegisterRoutes(api, historyHandler, rbacService)
		proposal.RegisterRoutes(api, proposalHandler, rbacService, rdb)
	}

	return nil
}
