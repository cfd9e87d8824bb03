package history

import (
	"kgb-anri/internal/domain"
	"kgb-anri/internal/middleware"
	"kgb-anri/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	history := r.Group("/history")
	history.Use(middleware.AuthMiddleware())
	{
		// Pegawai hanya melihat riwayatnya sendiri, admin bisa melihat semua.
		history.GET("/me", handler.GetMine)

		history.GET("",
			middleware.RBACAuthorize(rbacService, domain.ResourceHistory, domain.ActionRead),
			handler.GetAll)
		history.GET("/employee/:nip",
			middleware.RBACAuthorize(rbacService, domain.ResourceHistory, domain.ActionRead),
			handler.GetByNIP)
	}
}
