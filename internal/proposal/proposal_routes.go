package proposal

import (
	"kgb-anri/internal/domain"
	"kgb-anri/internal/middleware"
	"kgb-anri/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	proposals := r.Group("/proposals")
	proposals.Use(middleware.AuthMiddleware())
	{
		proposals.GET("",
			middleware.RBACAuthorize(rbacService, domain.ResourceProposal, domain.ActionRead),
			handler.GetAll)
		proposals.GET("/stats",
			middleware.RBACAuthorize(rbacService, domain.ResourceProposal, domain.ActionRead),
			handler.GetStats)
		proposals.GET("/:id",
			middleware.RBACAuthorize(rbacService, domain.ResourceProposal, domain.ActionRead),
			handler.GetById)
		proposals.POST("",
			middleware.RBACAuthorize(rbacService, domain.ResourceProposal, domain.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Create)

		proposals.POST("/:id/approve",
			middleware.RBACAuthorize(rbacService, domain.ResourceProposal, domain.ActionVerify),
			handler.Approve)
		proposals.POST("/:id/reject",
			middleware.RBACAuthorize(rbacService, domain.ResourceProposal, domain.ActionVerify),
			handler.Reject)

		proposals.POST("/:id/decision-file",
			middleware.RBACAuthorize(rbacService, domain.ResourceProposal, domain.ActionVerify),
			handler.AttachDecisionFile)
		proposals.GET("/:id/decision-file",
			middleware.RBACAuthorize(rbacService, domain.ResourceProposal, domain.ActionRead),
			handler.DownloadDecisionFile)

		proposals.POST("/:id/decision-letter",
			middleware.RBACAuthorize(rbacService, domain.ResourceProposal, domain.ActionVerify),
			handler.IssueDecisionLetter)
		proposals.GET("/:id/decision-letter/download",
			middleware.RBACAuthorize(rbacService, domain.ResourceProposal, domain.ActionRead),
			handler.DownloadDecisionLetter)
	}
}
