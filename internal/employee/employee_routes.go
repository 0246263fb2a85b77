package employee

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *rbac.Enforcer, jwtSecret string) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(jwtSecret))
	{
		employees.GET("", middleware.Authorize(enforcer, "employees", "read"), h.ListActive)
		// Any authenticated employee may browse the department list.
		employees.GET("/departments", h.Departments)
		employees.GET("/:id", middleware.Authorize(enforcer, "employees", "read"), h.GetByID)
		employees.POST("", middleware.Authorize(enforcer, "employees", "manage"), h.Create)
		employees.PUT("/:id", middleware.Authorize(enforcer, "employees", "manage"), h.Update)
		employees.DELETE("/:id", middleware.Authorize(enforcer, "employees", "manage"), h.Deactivate)
	}
}
