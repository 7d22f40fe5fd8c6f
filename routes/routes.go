package routes

import (
	"github.com/gin-gonic/gin"

	config "github.com/udyambridge/business-platform-go/config"
	controllers "github.com/udyambridge/business-platform-go/controllers"
	directory "github.com/udyambridge/business-platform-go/directory"
	guard "github.com/udyambridge/business-platform-go/guard"
	middleware "github.com/udyambridge/business-platform-go/middleware"
	models "github.com/udyambridge/business-platform-go/models"
	session "github.com/udyambridge/business-platform-go/session"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, dir *directory.Directory, mgr *session.Manager) {
	g := guard.Guard{Fallback: cfg.FallbackPath}

	business := r.Group("/business")
	business.Use(middleware.ResolveSession(cfg, mgr))

	// public
	business.POST("/investors/register", controllers.InvestorRegister(dir))
	business.POST("/investors/login", controllers.InvestorLogin(cfg, dir, mgr))
	business.POST("/management/register", controllers.ManagementRegister(dir))
	business.POST("/management/login", controllers.ManagementLogin(cfg, dir, mgr))
	business.POST("/logout", controllers.Logout(mgr))
	business.GET("/session", controllers.CurrentSession(mgr))

	// investor-only
	investor := business.Group("")
	investor.Use(middleware.RequireRole(g, models.RoleInvestor))
	{
		investor.GET("/investment-ideas", controllers.ListInvestmentIdeas(dir))
	}

	// management-only
	management := business.Group("")
	management.Use(middleware.RequireRole(g, models.RoleManagement))
	{
		management.GET("/volunteers", controllers.ListVolunteers(dir))
		management.POST("/volunteers", controllers.CreateVolunteer(dir))
		management.POST("/investment-ideas", controllers.CreateInvestmentIdea(dir))
	}
}
