package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Adoulaziztalla/SOGAS-V3/config"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/api/handler"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/api/middleware"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/jwt"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/redis"
)

// Setup builds the Gin engine with the full route table. Writes are
// gated by role: admin/rh manage the registry and HR records, managers
// validate leave, everyone reads their own data.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	rh := middleware.RoleAuth(model.RoleAdmin, model.RoleRH)
	encadrement := middleware.RoleAuth(model.RoleAdmin, model.RoleRH, model.RoleManager)

	v1 := r.Group("/api/v1")
	{
		// authentication (public)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// organizational registry
			structure := authorized.Group("/structure")
			{
				structure.GET("/sites", h.Structure.ListSites)
				structure.POST("/sites", rh, h.Structure.CreateSite)
				structure.GET("/departements", h.Structure.ListDepartements)
				structure.POST("/departements", rh, h.Structure.CreateDepartement)
				structure.GET("/services", h.Structure.ListServices)
				structure.POST("/services", rh, h.Structure.CreateService)
				structure.GET("/equipes", h.Structure.ListEquipes)
				structure.POST("/equipes", rh, h.Structure.CreateEquipe)
				structure.GET("/postes", h.Structure.ListPostes)
				structure.POST("/postes", rh, h.Structure.CreatePoste)
				structure.GET("/fonctions", h.Structure.ListFonctions)
				structure.POST("/fonctions", rh, h.Structure.CreateFonction)
			}

			// employee directory
			employes := authorized.Group("/employes")
			{
				employes.GET("", h.Employe.List)
				employes.GET("/:id", h.Employe.Get)
				employes.GET("/:id/affectations", h.Employe.ListAffectations)
				employes.POST("", rh, h.Employe.Create)
				employes.PUT("/:id", rh, h.Employe.Update)
				employes.DELETE("/:id", rh, h.Employe.Archive)
			}

			// attendance
			pointages := authorized.Group("/pointages")
			{
				pointages.POST("/checkin", h.Pointage.Checkin)
				pointages.PUT("/checkout/:employeId", h.Pointage.Checkout)
				pointages.GET("/:employeId", h.Pointage.ListMois)
			}

			// holiday calendar
			joursFeries := authorized.Group("/jours-feries")
			{
				joursFeries.GET("", h.JourFerie.List)
				joursFeries.GET("/export.ics", h.JourFerie.ExportICS)
				joursFeries.POST("", rh, h.JourFerie.Create)
				joursFeries.DELETE("/:id", rh, h.JourFerie.Deactivate)
			}

			// leave requests
			conges := authorized.Group("/conges")
			{
				conges.POST("", h.Conge.Create)
				conges.GET("/:id", h.Conge.Get)
				conges.GET("/employe/:employeId", h.Conge.ListByEmploye)
				conges.POST("/:id/decisions", encadrement, h.Conge.Decide)
			}

			// contracts
			contrats := authorized.Group("/contrats")
			{
				contrats.POST("", rh, h.Contrat.Create)
				contrats.GET("/:id", rh, h.Contrat.Get)
				contrats.GET("/employe/:employeId", rh, h.Contrat.ListByEmploye)
			}

			// sanctions
			sanctions := authorized.Group("/sanctions")
			{
				sanctions.POST("", rh, h.Sanction.Create)
				sanctions.GET("/employe/:employeId", rh, h.Sanction.ListByEmploye)
			}

			// medical follow-up
			medical := authorized.Group("/medical")
			{
				medical.POST("/visites", rh, h.Medical.CreateVisite)
				medical.GET("/visites/employe/:employeId", rh, h.Medical.ListVisites)
				medical.POST("/accidents", rh, h.Medical.CreateAccident)
				medical.GET("/accidents/employe/:employeId", rh, h.Medical.ListAccidents)
			}

			// documents and alerts
			authorized.POST("/documents", rh, h.Admin.CreateDocument)
			authorized.GET("/documents", h.Admin.ListDocuments)
			authorized.POST("/alertes", rh, h.Admin.CreateAlerte)
			authorized.GET("/alertes", encadrement, h.Admin.ListAlertes)
			authorized.PUT("/alertes/:id/vue", encadrement, h.Admin.MarkAlerteSeen)

			// exports
			authorized.GET("/exports/pointages/:employeId", rh, h.Export.ExportPointages)
		}
	}

	return r
}
