package routes

import (
	"net/http"

	"github.com/AGTechathon/Agriminds/configs"
	"github.com/AGTechathon/Agriminds/controllers"
	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/middlewares"
	"github.com/AGTechathon/Agriminds/repository"
	"github.com/AGTechathon/Agriminds/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter builds the engine with middleware, static uploads and the API.
// Client IPs come from X-Forwarded-For only when the peer is a trusted proxy.
func NewRouter(db *gorm.DB, cfg *configs.Config, log *zap.Logger) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	r.Use(middlewares.Recovery(log), middlewares.RequestLogger(log))
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.MaxMultipartMemory = 8 << 20

	r.Static("/uploads", cfg.UploadDir)

	RegisterRoutes(r, db, cfg)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	controllers.RegisterValidators()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cropRepo := repository.NewCropRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	inspectionRepo := repository.NewInspectionRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, profileRepo, cfg.JWTSecret, cfg.JWTTTL)
	cropSvc := services.NewCropService(db, cropRepo, cfg.UploadDir)
	marketSvc := services.NewMarketplaceService(cropRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cropRepo)
	profileSvc := services.NewProfileService(profileRepo, cfg.UploadDir)
	inspectionSvc := services.NewInspectionService(inspectionRepo, cropRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cropCtrl := controllers.NewCropController(cropSvc, marketSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	profileCtrl := controllers.NewProfileController(profileSvc)
	adminCtrl := controllers.NewAdminController(authSvc)
	agentCtrl := controllers.NewAgentController(inspectionSvc)

	auth := func(roles ...entity.Role) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}
	limiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Users (public, rate limited)
	users := api.Group("/users")
	{
		users.POST("/register", limiter.Limit(), authCtrl.Register)
		users.POST("/login", limiter.Limit(), authCtrl.Login)
		users.GET("/me", auth(), authCtrl.Me)
	}

	// Crops (any signed-in user)
	crops := api.Group("/crops", auth())
	{
		crops.GET("", cropCtrl.Marketplace)
		crops.GET("/:id", cropCtrl.Detail)
	}

	// Farmer
	farmer := api.Group("/farmer", auth(entity.RoleFarmer))
	{
		farmer.GET("/profile", profileCtrl.GetFarmer)
		farmer.PUT("/profile", profileCtrl.UpdateFarmer)
		farmer.GET("/crops", cropCtrl.ListMine)
		farmer.POST("/crops", cropCtrl.Submit)
		farmer.DELETE("/crops/:id", cropCtrl.Delete)
		farmer.GET("/orders", orderCtrl.ListForFarmer)
	}

	// Buyer
	buyers := api.Group("/buyers", auth(entity.RoleBuyer))
	{
		buyers.GET("/profile", profileCtrl.GetBuyer)
		buyers.PUT("/profile", profileCtrl.UpdateBuyer)
		buyers.GET("/marketplace", cropCtrl.Marketplace)
		buyers.POST("/orders", orderCtrl.Place)
		buyers.GET("/orders", orderCtrl.ListMine)
		buyers.PUT("/orders/:id/cancel", orderCtrl.Cancel)
	}

	// Order status (admin / delivery agent); the service re-checks the role
	api.PUT("/orders/:id/status", auth(), orderCtrl.UpdateStatus)

	// Admin
	admin := api.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.GET("/users", adminCtrl.ListUsers)
		admin.GET("/crops", cropCtrl.AdminList)
		admin.PUT("/crops/:id/status", cropCtrl.SetStatus)
		admin.PUT("/crops/:id/approve", cropCtrl.Approve)
		admin.PUT("/crops/:id/reject", cropCtrl.Reject)
		admin.GET("/orders", orderCtrl.AdminList)
	}

	// Agents
	delivery := api.Group("/agents/delivery", auth(entity.RoleAgentDelivery))
	{
		delivery.GET("/orders", orderCtrl.DeliveryQueue)
	}
	quality := api.Group("/agents/quality")
	{
		quality.GET("/crops", auth(entity.RoleAgentQuality), cropCtrl.QualityQueue)
		quality.POST("/crops/:id/inspections", auth(entity.RoleAgentQuality), agentCtrl.RecordInspection)
		quality.GET("/crops/:id/inspections", auth(entity.RoleAgentQuality, entity.RoleAdmin), agentCtrl.ListInspections)
	}
}
