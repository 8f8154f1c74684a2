package router

import (
	"fintrack/api"
	"fintrack/config"
	"fintrack/database"
	_ "fintrack/docs"
	"fintrack/middleware"
	"fintrack/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, store database.Store) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 服务
	authService := service.NewAuthService(store, middleware.TokenIssuer{Expire: cfg.JWT.ExpireTime}, cfg.Auth)
	categoryService := service.NewCategoryService(store)
	transactionService := service.NewTransactionService(store, categoryService, cfg.Transaction.StrictCategory)
	goalService := service.NewGoalService(store)
	emailService := service.NewEmailService(&cfg.Email)

	authHandler := api.NewAuthHandler(authService)
	categoryHandler := api.NewCategoryHandler(categoryService)
	transactionHandler := api.NewTransactionHandler(transactionService)
	reportHandler := api.NewReportHandler(transactionService, authService, emailService)
	goalHandler := api.NewGoalHandler(goalService)

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 注册登录限流；登出不校验 token，无论是否有效都返回成功
		limit := middleware.RateLimit(cfg.Auth.RateLimit, cfg.Auth.RateWindow)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", limit, authHandler.Register)
			auth.POST("/login", limit, authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		// 会话可选：未登录时列表返回空，写操作返回 401
		session := v1.Group("")
		session.Use(middleware.JWTAuth())
		{
			session.GET("/auth/me", authHandler.Me)

			categories := session.Group("/categories")
			{
				categories.GET("", categoryHandler.List)
				categories.POST("", categoryHandler.Create)
				categories.DELETE("/:id", categoryHandler.Delete)
			}

			transactions := session.Group("/transactions")
			{
				transactions.GET("", transactionHandler.List)
				transactions.POST("", transactionHandler.Create)
				transactions.DELETE("/:id", transactionHandler.Delete)
				transactions.GET("/:id/occurrences", transactionHandler.Occurrences)
			}

			reports := session.Group("/reports")
			{
				reports.GET("/monthly", reportHandler.Monthly)
				reports.GET("/monthly/alert", reportHandler.Alert)
				reports.GET("/monthly/csv", reportHandler.CSV)
				reports.GET("/monthly/excel", reportHandler.Excel)
				reports.POST("/monthly/email", reportHandler.Email)
			}

			goals := session.Group("/goals")
			{
				goals.GET("", goalHandler.List)
				goals.POST("", goalHandler.Create)
				goals.POST("/:id/progress", goalHandler.Progress)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
