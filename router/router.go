package router

import (
	"time"

	"reweightapp/config"
	"reweightapp/controllers"
	"reweightapp/global"
	"reweightapp/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// 装配：Redis 计数存储 + MySQL 审计 + MQ 事件 + Resend 邮件
	store := services.NewRedisEngagementStore(global.RedisDB)
	events := services.NewEventPublisher(global.RabbitChannel, config.AppConfig.RabbitMQ.Queue)
	statsService := services.NewStatsService(store, global.Db, events)
	mailer := services.NewEmailService(
		config.AppConfig.Email.APIKey,
		config.AppConfig.Email.BaseURL,
		config.AppConfig.Email.FromEmail,
		config.AppConfig.Email.NotifyEmail,
	)
	subscriptionService := services.NewSubscriptionService(services.NewGormSubscriptionStore(global.Db), mailer)
	controllers.Setup(statsService, subscriptionService, mailer)

	api := r.Group("/api")
	{
		api.GET("/stats", controllers.GetArticleStats)
		api.POST("/stats", controllers.PostArticleStats)
		api.GET("/stats/top", controllers.GetTopArticles)
		api.POST("/subscribe", controllers.Subscribe)
		api.POST("/question", controllers.AskQuestion)
		api.GET("/articles", controllers.ListArticles)
		api.GET("/articles/:slug", controllers.GetArticleBySlug)
	}

	return r
}
