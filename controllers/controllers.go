package controllers

import (
	"fmt"
	"log"
	"net/http"

	"reweightapp/services"

	"github.com/gin-gonic/gin"
)

var (
	statsService        *services.StatsService
	subscriptionService *services.SubscriptionService
	mailer              services.Mailer
)

// Setup 注入控制器依赖，启动时调用一次
func Setup(stats *services.StatsService, subs *services.SubscriptionService, m services.Mailer) {
	statsService = stats
	subscriptionService = subs
	mailer = m
}

// serverError 统一的 500 返回结构，详细堆栈只在调试模式下暴露
func serverError(ctx *gin.Context, msg string, err error) {
	log.Printf("%s: %v", msg, err)
	resp := gin.H{"error": msg, "message": err.Error()}
	if gin.IsDebugging() {
		resp["details"] = fmt.Sprintf("%+v", err)
	}
	ctx.JSON(http.StatusInternalServerError, resp)
}
