package controllers

import (
	"log"
	"net/http"
	"strings"

	"reweightapp/services"

	"github.com/gin-gonic/gin"
)

type questionRequest struct {
	Email    string `json:"email"`
	Question string `json:"question"`
}

// AskQuestion 把访客提问转发给运营邮箱。
// 与订阅不同：这里通知邮件就是请求本身，发送失败要返回 500
func AskQuestion(ctx *gin.Context) {
	var req questionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || !strings.Contains(req.Email, "@") {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valid email is required"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}

	err := mailer.SendNotification(services.Notification{
		Kind:     services.NotificationQuestion,
		Email:    req.Email,
		Question: req.Question,
	})
	if err != nil {
		log.Printf("failed to send question notification: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send question. Please try again later."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Question sent successfully",
	})
}
