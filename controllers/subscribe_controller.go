package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe 登记订阅邮箱。校验只看有没有 @，与前端保持一致
func Subscribe(ctx *gin.Context) {
	var req subscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || !strings.Contains(req.Email, "@") {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valid email is required"})
		return
	}

	duplicate, err := subscriptionService.Subscribe(req.Email)
	if err != nil {
		serverError(ctx, "Failed to save email", err)
		return
	}

	if duplicate {
		ctx.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Email already registered",
			"duplicate": true,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email saved successfully",
	})
}
