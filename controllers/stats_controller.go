package controllers

import (
	"net/http"
	"strconv"

	"reweightapp/services"

	"github.com/gin-gonic/gin"
)

type statsActionRequest struct {
	Slug   string `json:"slug"`
	Action string `json:"action"`
}

// GetArticleStats 读取单篇文章计数，首次读取会落零值记录
func GetArticleStats(ctx *gin.Context) {
	slug := ctx.Query("slug")
	if slug == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Slug is required"})
		return
	}

	visitorID := services.VisitorID(ctx.Request)
	stats, hasViewed, hasLiked, err := statsService.Stats(slug, visitorID)
	if err != nil {
		serverError(ctx, "Failed to fetch stats", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"stats":     stats,
		"hasViewed": hasViewed,
		"hasLiked":  hasLiked,
	})
}

// PostArticleStats 记录一次互动。未知 action 不报错，原样返回当前计数
func PostArticleStats(ctx *gin.Context) {
	var req statsActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Slug and action are required"})
		return
	}
	if req.Slug == "" || req.Action == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Slug and action are required"})
		return
	}

	visitorID := services.VisitorID(ctx.Request)
	stats, err := statsService.Record(req.Slug, req.Action, visitorID)
	if err != nil {
		serverError(ctx, "Failed to update stats", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetTopArticles 点赞排行 Top N，默认 10
func GetTopArticles(ctx *gin.Context) {
	topStr := ctx.DefaultQuery("top", "10")
	top, err := strconv.Atoi(topStr)
	if err != nil || top <= 0 {
		top = 10
	}

	list, err := statsService.TopLiked(top)
	if err != nil {
		serverError(ctx, "Failed to fetch ranking", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"list": list})
}
