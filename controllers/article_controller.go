package controllers

import (
	"errors"
	"net/http"

	"reweightapp/global"
	"reweightapp/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListArticles 返回文章目录
func ListArticles(ctx *gin.Context) {
	var articles []models.Article
	if err := global.Db.Order("id").Find(&articles).Error; err != nil {
		serverError(ctx, "Failed to fetch articles", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticleBySlug 按 slug 查询单篇文章
func GetArticleBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	var art models.Article
	if err := global.Db.Where("slug = ?", slug).First(&art).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		serverError(ctx, "Failed to fetch article", err)
		return
	}

	ctx.JSON(http.StatusOK, art)
}
