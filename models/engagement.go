package models

import "gorm.io/gorm"

// Engagement 表示一次去重后的互动记录（用于持久化审计/分析，非计数来源）
type Engagement struct {
	gorm.Model
	Slug      string `gorm:"type:varchar(128);index"`
	Action    string `gorm:"type:varchar(16)"`
	VisitorID string `gorm:"type:varchar(128);index"`
}

// ArticleStats 单篇文章的聚合计数
type ArticleStats struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}
