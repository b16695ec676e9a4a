package models

import "gorm.io/gorm"

// Article 站点文章（目录由 ArticleCatalog 静态提供，启动时写入数据库）
type Article struct {
	gorm.Model
	Title   string `gorm:"type:varchar(255)" json:"title"`
	Slug    string `gorm:"type:varchar(128);uniqueIndex" json:"slug"`
	Date    string `gorm:"type:varchar(32)" json:"date"`
	Preview string `gorm:"type:varchar(512)" json:"preview"`
	Content string `gorm:"type:longtext" json:"content"`
}

// ArticleCatalog 静态文章目录，slug 即唯一标识
var ArticleCatalog = []Article{
	{
		Title:   "What is re:weight?",
		Slug:    "what-is-reweight",
		Date:    "Nov 9, 2024",
		Preview: "Why we're shifting from Weight Loss to Weight Management.",
		Content: "We're frustrated with the current dieting culture. Keto, carnivore, intermittent fasting - it's overcomplicated. That's why we're shifting from **Weight Loss** to **Weight Management**.",
	},
	{
		Title:   "A beginner's guide to: Weight loss and TDEE",
		Slug:    "understanding-tdee",
		Date:    "Dec 15, 2024",
		Preview: "What TDEE actually is and how to calculate yours without a questionnaire.",
		Content: "Total Daily Energy Expenditure (TDEE) refers to the amount of energy that your body expends in a day. The best way to find your TDEE is to track your weekly caloric intake and your weekly weight average.",
	},
}

// GetArticleSlugs 返回目录中全部 slug，stats 预取用
func GetArticleSlugs() []string {
	slugs := make([]string, 0, len(ArticleCatalog))
	for _, art := range ArticleCatalog {
		slugs = append(slugs, art.Slug)
	}
	return slugs
}
