package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription 邮件订阅记录，Email 入库前统一转小写
type Subscription struct {
	gorm.Model
	Email        string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Source       string    `gorm:"type:varchar(32)" json:"source"`
	SubscribedAt time.Time `json:"subscribedAt"`
}
