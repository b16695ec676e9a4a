package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"reweightapp/models"

	"gorm.io/gorm"
)

// SubscriptionStore 订阅记录存取契约
type SubscriptionStore interface {
	// FindByEmail 未找到时返回 (nil, nil)
	FindByEmail(email string) (*models.Subscription, error)
	Create(sub *models.Subscription) error
}

type gormSubscriptionStore struct {
	db *gorm.DB
}

func NewGormSubscriptionStore(db *gorm.DB) SubscriptionStore {
	return &gormSubscriptionStore{db: db}
}

func (s *gormSubscriptionStore) FindByEmail(email string) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.Where("email = ?", email).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s *gormSubscriptionStore) Create(sub *models.Subscription) error {
	return s.db.Create(sub).Error
}

// SubscriptionService 订阅登记。邮箱统一转小写后按唯一键去重
type SubscriptionService struct {
	store  SubscriptionStore
	mailer Mailer
}

func NewSubscriptionService(store SubscriptionStore, mailer Mailer) *SubscriptionService {
	return &SubscriptionService{store: store, mailer: mailer}
}

// Subscribe 保存订阅并尽力发送运营通知。
// 重复订阅返回 duplicate=true；通知邮件失败不回滚已保存的订阅
func (s *SubscriptionService) Subscribe(email string) (duplicate bool, err error) {
	emailLower := strings.ToLower(email)

	existing, err := s.store.FindByEmail(emailLower)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return true, nil
	}

	sub := models.Subscription{
		Email:        emailLower,
		Source:       "website",
		SubscribedAt: time.Now(),
	}
	if err := s.store.Create(&sub); err != nil {
		return false, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendNotification(Notification{Kind: NotificationSubscription, Email: emailLower}); err != nil {
			log.Printf("failed to send subscription notification: %v", err)
		}
	}

	return false, nil
}
