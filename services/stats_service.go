package services

import (
	"log"

	"reweightapp/models"

	"gorm.io/gorm"
)

const (
	ActionView = "view"
	ActionLike = "like"
)

// StatsService 互动计数的读写编排。
// 计数真相在 EngagementStore；MySQL 审计记录与 MQ 事件均为 best-effort，
// 失败只记日志，不影响主流程（写库失败不应让点赞失败）
type StatsService struct {
	store  EngagementStore
	audit  *gorm.DB
	events *EventPublisher
}

func NewStatsService(store EngagementStore, audit *gorm.DB, events *EventPublisher) *StatsService {
	return &StatsService{store: store, audit: audit, events: events}
}

// Stats 读路径：懒初始化后返回聚合计数与当前访客的已看/已赞标记
func (s *StatsService) Stats(slug, visitorID string) (models.ArticleStats, bool, bool, error) {
	if err := s.store.EnsureRecord(slug); err != nil {
		return models.ArticleStats{}, false, false, err
	}

	stats, err := s.store.Counts(slug)
	if err != nil {
		return models.ArticleStats{}, false, false, err
	}

	hasViewed, err := s.store.IsMember(slug, SetViewedBy, visitorID)
	if err != nil {
		return models.ArticleStats{}, false, false, err
	}
	hasLiked, err := s.store.IsMember(slug, SetLikedBy, visitorID)
	if err != nil {
		return models.ArticleStats{}, false, false, err
	}

	return stats, hasViewed, hasLiked, nil
}

// Record 写路径：view/like 按访客条件加一，其余 action 不报错也不落任何数据，
// 只返回当前计数
func (s *StatsService) Record(slug, action, visitorID string) (models.ArticleStats, error) {
	switch action {
	case ActionView:
		if err := s.recordAction(slug, action, SetViewedBy, visitorID, s.store.IncrViews); err != nil {
			return models.ArticleStats{}, err
		}
	case ActionLike:
		if err := s.recordAction(slug, action, SetLikedBy, visitorID, s.store.IncrLikes); err != nil {
			return models.ArticleStats{}, err
		}
	}

	return s.store.Counts(slug)
}

func (s *StatsService) recordAction(slug, action, set, visitorID string, incr func(string) error) error {
	if err := s.store.EnsureRecord(slug); err != nil {
		return err
	}

	added, err := s.store.AddMember(slug, set, visitorID)
	if err != nil {
		return err
	}
	if !added {
		// 该访客已计入，无事可做
		return nil
	}

	if err := incr(slug); err != nil {
		return err
	}

	if s.audit != nil {
		record := models.Engagement{Slug: slug, Action: action, VisitorID: visitorID}
		if err := s.audit.Create(&record).Error; err != nil {
			log.Printf("engagement audit record failed for %s/%s: %v", slug, action, err)
		}
	}
	s.events.Publish(EngagementEvent{Slug: slug, Action: action, VisitorID: visitorID})

	return nil
}

// TopLiked 点赞排行，并尝试从数据库补全文章标题（容错）
func (s *StatsService) TopLiked(n int) ([]RankedArticle, error) {
	list, err := s.store.TopLiked(int64(n))
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		for i := range list {
			var art models.Article
			if err := s.audit.Where("slug = ?", list[i].Slug).First(&art).Error; err == nil {
				list[i].Title = art.Title
			}
		}
	}
	return list, nil
}
