package services

import (
	"time"

	"reweightapp/models"

	"github.com/go-redis/redis"
)

const (
	SetViewedBy = "viewed_by"
	SetLikedBy  = "liked_by"

	rankKey = "rank:article:likes"
)

// RankedArticle 点赞排行中的一项
type RankedArticle struct {
	Slug  string `json:"slug"`
	Likes int64  `json:"likes"`
	Rank  int    `json:"rank"`
	Title string `json:"title,omitempty"`
}

// EngagementStore 定义互动记录的存取契约，业务逻辑不依赖具体存储实现
type EngagementStore interface {
	// EnsureRecord 首次引用 slug 时落一条零值记录，幂等
	EnsureRecord(slug string) error
	// Counts 读取聚合计数，记录不存在时返回全零
	Counts(slug string) (models.ArticleStats, error)
	// IsMember 判断访客是否已计入指定去重集合
	IsMember(slug, set, visitorID string) (bool, error)
	// AddMember 原子加入去重集合，返回是否为新成员。
	// 同一访客并发请求中只有一个返回 true，计数以此为准，不会重复加一
	AddMember(slug, set, visitorID string) (bool, error)
	// IncrViews 浏览数加一
	IncrViews(slug string) error
	// IncrLikes 点赞数加一并同步更新点赞排行
	IncrLikes(slug string) error
	// TopLiked 返回点赞排行前 n 的 slug 与点赞数
	TopLiked(n int64) ([]RankedArticle, error)
}

type redisEngagementStore struct {
	rdb *redis.Client
}

// NewRedisEngagementStore 基于 Redis 的互动存储。
// 键空间：article:<slug>:views/likes 计数，article:<slug>:viewed_by/liked_by 去重集合，
// article:<slug>:comments 评论列表，article:<slug>:updated_at 最后变更时间
func NewRedisEngagementStore(rdb *redis.Client) EngagementStore {
	return &redisEngagementStore{rdb: rdb}
}

func statKey(slug, suffix string) string {
	return "article:" + slug + ":" + suffix
}

func (s *redisEngagementStore) EnsureRecord(slug string) error {
	if err := s.rdb.SetNX(statKey(slug, "views"), 0, 0).Err(); err != nil {
		return err
	}
	if err := s.rdb.SetNX(statKey(slug, "likes"), 0, 0).Err(); err != nil {
		return err
	}
	return s.rdb.SetNX(statKey(slug, "updated_at"), time.Now().Format(time.RFC3339), 0).Err()
}

func (s *redisEngagementStore) Counts(slug string) (models.ArticleStats, error) {
	var stats models.ArticleStats

	views, err := s.rdb.Get(statKey(slug, "views")).Int64()
	if err != nil && err != redis.Nil {
		return stats, err
	}
	likes, err := s.rdb.Get(statKey(slug, "likes")).Int64()
	if err != nil && err != redis.Nil {
		return stats, err
	}
	comments, err := s.rdb.LLen(statKey(slug, "comments")).Result()
	if err != nil && err != redis.Nil {
		return stats, err
	}

	stats.Views = views
	stats.Likes = likes
	stats.Comments = comments
	return stats, nil
}

func (s *redisEngagementStore) IsMember(slug, set, visitorID string) (bool, error) {
	return s.rdb.SIsMember(statKey(slug, set), visitorID).Result()
}

func (s *redisEngagementStore) AddMember(slug, set, visitorID string) (bool, error) {
	added, err := s.rdb.SAdd(statKey(slug, set), visitorID).Result()
	if err != nil {
		return false, err
	}
	return added > 0, nil
}

func (s *redisEngagementStore) IncrViews(slug string) error {
	pipe := s.rdb.TxPipeline()
	pipe.Incr(statKey(slug, "views"))
	pipe.Set(statKey(slug, "updated_at"), time.Now().Format(time.RFC3339), 0)
	_, err := pipe.Exec()
	return err
}

func (s *redisEngagementStore) IncrLikes(slug string) error {
	// INCR + ZINCRBY 走同一个 pipeline，计数与排行保持同步
	pipe := s.rdb.TxPipeline()
	pipe.Incr(statKey(slug, "likes"))
	pipe.ZIncrBy(rankKey, 1, slug)
	pipe.Set(statKey(slug, "updated_at"), time.Now().Format(time.RFC3339), 0)
	_, err := pipe.Exec()
	return err
}

func (s *redisEngagementStore) TopLiked(n int64) ([]RankedArticle, error) {
	zres, err := s.rdb.ZRevRangeWithScores(rankKey, 0, n-1).Result()
	if err != nil {
		if err == redis.Nil {
			return []RankedArticle{}, nil
		}
		return nil, err
	}

	list := make([]RankedArticle, 0, len(zres))
	for idx, z := range zres {
		slug, _ := z.Member.(string)
		list = append(list, RankedArticle{Slug: slug, Likes: int64(z.Score), Rank: idx + 1})
	}
	return list, nil
}
