package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"reweightapp/models"
	"reweightapp/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// fakeEngagementStore 内存版 EngagementStore，行为对齐 Redis 实现
type fakeEngagementStore struct {
	counters map[string]map[string]int64
	sets     map[string]map[string]map[string]bool
	calls    int
	err      error
}

func newFakeStore() *fakeEngagementStore {
	return &fakeEngagementStore{
		counters: make(map[string]map[string]int64),
		sets:     make(map[string]map[string]map[string]bool),
	}
}

func (f *fakeEngagementStore) hasRecord(slug string) bool {
	_, ok := f.counters[slug]
	return ok
}

func (f *fakeEngagementStore) EnsureRecord(slug string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	if _, ok := f.counters[slug]; !ok {
		f.counters[slug] = map[string]int64{"views": 0, "likes": 0}
	}
	return nil
}

func (f *fakeEngagementStore) Counts(slug string) (models.ArticleStats, error) {
	f.calls++
	if f.err != nil {
		return models.ArticleStats{}, f.err
	}
	c := f.counters[slug]
	return models.ArticleStats{Views: c["views"], Likes: c["likes"]}, nil
}

func (f *fakeEngagementStore) IsMember(slug, set, visitorID string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.sets[slug][set][visitorID], nil
}

func (f *fakeEngagementStore) AddMember(slug, set, visitorID string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	if f.sets[slug] == nil {
		f.sets[slug] = make(map[string]map[string]bool)
	}
	if f.sets[slug][set] == nil {
		f.sets[slug][set] = make(map[string]bool)
	}
	if f.sets[slug][set][visitorID] {
		return false, nil
	}
	f.sets[slug][set][visitorID] = true
	return true, nil
}

func (f *fakeEngagementStore) IncrViews(slug string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.counters[slug]["views"]++
	return nil
}

func (f *fakeEngagementStore) IncrLikes(slug string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.counters[slug]["likes"]++
	return nil
}

func (f *fakeEngagementStore) TopLiked(n int64) ([]services.RankedArticle, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []services.RankedArticle{}, nil
}

type fakeSubscriptionStore struct {
	subs map[string]models.Subscription
	err  error
}

func newFakeSubscriptionStore() *fakeSubscriptionStore {
	return &fakeSubscriptionStore{subs: make(map[string]models.Subscription)}
}

func (f *fakeSubscriptionStore) FindByEmail(email string) (*models.Subscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	if sub, ok := f.subs[email]; ok {
		return &sub, nil
	}
	return nil, nil
}

func (f *fakeSubscriptionStore) Create(sub *models.Subscription) error {
	if f.err != nil {
		return f.err
	}
	f.subs[sub.Email] = *sub
	return nil
}

type fakeMailer struct {
	sent []services.Notification
	err  error
}

func (f *fakeMailer) SendNotification(n services.Notification) error {
	f.sent = append(f.sent, n)
	return f.err
}

type testEnv struct {
	router *gin.Engine
	store  *fakeEngagementStore
	subs   *fakeSubscriptionStore
	mailer *fakeMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		store:  newFakeStore(),
		subs:   newFakeSubscriptionStore(),
		mailer: &fakeMailer{},
	}

	statsSvc := services.NewStatsService(env.store, nil, nil)
	subsSvc := services.NewSubscriptionService(env.subs, env.mailer)
	Setup(statsSvc, subsSvc, env.mailer)

	r := gin.New()
	r.GET("/api/stats", GetArticleStats)
	r.POST("/api/stats", PostArticleStats)
	r.GET("/api/stats/top", GetTopArticles)
	r.POST("/api/subscribe", Subscribe)
	r.POST("/api/question", AskQuestion)
	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	resp := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func visitorHeaders(ip, ua string) map[string]string {
	return map[string]string{"X-Forwarded-For": ip, "User-Agent": ua}
}
