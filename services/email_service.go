package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io/ioutil"
	"net/http"
	"strings"
	"time"
)

const (
	NotificationSubscription = "subscription"
	NotificationQuestion     = "question"
)

// Notification 运营通知的内容载体，Kind 决定模板分支。
// 只发运营通知，不给提交者发确认邮件（产品上有意关闭，勿私自恢复）
type Notification struct {
	Kind     string
	Email    string
	Question string
}

// Mailer 邮件发送契约，测试时用假实现替换
type Mailer interface {
	SendNotification(n Notification) error
}

// EmailService 调用 Resend HTTP API 发送邮件
type EmailService struct {
	APIKey      string
	BaseURL     string
	FromEmail   string
	NotifyEmail string
	Client      *http.Client
}

func NewEmailService(apiKey, baseURL, fromEmail, notifyEmail string) *EmailService {
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}
	return &EmailService{
		APIKey:      apiKey,
		BaseURL:     baseURL,
		FromEmail:   fromEmail,
		NotifyEmail: notifyEmail,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *EmailService) SendNotification(n Notification) error {
	if s.APIKey == "" {
		return errors.New("email service is not configured")
	}

	subject, htmlBody, textBody, err := buildNotification(n)
	if err != nil {
		return err
	}

	payload := map[string]interface{}{
		"from":    s.FromEmail,
		"to":      s.NotifyEmail,
		"subject": subject,
		"html":    htmlBody,
		"text":    textBody,
	}

	b, _ := json.Marshal(payload)
	req, err := http.NewRequest("POST", s.BaseURL+"/emails", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := ioutil.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("resend returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// buildNotification 两类通知共用的模板构造，用户输入先做 HTML 转义再进正文
func buildNotification(n Notification) (subject, htmlBody, textBody string, err error) {
	switch n.Kind {
	case NotificationSubscription:
		subject = "New Subscription - re:weight."
		escapedEmail := html.EscapeString(n.Email)
		htmlBody = fmt.Sprintf(`<html><body style="font-family: sans-serif; color: #000;">
<h1>New Subscription</h1>
<p>Someone has subscribed to re:weight.</p>
<p><strong>Email:</strong> %s</p>
</body></html>`, escapedEmail)
		textBody = fmt.Sprintf("New Subscription - re:weight.\n\nSomeone has subscribed to re:weight.\n\nEmail: %s", n.Email)
		return subject, htmlBody, textBody, nil

	case NotificationQuestion:
		subject = fmt.Sprintf("New Question from %s", n.Email)
		escapedEmail := html.EscapeString(n.Email)
		escapedQuestion := strings.ReplaceAll(html.EscapeString(n.Question), "\n", "<br>")
		htmlBody = fmt.Sprintf(`<html><body style="font-family: sans-serif; color: #000;">
<h1>New Question</h1>
<p><strong>From:</strong> %s</p>
<div style="padding: 20px; background-color: #f5f5f5;"><p>%s</p></div>
<p style="color: #999;">You can reply directly to this email to respond to %s</p>
</body></html>`, escapedEmail, escapedQuestion, escapedEmail)
		textBody = fmt.Sprintf("New Question\n\nFrom: %s\n\nQuestion:\n%s\n\n---\nYou can reply directly to this email to respond to %s", n.Email, n.Question, n.Email)
		return subject, htmlBody, textBody, nil
	}

	return "", "", "", fmt.Errorf("unknown notification kind: %q", n.Kind)
}
