package services

import (
	"net/http"
	"regexp"
	"strings"
)

var visitorIDPattern = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// VisitorID 从请求头推导访客标识，仅用于互动去重，不是身份认证。
// 共享代理/NAT 会合并标识，UA 变化会产生新标识，属于接受的误差。
func VisitorID(r *http.Request) string {
	ip := ""
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ip = strings.Split(forwarded, ",")[0]
	} else if realIP := r.Header.Get("X-Real-Ip"); realIP != "" {
		ip = realIP
	} else {
		ip = "unknown"
	}

	ua := r.Header.Get("User-Agent")
	if len(ua) > 50 {
		ua = ua[:50]
	}

	return visitorIDPattern.ReplaceAllString(ip+"-"+ua, "")
}
