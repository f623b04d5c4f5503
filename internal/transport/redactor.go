package transport

import (
	"net/http"
	"net/url"
	"slices"
	"strings"
)

const redactedValue = "xxxxx"

var (
	// sensitiveExactKeys 값이 그대로 로그에 남으면 안 되는 쿼리 파라미터 이름
	sensitiveExactKeys = []string{
		"token", "auth", "key", "secret", "pass", "password", "signature",
		"access_token", "api_key", "server_key", "client_secret", "refresh_token",
	}

	sensitiveSuffixes = []string{
		"_token", "_secret", "_key", "_password",
	}

	sensitiveHeaders = []string{
		"Authorization", "Proxy-Authorization", "Cookie", "Set-Cookie",
	}
)

// redactHeaders 민감한 헤더 값을 마스킹한 복사본을 반환합니다. 원본은 변경되지 않습니다.
func redactHeaders(h http.Header) http.Header {
	if h == nil {
		return nil
	}

	masked := h.Clone()
	for _, key := range sensitiveHeaders {
		if masked.Get(key) != "" {
			masked.Set(key, "***")
		}
	}

	return masked
}

// redactURL URL에 포함된 사용자 정보와 민감한 쿼리 파라미터를 마스킹한 문자열을 반환합니다.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	ru := *u

	if u.User != nil {
		if _, has := u.User.Password(); has {
			ru.User = url.UserPassword(u.User.Username(), redactedValue)
		} else if u.User.Username() != "" {
			ru.User = url.User(redactedValue)
		}
	}

	if u.RawQuery != "" {
		query := ru.Query()
		for key := range query {
			if isSensitiveKey(key) {
				query.Set(key, redactedValue)
			}
		}
		ru.RawQuery = query.Encode()
	}

	return ru.String()
}

func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)

	if slices.Contains(sensitiveExactKeys, lowerKey) {
		return true
	}

	for _, suffix := range sensitiveSuffixes {
		if strings.HasSuffix(lowerKey, suffix) {
			return true
		}
	}

	return false
}
