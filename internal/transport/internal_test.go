package transport

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Gluon secret")
	h.Set("Content-Type", "application/json")

	masked := redactHeaders(h)

	assert.Equal(t, "***", masked.Get("Authorization"))
	assert.Equal(t, "application/json", masked.Get("Content-Type"))
	assert.Equal(t, "Gluon secret", h.Get("Authorization"), "원본 헤더는 변경되지 않아야 합니다")
	assert.Nil(t, redactHeaders(nil))
}

func TestRedactURL(t *testing.T) {
	tests := []struct {
		name     string
		rawURL   string
		contains []string
		excludes []string
	}{
		{
			name:     "민감한 쿼리 파라미터",
			rawURL:   "https://cloud.test/3/x?server_key=abc&page=1",
			contains: []string{"server_key=" + redactedValue, "page=1"},
			excludes: []string{"abc"},
		},
		{
			name:     "사용자 정보",
			rawURL:   "https://user:pw@cloud.test/3/x",
			contains: []string{"user:" + redactedValue},
			excludes: []string{"pw@"},
		},
		{
			name:     "마스킹 대상 없음",
			rawURL:   "https://cloud.test/3/data/enterprise/object/a",
			contains: []string{"https://cloud.test/3/data/enterprise/object/a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.rawURL)
			require.NoError(t, err)

			got := redactURL(u)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, got, s)
			}
		})
	}

	assert.Empty(t, redactURL(nil))
}

func TestIsSensitiveKey(t *testing.T) {
	assert.True(t, isSensitiveKey("API_KEY"))
	assert.True(t, isSensitiveKey("refresh_token"))
	assert.True(t, isSensitiveKey("my_secret"))
	assert.False(t, isSensitiveKey("page"))
	assert.False(t, isSensitiveKey("title"))
}

func TestPeekBody(t *testing.T) {
	head, rest := peekBody(io.NopCloser(strings.NewReader("0123456789")), 4)
	assert.Equal(t, "0123", string(head))

	all, err := io.ReadAll(rest)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(all))

	head, rest = peekBody(nil, 4)
	assert.Nil(t, head)
	assert.Nil(t, rest)
}

func TestHTTPFetcher_Options(t *testing.T) {
	assert.Zero(t, NewHTTPFetcher().Client().Timeout, "타임아웃을 지정하지 않으면 제한이 없어야 합니다")
	assert.Equal(t, 3*time.Second, NewHTTPFetcher(WithTimeout(3*time.Second)).Client().Timeout)
	assert.Zero(t, NewHTTPFetcher(WithTimeout(-1)).Client().Timeout)

	custom := &http.Client{Timeout: time.Minute}
	h := NewHTTPFetcher(WithHTTPClient(custom), WithTimeout(time.Second))
	assert.Equal(t, time.Second, h.Client().Timeout)
	assert.Equal(t, time.Minute, custom.Timeout, "전달된 클라이언트는 변경되지 않아야 합니다")
}

func TestHTTPStatusError_Error(t *testing.T) {
	err := &HTTPStatusError{StatusCode: 404, Status: "404 Not Found", URL: "https://x", Body: "nope"}
	assert.Equal(t, "HTTP 404 (404 Not Found) URL: https://x, Body: nope", err.Error())
}
