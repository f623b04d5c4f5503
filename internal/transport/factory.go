package transport

import (
	"net/http"
	"time"
)

// Config 전송 계층 데코레이터 체인을 구성하기 위한 설정입니다.
type Config struct {
	// ServerKey Authorization 헤더에 사용할 CloudLink 서버 키
	ServerKey string

	// UserAgent 요청에 설정할 User-Agent (빈 문자열이면 설정하지 않음)
	UserAgent string

	// Timeout 요청 전체에 대한 타임아웃 (0이면 HTTPClient의 설정을 따르며, HTTPClient도 없으면 제한 없음)
	Timeout time.Duration

	// HTTPClient 호출자가 구성한 HTTP 클라이언트 (nil이면 기본 클라이언트 생성)
	HTTPClient *http.Client

	// RateLimit 초당 허용 요청 수 (0이면 제한 없음)
	RateLimit float64

	// RateBurst 순간적으로 허용할 최대 요청 수
	RateBurst int

	// MaxResponseBytes 응답 본문의 최대 크기 (0: 기본값 10MB, NoLimit: 제한 없음)
	MaxResponseBytes int64

	// Verbosity 요청/응답 로깅 수준
	Verbosity Verbosity
}

// New 설정에 따라 데코레이터 체인을 조립하여 하나의 Fetcher로 반환합니다.
//
// 조립 순서 (바깥쪽 -> 안쪽):
//
//	UserAgent -> Auth -> RateLimit -> Logging -> StatusCode -> MaxBytes -> HTTP
//
// Logging이 StatusCode보다 바깥에 있으므로, 2xx가 아닌 응답도 실패 로그로 기록됩니다.
func New(cfg Config) Fetcher {
	var opts []Option
	if cfg.HTTPClient != nil {
		opts = append(opts, WithHTTPClient(cfg.HTTPClient))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, WithTimeout(cfg.Timeout))
	}

	var f Fetcher = NewHTTPFetcher(opts...)

	return Decorate(f, cfg)
}

// Decorate 주어진 base Fetcher를 설정에 따른 데코레이터 체인으로 감쌉니다.
//
// 테스트에서 실제 네트워크 대신 Mock Fetcher를 base로 사용할 때 활용합니다.
func Decorate(base Fetcher, cfg Config) Fetcher {
	f := NewMaxBytesFetcher(base, cfg.MaxResponseBytes)
	f = NewStatusCodeFetcher(f)
	f = NewLoggingFetcher(f, cfg.Verbosity)
	f = NewRateLimitFetcher(f, cfg.RateLimit, cfg.RateBurst)
	f = NewAuthFetcher(f, cfg.ServerKey)
	f = NewUserAgentFetcher(f, cfg.UserAgent)

	return f
}
