package cloudlink

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/darkkaiser/cloudlink-sdk/internal/transport"
	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
)

// apiVersionPath 모든 REST 경로 앞에 붙는 API 버전 경로
const apiVersionPath = "/3"

// LogLevel SDK가 HTTP 요청/응답에 대해 남길 로그의 상세 수준입니다.
type LogLevel int

const (
	// LogLevelNone 로그를 남기지 않습니다. (기본값)
	LogLevelNone LogLevel = iota

	// LogLevelBasic 메서드, URL, 상태 코드, 소요 시간만 기록합니다.
	LogLevelBasic

	// LogLevelHeaders Basic에 더해 요청/응답 헤더를 기록합니다. (Authorization은 마스킹)
	LogLevelHeaders

	// LogLevelFull Headers에 더해 요청/응답 본문을 기록합니다.
	LogLevelFull
)

var logLevelNames = map[LogLevel]string{
	LogLevelNone:    "none",
	LogLevelBasic:   "basic",
	LogLevelHeaders: "headers",
	LogLevelFull:    "full",
}

func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// LogLevelFromString 문자열을 LogLevel로 변환합니다.
//
// none/basic/headers/full 외에 java.util.logging 계열의 레벨 이름도 허용합니다.
//
//   - finest, finer, fine, all: Full
//   - config, info: Headers
//   - warning, severe: Basic
//   - off: None
//
// 대소문자는 구분하지 않으며, 빈 문자열은 None으로 처리합니다.
func LogLevelFromString(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off":
		return LogLevelNone, nil
	case "basic", "warning", "severe":
		return LogLevelBasic, nil
	case "headers", "config", "info":
		return LogLevelHeaders, nil
	case "full", "fine", "finer", "finest", "all":
		return LogLevelFull, nil
	}

	return LogLevelNone, apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 로그 레벨입니다: '%s'", s)
}

func (l LogLevel) verbosity() transport.Verbosity {
	switch l {
	case LogLevelBasic:
		return transport.VerbosityBasic
	case LogLevelHeaders:
		return transport.VerbosityHeaders
	case LogLevelFull:
		return transport.VerbosityFull
	default:
		return transport.VerbosityNone
	}
}

// Config CloudLink 클라이언트 생성에 필요한 설정입니다.
//
// New()에 전달된 값은 복사되어 보관되므로, 이후 원본을 수정해도 생성된 클라이언트에는 영향을 주지 않습니다.
type Config struct {
	// Hostname CloudLink 서비스 호스트 (예: "cloud.gluonhq.com"). 프로토콜이 없으면 https://가 붙습니다.
	Hostname string `json:"hostname" validate:"required,notblank_if_set"`

	// ServerKey CloudLink 대시보드에서 발급받은 서버 키
	ServerKey string `json:"server_key" validate:"required"`

	// LogLevel HTTP 요청/응답 로그의 상세 수준
	LogLevel LogLevel `json:"log_level" validate:"gte=0,lte=3"`

	// Timeout 요청 전체에 대한 타임아웃 (0이면 HTTPClient의 설정을 따르며, HTTPClient도 없으면 제한 없음)
	Timeout time.Duration `json:"timeout" validate:"gte=0"`

	// MaxResponseBytes 응답 본문의 최대 크기 (0: 기본값 10MB, -1: 제한 없음)
	MaxResponseBytes int64 `json:"max_response_bytes" validate:"gte=-1"`

	// RateLimit 클라이언트 측에서 허용할 초당 요청 수 (0이면 제한 없음)
	RateLimit float64 `json:"rate_limit" validate:"gte=0"`

	// RateBurst 순간적으로 허용할 최대 요청 수
	RateBurst int `json:"rate_burst" validate:"gte=0"`

	// UserAgent 요청에 설정할 User-Agent (빈 문자열이면 SDK 기본값)
	UserAgent string `json:"user_agent"`

	// HTTPClient 호출자가 구성한 HTTP 클라이언트 (프록시, TLS 설정 등)
	HTTPClient *http.Client `json:"-" validate:"-"`
}

// normalizeHostname 프로토콜이 없는 호스트에 https://를 붙이고 끝의 슬래시를 제거합니다.
func normalizeHostname(hostname string) string {
	h := strings.TrimSpace(hostname)
	lower := strings.ToLower(h)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		h = "https://" + h
	}
	return strings.TrimRight(h, "/")
}

// baseURL 모든 REST 경로의 기준이 되는 URL을 반환합니다.
func (c Config) baseURL() string {
	return normalizeHostname(c.Hostname) + apiVersionPath
}

func (c Config) transportConfig() transport.Config {
	return transport.Config{
		ServerKey:        c.ServerKey,
		UserAgent:        c.UserAgent,
		Timeout:          c.Timeout,
		HTTPClient:       c.HTTPClient,
		RateLimit:        c.RateLimit,
		RateBurst:        c.RateBurst,
		MaxResponseBytes: c.MaxResponseBytes,
		Verbosity:        c.LogLevel.verbosity(),
	}
}
