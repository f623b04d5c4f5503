package transport

import (
	"bytes"
	"net/http"
	"time"

	applog "github.com/darkkaiser/cloudlink-sdk/pkg/log"
)

// Verbosity LoggingFetcher가 기록할 정보의 양을 결정합니다.
type Verbosity int

const (
	// VerbosityNone 아무것도 기록하지 않습니다.
	VerbosityNone Verbosity = iota

	// VerbosityBasic 메서드, URL, 상태 코드, 소요 시간을 기록합니다.
	VerbosityBasic

	// VerbosityHeaders Basic에 더해 (마스킹된) 요청/응답 헤더를 기록합니다.
	VerbosityHeaders

	// VerbosityFull Headers에 더해 요청/응답 본문(최대 4KB)을 기록합니다.
	VerbosityFull
)

// LoggingFetcher HTTP 요청의 처리 결과를 구조화된 로그로 남기는 데코레이터입니다.
//
// 성공한 요청은 Info, 실패한 요청은 Error 레벨로 기록합니다.
// Authorization 헤더와 민감한 쿼리 파라미터는 항상 마스킹됩니다.
type LoggingFetcher struct {
	delegate Fetcher

	verbosity Verbosity
}

var _ Fetcher = (*LoggingFetcher)(nil)

// NewLoggingFetcher 새로운 LoggingFetcher를 생성합니다.
// verbosity가 VerbosityNone이면 delegate를 그대로 반환합니다.
func NewLoggingFetcher(delegate Fetcher, verbosity Verbosity) Fetcher {
	if verbosity <= VerbosityNone {
		return delegate
	}

	return &LoggingFetcher{
		delegate:  delegate,
		verbosity: verbosity,
	}
}

func (f *LoggingFetcher) Do(req *http.Request) (*http.Response, error) {
	fields := applog.Fields{
		"method": req.Method,
		"url":    redactURL(req.URL),
	}

	if f.verbosity >= VerbosityHeaders {
		fields["request_headers"] = redactHeaders(req.Header)
	}
	if f.verbosity >= VerbosityFull && req.Body != nil && req.Body != http.NoBody {
		head, rest := peekBody(req.Body, maxSnippetBytes)
		req.Body = rest
		fields["request_body"] = string(head)
	}

	start := time.Now()
	resp, err := f.delegate.Do(req)
	fields["duration"] = time.Since(start).String()

	if err != nil {
		fields["error"] = err.Error()

		applog.WithComponentAndFields(component, fields).
			WithContext(req.Context()).
			Error("CloudLink 요청 실패: 요청 처리 중 에러가 발생했습니다")

		return resp, err
	}

	if resp != nil {
		fields["status"] = resp.Status
		fields["status_code"] = resp.StatusCode

		if f.verbosity >= VerbosityHeaders {
			fields["response_headers"] = redactHeaders(resp.Header)
		}
		if f.verbosity >= VerbosityFull && resp.Body != nil {
			head, rest := peekBody(resp.Body, maxSnippetBytes)
			resp.Body = rest
			fields["response_body"] = string(bytes.TrimSpace(head))
		}
	}

	applog.WithComponentAndFields(component, fields).
		WithContext(req.Context()).
		Info("CloudLink 요청 성공")

	return resp, nil
}
