package transport

import (
	"fmt"
	"net/http"
)

// HTTPStatusError 2xx가 아닌 응답을 받았을 때 반환되는 에러입니다.
//
// 응답 본문과 (마스킹된) 헤더를 함께 담고 있어, 상위 계층이 서비스가 돌려준
// 에러 내용을 그대로 호출자에게 전달할 수 있습니다.
type HTTPStatusError struct {
	// StatusCode HTTP 상태 코드 (예: 404)
	StatusCode int

	// Status HTTP 상태 문자열 (예: "404 Not Found")
	Status string

	// URL 요청 URL (민감 정보 마스킹됨)
	URL string

	// Header 응답 헤더 (민감 정보 마스킹됨)
	Header http.Header

	// Body 응답 본문 (Error()에서는 앞부분 4KB만 표시됩니다)
	Body string

	// Cause 상태 코드에 따라 분류된 AppError
	Cause error
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		msg += fmt.Sprintf(" URL: %s", e.URL)
	}
	if e.Body != "" {
		body := e.Body
		if len(body) > maxSnippetBytes {
			body = body[:maxSnippetBytes] + "..."
		}
		msg += fmt.Sprintf(", Body: %s", body)
	}
	return msg
}

func (e *HTTPStatusError) Unwrap() error {
	return e.Cause
}
