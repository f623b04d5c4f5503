package transport

import (
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
)

// StatusCodeFetcher 2xx가 아닌 응답을 *HTTPStatusError로 변환하는 데코레이터입니다.
//
// 에러로 변환된 응답의 본문은 (MaxBytesFetcher의 제한 안에서) 전부 에러에 담기고 정리(drain & close)됩니다.
type StatusCodeFetcher struct {
	delegate Fetcher
}

var _ Fetcher = (*StatusCodeFetcher)(nil)

// NewStatusCodeFetcher 새로운 StatusCodeFetcher 인스턴스를 생성합니다.
func NewStatusCodeFetcher(delegate Fetcher) *StatusCodeFetcher {
	return &StatusCodeFetcher{
		delegate: delegate,
	}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if statusErr := checkResponseStatus(resp); statusErr != nil {
		drainAndCloseBody(resp.Body)
		return nil, statusErr
	}

	return resp, nil
}

// checkResponseStatus 응답 상태 코드가 2xx인지 검증하고, 아니라면 *HTTPStatusError를 반환합니다.
//
// 주의사항:
//   - 에러를 반환한 경우 resp.Body는 일부가 읽힌 상태이므로 호출자가 즉시 닫아야 합니다.
func checkResponseStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	urlStr := ""
	if resp.Request != nil && resp.Request.URL != nil {
		urlStr = redactURL(resp.Request.URL)
	}

	var body string
	if resp.Body != nil {
		// 크기 제한에 걸리면 그때까지 읽은 내용만 담습니다.
		b, _ := io.ReadAll(resp.Body)
		body = string(b)
	}

	errType := StatusErrorType(resp.StatusCode)

	return &HTTPStatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		URL:        urlStr,
		Header:     redactHeaders(resp.Header),
		Body:       body,
		Cause:      apperrors.Newf(errType, "CloudLink 서비스가 에러 응답을 반환했습니다 (상태 코드: %s)", resp.Status),
	}
}

// StatusErrorType HTTP 상태 코드를 ErrorType으로 분류합니다.
//
//   - 400: InvalidInput
//   - 401: Unauthorized
//   - 403: Forbidden
//   - 404: NotFound
//   - 408, 429, 5xx: Unavailable
//   - 그 외: ExecutionFailed
func StatusErrorType(statusCode int) apperrors.ErrorType {
	switch statusCode {
	case http.StatusBadRequest:
		return apperrors.InvalidInput
	case http.StatusUnauthorized:
		return apperrors.Unauthorized
	case http.StatusForbidden:
		return apperrors.Forbidden
	case http.StatusNotFound:
		return apperrors.NotFound
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return apperrors.Unavailable
	}

	if statusCode >= 500 {
		return apperrors.Unavailable
	}

	return apperrors.ExecutionFailed
}
