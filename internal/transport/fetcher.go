// Package transport CloudLink REST 호출에 사용되는 HTTP 전송 계층을 제공합니다.
//
// 모든 기능(인증 헤더, User-Agent, 요청 속도 제한, 로깅, 상태 코드 검증, 응답 크기 제한)은
// Fetcher 인터페이스를 구현하는 데코레이터로 분리되어 있으며, New()가 이를 하나의 체인으로 조립합니다.
//
//	UserAgent -> Auth -> RateLimit -> Logging -> StatusCode -> MaxBytes -> HTTP
package transport

import (
	"net/http"
)

// component 전송 계층 로깅용 컴포넌트 이름
const component = "cloudlink.transport"

// Fetcher HTTP 요청을 수행하는 핵심 인터페이스입니다.
//
// 구현 시 주의사항:
//   - 반환된 응답 객체의 Body는 반드시 호출자가 닫아야 합니다.
//   - 에러가 발생한 경우 응답 객체는 nil입니다. 상태 코드 정보는 *HTTPStatusError로 전달됩니다.
//   - Context 취소 시 즉시 요청을 중단하고 적절한 에러를 반환해야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// FetcherFunc 일반 함수를 Fetcher로 사용할 수 있게 해주는 어댑터입니다.
type FetcherFunc func(req *http.Request) (*http.Response, error)

// Do f(req)를 호출합니다.
func (f FetcherFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}
