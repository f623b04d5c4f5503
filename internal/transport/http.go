package transport

import (
	"net/http"
	"time"
)

// HTTPFetcher net/http 클라이언트를 감싸는 데코레이터 체인의 가장 안쪽 구현체입니다.
type HTTPFetcher struct {
	client *http.Client
}

// Option HTTPFetcher의 설정을 변경하기 위한 함수 타입입니다.
type Option func(*HTTPFetcher)

// WithTimeout HTTP 요청 전체(연결, 헤더, 본문 읽기)에 대한 타임아웃을 설정합니다.
//
// 주의사항:
//   - 0 이하의 값을 설정하면 타임아웃이 비활성화됩니다 (Context에 의해서만 중단됨).
//   - WithHTTPClient와 함께 사용하면 전달된 클라이언트의 복사본에 적용됩니다.
func WithTimeout(timeout time.Duration) Option {
	return func(h *HTTPFetcher) {
		if timeout < 0 {
			timeout = 0
		}
		h.client.Timeout = timeout
	}
}

// WithHTTPClient 호출자가 구성한 *http.Client를 사용하도록 설정합니다.
//
// 전달된 클라이언트는 얕은 복사되므로, 이후의 옵션 적용이 원본에 영향을 주지 않습니다.
func WithHTTPClient(client *http.Client) Option {
	return func(h *HTTPFetcher) {
		if client == nil {
			return
		}
		c := *client
		h.client = &c
	}
}

// NewHTTPFetcher 새로운 HTTPFetcher를 생성합니다.
//
// WithTimeout을 지정하지 않으면 타임아웃이 없으며, 요청은 Context에 의해서만 중단됩니다.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	h := &HTTPFetcher{
		client: &http.Client{},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Do 실제 네트워크 요청을 실행합니다.
func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

// Client 내부에서 사용하는 *http.Client를 반환합니다.
func (h *HTTPFetcher) Client() *http.Client {
	return h.client
}
