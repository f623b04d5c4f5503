package transport

import (
	"net/http"
)

// UserAgentFetcher 요청에 SDK 식별용 User-Agent 헤더를 설정하는 데코레이터입니다.
//
// 요청에 이미 User-Agent가 설정되어 있으면 그 값을 그대로 유지합니다.
type UserAgentFetcher struct {
	delegate Fetcher

	userAgent string
}

var _ Fetcher = (*UserAgentFetcher)(nil)

// NewUserAgentFetcher 새로운 UserAgentFetcher 인스턴스를 생성합니다.
func NewUserAgentFetcher(delegate Fetcher, userAgent string) *UserAgentFetcher {
	return &UserAgentFetcher{
		delegate:  delegate,
		userAgent: userAgent,
	}
}

// Do User-Agent가 비어 있는 경우에만 복제된 요청에 값을 설정하고 다음 Fetcher로 전달합니다.
func (f *UserAgentFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" || f.userAgent == "" {
		return f.delegate.Do(req)
	}

	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("User-Agent", f.userAgent)

	return f.delegate.Do(clonedReq)
}
