package transport

import (
	"net/http"
)

// authScheme CloudLink 서버 키 인증에 사용되는 Authorization 헤더 스킴
const authScheme = "Gluon"

// AuthFetcher 모든 요청에 서버 키 기반 Authorization 헤더를 추가하는 데코레이터입니다.
type AuthFetcher struct {
	delegate Fetcher

	serverKey string
}

var _ Fetcher = (*AuthFetcher)(nil)

// NewAuthFetcher 새로운 AuthFetcher 인스턴스를 생성합니다.
func NewAuthFetcher(delegate Fetcher, serverKey string) *AuthFetcher {
	return &AuthFetcher{
		delegate:  delegate,
		serverKey: serverKey,
	}
}

// Do 원본 요청을 복제한 뒤 Authorization 헤더를 설정하여 다음 Fetcher로 전달합니다.
// 원본 요청 객체는 변경하지 않습니다.
func (f *AuthFetcher) Do(req *http.Request) (*http.Response, error) {
	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("Authorization", authScheme+" "+f.serverKey)

	return f.delegate.Do(clonedReq)
}
