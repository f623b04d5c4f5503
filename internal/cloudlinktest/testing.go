package cloudlinktest

import (
	"net/http/httptest"
	"testing"
)

// NewTestServer httptest 서버 위에서 가짜 CloudLink 서버를 시작합니다.
// 테스트가 끝나면 서버가 자동으로 종료됩니다.
//
//	fake, ts := cloudlinktest.NewTestServer(t, "server-key")
//	client, _ := cloudlink.New(cloudlink.Config{Hostname: ts.URL, ServerKey: "server-key"})
func NewTestServer(tb testing.TB, serverKey string, opts ...Option) (*Server, *httptest.Server) {
	tb.Helper()

	s := NewServer(serverKey, opts...)
	ts := httptest.NewServer(s)
	tb.Cleanup(ts.Close)

	return s, ts
}
