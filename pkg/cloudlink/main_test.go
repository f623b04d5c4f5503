package cloudlink

import (
	"testing"

	"github.com/darkkaiser/cloudlink-sdk/internal/transport"
	"github.com/darkkaiser/cloudlink-sdk/internal/transport/mocks"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// httptest 서버 종료 직후 정리 중인 Keep-Alive 커넥션 고루틴
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

const (
	testServerKey = "test-server-key"
	testBaseURL   = "https://cloud.test/3"
)

// newMockClient 네트워크 대신 MockHTTPFetcher를 사용하는 클라이언트를 생성합니다.
// 인증, 상태 코드 검증 등 실제 데코레이터 체인은 그대로 적용됩니다.
func newMockClient(t *testing.T) (*Client, *mocks.MockHTTPFetcher) {
	t.Helper()

	m := mocks.NewMockHTTPFetcher()
	cfg := Config{Hostname: "cloud.test", ServerKey: testServerKey}

	return newClient(cfg, transport.Decorate(m, cfg.transportConfig())), m
}

func objectURL(id, action string) string {
	return testBaseURL + objectPath(id, action)
}

func listURL(listID, action, objectID string) string {
	return testBaseURL + listPath(listID, action, objectID)
}

