package transport

import (
	"net/http"

	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimitFetcher 토큰 버킷 방식으로 초당 요청 수를 제한하는 데코레이터입니다.
//
// 요청은 토큰을 얻을 때까지 대기하며, 대기 중 Context가 취소되면 네트워크 요청 없이 에러를 반환합니다.
// rate.Limiter는 동시성에 안전하므로 여러 고루틴이 하나의 클라이언트를 공유해도 됩니다.
type RateLimitFetcher struct {
	delegate Fetcher

	limiter *rate.Limiter
}

var _ Fetcher = (*RateLimitFetcher)(nil)

// NewRateLimitFetcher 새로운 RateLimitFetcher 인스턴스를 생성합니다.
//
// 매개변수:
//   - rps: 초당 허용 요청 수 (0 이하이면 제한 없이 delegate를 그대로 반환)
//   - burst: 순간적으로 허용할 최대 요청 수 (1 미만이면 1로 보정)
func NewRateLimitFetcher(delegate Fetcher, rps float64, burst int) Fetcher {
	if rps <= 0 {
		return delegate
	}
	if burst < 1 {
		burst = 1
	}

	return &RateLimitFetcher{
		delegate: delegate,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Do 토큰을 획득한 뒤 다음 Fetcher로 요청을 전달합니다.
func (f *RateLimitFetcher) Do(req *http.Request) (*http.Response, error) {
	if err := f.limiter.Wait(req.Context()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "요청 속도 제한 대기 중 요청이 취소되었습니다")
	}

	return f.delegate.Do(req)
}
