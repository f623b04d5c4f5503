package transport

import (
	"errors"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
)

const (
	// defaultMaxBytes 응답 본문의 기본 최대 크기 (10MB)
	defaultMaxBytes = 10 * 1024 * 1024

	// NoLimit 응답 본문 크기를 제한하지 않음을 나타냅니다.
	NoLimit = -1
)

// maxBytesReader http.MaxBytesReader가 반환하는 에러를 AppError로 변환하는 래퍼입니다.
type maxBytesReader struct {
	rc    io.ReadCloser
	limit int64
}

func (r *maxBytesReader) Read(p []byte) (int, error) {
	n, err := r.rc.Read(p)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return n, newErrResponseBodyTooLarge(r.limit)
		}
	}
	return n, err
}

func (r *maxBytesReader) Close() error {
	return r.rc.Close()
}

// MaxBytesFetcher 응답 본문의 크기를 제한하는 데코레이터입니다.
//
// Content-Length 헤더가 제한을 초과하면 본문을 읽지 않고 즉시 에러를 반환하며,
// 헤더가 없는 경우에는 읽는 도중 제한을 넘는 순간 에러를 반환합니다.
type MaxBytesFetcher struct {
	delegate Fetcher
	limit    int64
}

var _ Fetcher = (*MaxBytesFetcher)(nil)

// NewMaxBytesFetcher 새로운 MaxBytesFetcher를 생성합니다.
//
// 매개변수:
//   - limit: 최대 바이트 수 (NoLimit이면 delegate를 그대로 반환, 0 이하이면 기본값 10MB)
func NewMaxBytesFetcher(delegate Fetcher, limit int64) Fetcher {
	if limit == NoLimit {
		return delegate
	}
	if limit <= 0 {
		limit = defaultMaxBytes
	}

	return &MaxBytesFetcher{
		delegate: delegate,
		limit:    limit,
	}
}

func (f *MaxBytesFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if resp.ContentLength > f.limit {
		drainAndCloseBody(resp.Body)
		return nil, apperrors.Newf(apperrors.ExecutionFailed, "응답 본문의 크기(%d 바이트)가 허용된 최대 크기(%d 바이트)를 초과했습니다", resp.ContentLength, f.limit)
	}

	if resp.Body != nil {
		resp.Body = &maxBytesReader{
			rc:    http.MaxBytesReader(nil, resp.Body, f.limit),
			limit: f.limit,
		}
	}

	return resp, nil
}

func newErrResponseBodyTooLarge(limit int64) error {
	return apperrors.Newf(apperrors.ExecutionFailed, "응답 본문의 크기가 허용된 최대 크기(%d 바이트)를 초과했습니다", limit)
}
