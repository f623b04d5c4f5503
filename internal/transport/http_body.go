package transport

import (
	"bytes"
	"io"
	"sync"
)

const (
	// maxDrainBytes 커넥션 재사용을 위해 버릴 응답 본문의 최대 크기
	maxDrainBytes = 64 * 1024

	// maxSnippetBytes 에러 메시지와 로그에 포함할 본문의 최대 크기
	maxSnippetBytes = 4 * 1024
)

var drainBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 32*1024)
		return &b
	},
}

// drainAndCloseBody 응답 본문을 일정 크기까지 읽어서 버린 뒤 닫습니다.
//
// 본문을 끝까지 읽지 않고 닫으면 Keep-Alive 커넥션이 재사용되지 않으므로,
// 에러 경로에서도 반드시 이 함수를 통해 본문을 정리합니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	defer body.Close()

	bufPtr := drainBufPool.Get().(*[]byte)
	defer drainBufPool.Put(bufPtr)

	_, _ = io.CopyBuffer(io.Discard, io.LimitReader(body, maxDrainBytes), *bufPtr)
}

// peekBody 본문의 앞부분(최대 limit 바이트)을 읽어 반환하고, 호출자가 본문 전체를 다시 읽을 수 있도록 재구성합니다.
//
// 반환값:
//   - []byte: 읽은 앞부분
//   - io.ReadCloser: 읽은 부분과 나머지를 이어 붙인 새 본문 (Close는 원본에 위임)
func peekBody(body io.ReadCloser, limit int64) ([]byte, io.ReadCloser) {
	if body == nil {
		return nil, nil
	}

	head, err := io.ReadAll(io.LimitReader(body, limit))
	if err != nil {
		head = nil
	}

	return head, struct {
		io.Reader
		io.Closer
	}{
		Reader: io.MultiReader(bytes.NewReader(head), body),
		Closer: body,
	}
}
