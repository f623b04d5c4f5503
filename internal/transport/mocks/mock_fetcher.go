// Package mocks 전송 계층(transport.Fetcher)을 대체하는 테스트용 구현체를 제공합니다.
package mocks

import (
	"bytes"
	"io"
	"net/http"
	"sync"

	"github.com/darkkaiser/cloudlink-sdk/internal/transport"
	"github.com/stretchr/testify/mock"
)

var _ transport.Fetcher = (*MockFetcher)(nil)
var _ transport.Fetcher = (*MockHTTPFetcher)(nil)

// MockFetcher testify/mock 기반의 Fetcher 구현체입니다.
type MockFetcher struct {
	mock.Mock
}

// NewMockFetcher 새로운 MockFetcher 인스턴스를 생성합니다.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

func (m *MockFetcher) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// NewMockResponse 지정된 본문과 상태 코드를 가진 응답 객체를 생성합니다.
func NewMockResponse(body string, statusCode int) *http.Response {
	return &http.Response{
		StatusCode:    statusCode,
		Status:        http.StatusText(statusCode),
		Body:          io.NopCloser(bytes.NewBufferString(body)),
		Header:        make(http.Header),
		ContentLength: int64(len(body)),
	}
}

// NewMockResponseWithJSON Content-Type이 application/json인 응답 객체를 생성합니다.
func NewMockResponseWithJSON(jsonBody string, statusCode int) *http.Response {
	resp := NewMockResponse(jsonBody, statusCode)
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

// RequestRecord MockHTTPFetcher가 기록한 요청 정보입니다.
type RequestRecord struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

type mockResponse struct {
	body       []byte
	statusCode int
}

// MockHTTPFetcher "METHOD URL" 단위로 미리 등록된 응답을 돌려주고, 모든 요청을 기록하는 Fetcher입니다.
//
// 등록되지 않은 요청에는 404 응답을 반환합니다. GetCallCount()로 네트워크 호출이
// 발생하지 않았음을 검증할 수 있습니다.
type MockHTTPFetcher struct {
	mu        sync.Mutex
	responses map[string]mockResponse
	errors    map[string]error
	requests  []RequestRecord
}

// NewMockHTTPFetcher 새로운 MockHTTPFetcher 인스턴스를 생성합니다.
func NewMockHTTPFetcher() *MockHTTPFetcher {
	return &MockHTTPFetcher{
		responses: make(map[string]mockResponse),
		errors:    make(map[string]error),
	}
}

func requestKey(method, url string) string {
	return method + " " + url
}

// SetResponse 지정된 요청에 대해 200 OK 응답을 등록합니다.
func (m *MockHTTPFetcher) SetResponse(method, url string, body []byte) {
	m.SetResponseWithStatus(method, url, body, http.StatusOK)
}

// SetResponseWithStatus 지정된 요청에 대해 응답 본문과 상태 코드를 등록합니다.
func (m *MockHTTPFetcher) SetResponseWithStatus(method, url string, body []byte, statusCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.responses[requestKey(method, url)] = mockResponse{body: body, statusCode: statusCode}
}

// SetError 지정된 요청에 대해 네트워크 에러를 등록합니다.
func (m *MockHTTPFetcher) SetError(method, url string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errors[requestKey(method, url)] = err
}

func (m *MockHTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	var bodyBytes []byte
	if req.Body != nil {
		var err error
		if bodyBytes, err = io.ReadAll(req.Body); err != nil {
			return nil, err
		}
		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	}

	url := req.URL.String()
	key := requestKey(req.Method, url)

	m.mu.Lock()
	m.requests = append(m.requests, RequestRecord{
		Method: req.Method,
		URL:    url,
		Header: req.Header.Clone(),
		Body:   bodyBytes,
	})
	err, hasErr := m.errors[key]
	resp, hasResp := m.responses[key]
	m.mu.Unlock()

	if hasErr {
		return nil, err
	}
	if !hasResp {
		resp = mockResponse{body: []byte("not found"), statusCode: http.StatusNotFound}
	}

	r := NewMockResponseWithJSON(string(resp.body), resp.statusCode)
	r.Request = req

	return r, nil
}

// GetCallCount 지금까지 수신한 요청의 수를 반환합니다.
func (m *MockHTTPFetcher) GetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.requests)
}

// GetRequests 지금까지 수신한 요청 기록의 복사본을 반환합니다.
func (m *MockHTTPFetcher) GetRequests() []RequestRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]RequestRecord, len(m.requests))
	copy(out, m.requests)
	return out
}

// Reset 등록된 응답과 요청 기록을 모두 초기화합니다.
func (m *MockHTTPFetcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.responses = make(map[string]mockResponse)
	m.errors = make(map[string]error)
	m.requests = nil
}
