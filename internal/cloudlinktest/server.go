// Package cloudlinktest CloudLink REST 계약을 메모리 상에서 구현한 가짜 서버를 제공합니다.
//
// SDK의 왕복(round-trip) 테스트와 로컬 개발(cmd/cloudlink-fake)에 사용됩니다.
// 객체와 리스트는 프로세스 메모리에만 보관되며, 서버를 종료하면 사라집니다.
package cloudlinktest

import (
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	applog "github.com/darkkaiser/cloudlink-sdk/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
)

const component = "cloudlinktest.server"

const authScheme = "Gluon "

// objectData CloudLink 응답 봉투의 와이어 형식입니다.
type objectData struct {
	UID     string `json:"uid"`
	Payload string `json:"payload"`
}

type listEntry struct {
	objectID string
	data     objectData
}

// failure 강제로 돌려줄 에러 응답
type failure struct {
	status int
	body   string
}

// Server 메모리 기반 CloudLink 가짜 서버입니다. 여러 고루틴에서 동시에 사용해도 안전합니다.
type Server struct {
	serverKey string
	echo      *echo.Echo

	mu      sync.RWMutex
	objects map[string]objectData
	lists   map[string][]listEntry
	pushes  []Push
	fail    *failure

	requests atomic.Int64
}

// Option Server의 설정을 변경하기 위한 함수 타입입니다.
type Option func(*Server)

// WithRequestLogging 수신한 요청을 Debug 레벨로 기록합니다.
func WithRequestLogging() Option {
	return func(s *Server) {
		s.echo.Use(requestLogger)
	}
}

// NewServer 새로운 가짜 서버를 생성합니다. 모든 요청은 "Authorization: Gluon <serverKey>" 헤더를 요구합니다.
func NewServer(serverKey string, opts ...Option) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonlog.OFF)

	s := &Server{
		serverKey: serverKey,
		echo:      e,
		objects:   make(map[string]objectData),
		lists:     make(map[string][]listEntry),
	}

	e.Use(middleware.Recover())
	for _, opt := range opts {
		opt(s)
	}
	e.Use(s.countRequests)

	api := e.Group("/3", s.authenticate, s.injectFailure)

	api.POST("/push/enterprise/notification", s.handleSendPushNotification)

	api.GET("/data/enterprise/object/:objectId", s.handleGetObject)
	api.POST("/data/enterprise/object/:objectId/add", s.handleAddObject)
	api.POST("/data/enterprise/object/:objectId/update", s.handleUpdateObject)
	api.POST("/data/enterprise/object/:objectId/remove", s.handleRemoveObject)

	api.GET("/data/enterprise/list/:listId", s.handleGetList)
	api.POST("/data/enterprise/list/:listId/add/:objectId", s.handleAddToList)
	api.POST("/data/enterprise/list/:listId/update/:objectId", s.handleUpdateInList)
	api.POST("/data/enterprise/list/:listId/remove/:objectId", s.handleRemoveFromList)

	return s
}

// ServeHTTP Server를 http.Handler로 사용할 수 있게 합니다.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Echo 내부 echo 인스턴스를 반환합니다. (서버 시작/종료용)
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// FailWith 이후의 모든 API 요청에 지정된 상태 코드와 본문으로 응답하도록 설정합니다.
// status가 0이면 강제 실패를 해제합니다.
func (s *Server) FailWith(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if status == 0 {
		s.fail = nil
		return
	}
	s.fail = &failure{status: status, body: body}
}

// RequestCount 지금까지 수신한 요청 수를 반환합니다.
func (s *Server) RequestCount() int64 {
	return s.requests.Load()
}

// Pushes 지금까지 수신한 푸시 알림 목록의 복사본을 반환합니다.
func (s *Server) Pushes() []Push {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Push, len(s.pushes))
	copy(out, s.pushes)
	return out
}

// Reset 저장된 모든 데이터와 강제 실패 설정을 초기화합니다.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects = make(map[string]objectData)
	s.lists = make(map[string][]listEntry)
	s.pushes = nil
	s.fail = nil
}

func (s *Server) countRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.requests.Add(1)
		return next(c)
	}
}

func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, authScheme) || strings.TrimPrefix(header, authScheme) != s.serverKey {
			return c.String(http.StatusUnauthorized, "invalid server key")
		}
		return next(c)
	}
}

func (s *Server) injectFailure(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.RLock()
		f := s.fail
		s.mu.RUnlock()

		if f != nil {
			return c.String(f.status, f.body)
		}
		return next(c)
	}
}

func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		applog.WithComponentAndFields(component, applog.Fields{
			"method":  c.Request().Method,
			"path":    c.Request().URL.Path,
			"status":  c.Response().Status,
			"latency": time.Since(start).String(),
		}).Debug("가짜 CloudLink 서버 요청 처리")

		return err
	}
}

// pathParam 경로 매개변수를 디코딩하여 반환합니다.
// echo는 RawPath가 있으면 이스케이프된 경로로 라우팅하므로, 이 경우에만 디코딩한다.
func pathParam(c echo.Context, name string) string {
	v := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}
