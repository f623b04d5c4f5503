package cloudlinktest

import (
	"context"
	"errors"
	"net/http"
	"time"

	applog "github.com/darkkaiser/cloudlink-sdk/pkg/log"
)

const shutdownTimeout = 5 * time.Second

// Run 지정된 주소에서 서버를 시작하고, ctx가 취소되면 진행 중인 요청을 마무리한 뒤 종료합니다.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)

	go func() {
		applog.WithComponentAndFields(component, applog.Fields{
			"address": addr,
		}).Info("가짜 CloudLink 서버 시작")

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}

	applog.WithComponent(component).Info("가짜 CloudLink 서버 종료")

	// 서버 고루틴이 종료될 때까지 기다린다.
	return <-errCh
}
