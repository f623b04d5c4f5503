package cloudlink

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/darkkaiser/cloudlink-sdk/internal/transport"
	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
	"github.com/hashicorp/go-multierror"
)

// ClientError CloudLink 서비스가 2xx가 아닌 상태 코드로 응답했을 때 반환되는 에러입니다.
//
// 서버가 관측한 상태를 반영하는 유일한 에러 종류이며, 상태 코드와 응답 본문을 그대로 담고 있습니다.
// 내부 원인(Unwrap)은 상태 코드에 따라 분류된 AppError이므로 apperrors.Is()로 종류를 판별할 수 있습니다.
//
//	var ce *cloudlink.ClientError
//	if errors.As(err, &ce) && ce.StatusCode == http.StatusNotFound { ... }
type ClientError struct {
	// Operation 실패한 작업 이름 (예: "addObject")
	Operation string

	StatusCode int
	Status     string

	// URL 요청 URL (민감 정보 마스킹됨)
	URL string

	// Header 응답 헤더 (민감 정보 마스킹됨)
	Header http.Header

	// Body 응답 본문 (Error()에서는 앞부분만 표시됩니다)
	Body string

	cause error
}

// maxErrorBodyInMessage Error() 메시지에 포함되는 응답 본문의 최대 길이입니다.
const maxErrorBodyInMessage = 4 * 1024

func (e *ClientError) Error() string {
	msg := fmt.Sprintf("cloudlink: %s 요청이 실패했습니다 (HTTP %d", e.Operation, e.StatusCode)
	if e.Status != "" {
		msg += ", " + e.Status
	}
	msg += ")"
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += ": " + truncate(body, maxErrorBodyInMessage)
	}
	return msg
}

func (e *ClientError) Unwrap() error {
	return e.cause
}

// Violation 하나의 필드 제약 조건 위반 정보입니다.
type Violation struct {
	// Field JSON 필드 경로 (예: "target.topic")
	Field string

	// Tag 위반한 제약 조건 (예: "required_if")
	Tag string

	// Param 제약 조건의 매개변수 (예: "Type TOPIC")
	Param string

	// Value 검사 대상 값
	Value any

	Message string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationError 구조화된 입력(PushNotification, Config)이 선언된 제약 조건을 위반했을 때 반환되는 에러입니다.
//
// 첫 번째 위반에서 멈추지 않고 모든 위반 사항을 Violations에 담습니다.
// 네트워크 요청이 발생하기 전에 반환되며, ErrorType은 ConstraintViolation입니다.
type ValidationError struct {
	Target     string
	Violations []Violation

	merr  *multierror.Error
	cause error
}

func newValidationError(target string, violations []Violation) *ValidationError {
	var merr *multierror.Error
	for _, v := range violations {
		merr = multierror.Append(merr, v)
	}
	if merr != nil {
		merr.ErrorFormat = func(errs []error) string {
			lines := make([]string, 0, len(errs))
			for _, e := range errs {
				lines = append(lines, "  * "+e.Error())
			}
			return fmt.Sprintf("cloudlink: %s 유효성 검사에서 %d건의 위반이 발견되었습니다:\n%s", target, len(errs), strings.Join(lines, "\n"))
		}
	}

	return &ValidationError{
		Target:     target,
		Violations: violations,
		merr:       merr,
		cause:      apperrors.Newf(apperrors.ConstraintViolation, "%s 제약 조건 위반", target),
	}
}

func (e *ValidationError) Error() string {
	if e.merr == nil {
		return fmt.Sprintf("cloudlink: %s 유효성 검사에 실패했습니다", e.Target)
	}
	return e.merr.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// HasViolation 지정된 필드에 대한 위반이 포함되어 있는지 확인합니다.
func (e *ValidationError) HasViolation(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// decodeError 전송 계층에서 발생한 에러를 SDK가 노출하는 에러 종류로 변환합니다.
//
//   - *transport.HTTPStatusError: *ClientError
//   - 이미 분류된 AppError (속도 제한, 응답 크기 초과 등): 작업 이름을 덧붙여 같은 종류로 래핑
//   - Context 타임아웃: Timeout
//   - 그 외 네트워크 에러: Unavailable
func decodeError(op string, err error) error {
	var statusErr *transport.HTTPStatusError
	if errors.As(err, &statusErr) {
		return &ClientError{
			Operation:  op,
			StatusCode: statusErr.StatusCode,
			Status:     statusErr.Status,
			URL:        statusErr.URL,
			Header:     statusErr.Header,
			Body:       statusErr.Body,
			cause:      statusErr.Cause,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrapf(err, apperrors.Timeout, "%s 요청 시간이 초과되었습니다", op)
	}

	if t := apperrors.UnderlyingType(err); t != apperrors.Unknown {
		return apperrors.Wrapf(err, t, "%s 요청이 실패했습니다", op)
	}

	return apperrors.Wrapf(err, apperrors.Unavailable, "%s 요청 전송 중 네트워크 에러가 발생했습니다", op)
}
