package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New(Internal, "error message")
	}
}

func BenchmarkIs(b *testing.B) {
	err := New(NotFound, "not found")
	for i := 0; i < 10; i++ {
		err = Wrap(err, Internal, "wrap")
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Is(err, NotFound)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		errType ErrorType
		message string
	}{
		{"잘못된 인자", InvalidInput, "objectId 값이 비어 있습니다"},
		{"제약 조건 위반", ConstraintViolation, "title 필드가 비어 있습니다"},
		{"빈 메시지", Internal, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := New(tt.errType, tt.message)
			require.Error(t, err)

			var appErr *AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.errType, appErr.Type())
			assert.Equal(t, tt.message, appErr.Message())
			assert.Nil(t, appErr.Unwrap())
			assert.Equal(t, fmt.Sprintf("[%s] %s", tt.errType, tt.message), err.Error())
			assert.NotEmpty(t, appErr.Stack(), "스택 정보가 수집되어야 합니다")
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(NotFound, "object %q (%d)", "note-1", 3)
	assert.Equal(t, `[NotFound] object "note-1" (3)`, err.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil 에러는 nil을 반환", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, Internal, "ignored"))
		assert.Nil(t, Wrapf(nil, Internal, "ignored %d", 1))
	})

	t.Run("표준 에러 래핑", func(t *testing.T) {
		err := Wrap(errStd, Unavailable, "request failed")
		assert.Equal(t, "[Unavailable] request failed: standard error", err.Error())
		assert.True(t, errors.Is(err, errStd))
		assert.Equal(t, errStd, RootCause(err))
	})

	t.Run("Wrapf 포맷 적용", func(t *testing.T) {
		err := Wrapf(errStd, ParsingFailed, "payload of %s", "note-1")
		assert.Equal(t, "[ParsingFailed] payload of note-1: standard error", err.Error())
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	base := New(NotFound, "missing")
	wrapped := Wrap(base, ExecutionFailed, "getObject")
	external := fmt.Errorf("outer: %w", wrapped)

	assert.True(t, Is(base, NotFound))
	assert.True(t, Is(wrapped, NotFound))
	assert.True(t, Is(wrapped, ExecutionFailed))
	assert.True(t, Is(external, NotFound), "표준 래핑을 거쳐도 체인을 따라가야 합니다")
	assert.False(t, Is(wrapped, InvalidInput))
	assert.False(t, Is(nil, NotFound))
	assert.False(t, Is(errStd, Unknown))
}

func TestAs(t *testing.T) {
	t.Parallel()

	var appErr *AppError
	assert.True(t, As(Wrap(errStd, System, "x"), &appErr))
	assert.Equal(t, System, appErr.Type())
	assert.False(t, As(errStd, &appErr))
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	assert.Nil(t, RootCause(nil))
	assert.Equal(t, errStd, RootCause(errStd))

	root := New(InvalidInput, "root")
	assert.Equal(t, root, RootCause(Wrap(Wrap(root, Internal, "a"), Internal, "b")))
}

func TestUnderlyingType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, Unknown},
		{"표준 에러", errStd, Unknown},
		{"단일 AppError", New(NotFound, "x"), NotFound},
		{"AppError 체인", Wrap(New(NotFound, "x"), ExecutionFailed, "y"), NotFound},
		{"외부 에러 래핑", Wrap(errStd, Unavailable, "x"), Unavailable},
		{"표준 래핑 혼합", fmt.Errorf("ctx: %w", Wrap(New(Forbidden, "x"), Internal, "y")), Forbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnderlyingType(tt.err))
		})
	}
}

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	err := Wrap(Wrap(errStd, Unavailable, "inner"), ExecutionFailed, "outer")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	detailed := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(detailed, "[ExecutionFailed] outer"))
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "[Unavailable] inner")
	assert.Contains(t, detailed, "standard error")
	assert.Equal(t, 1, strings.Count(detailed, "Stack trace:"), "외부 에러와의 경계에서만 스택을 출력해야 합니다")
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	definedTypes := []struct {
		errType ErrorType
		str     string
	}{
		{Unknown, "Unknown"},
		{Internal, "Internal"},
		{System, "System"},
		{Unauthorized, "Unauthorized"},
		{Forbidden, "Forbidden"},
		{InvalidInput, "InvalidInput"},
		{ConstraintViolation, "ConstraintViolation"},
		{Conflict, "Conflict"},
		{NotFound, "NotFound"},
		{ExecutionFailed, "ExecutionFailed"},
		{ParsingFailed, "ParsingFailed"},
		{Timeout, "Timeout"},
		{Unavailable, "Unavailable"},
	}
	for _, tt := range definedTypes {
		assert.Equal(t, tt.str, tt.errType.String())
	}

	assert.Equal(t, "ErrorType(-1)", ErrorType(-1).String())
	assert.Equal(t, "ErrorType(99)", ErrorType(99).String())
}
