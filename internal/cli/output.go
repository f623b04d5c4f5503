package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/darkkaiser/cloudlink-sdk/pkg/cloudlink"
	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
	"github.com/iancoleman/strcase"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

// stdinArg 인자 자리에 이 값을 주면 페이로드를 표준 입력에서 읽는다.
const stdinArg = "-"

// writeJSON v를 들여쓰기된 JSON으로 기록합니다.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return apperrors.Wrap(err, apperrors.Internal, "결과를 JSON으로 출력하지 못했습니다")
	}
	return nil
}

// writeOptional 값이 있으면 JSON으로 출력하고, 없으면 NotFound 에러를 반환합니다.
func writeOptional[T any](cmd *cobra.Command, opt cloudlink.Optional[T], what, id string) error {
	v, ok := opt.Get()
	if !ok {
		return apperrors.Newf(apperrors.NotFound, "%s '%s'이(가) 존재하지 않습니다", what, id)
	}
	return writeJSON(cmd.OutOrStdout(), v)
}

// readPayload 인자가 "-" 이면 표준 입력 전체를 페이로드로 사용합니다.
func readPayload(cmd *cobra.Command, arg string) (string, error) {
	if arg != stdinArg {
		return arg, nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.System, "표준 입력에서 페이로드를 읽지 못했습니다")
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// parsePayload 페이로드 문자열을 T로 변환합니다.
//
// T가 string이면 값을 그대로 사용하고, json.RawMessage 이면 올바른 JSON인지 검사합니다.
func parsePayload[T any](s string) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *string:
		*p = s
	case *json.RawMessage:
		s = strings.TrimSpace(s)
		if !gjson.Valid(s) {
			return v, apperrors.Newf(apperrors.InvalidInput, "페이로드가 올바른 JSON이 아닙니다: %q (문자열로 저장하려면 --string을 사용하세요)", s)
		}
		*p = json.RawMessage(s)
	default:
		return v, apperrors.Newf(apperrors.Internal, "지원하지 않는 페이로드 타입입니다: %T", v)
	}
	return v, nil
}

// enumValue 사용자가 입력한 열거형 값을 서비스가 사용하는 대문자 스네이크 표기로 바꿉니다.
//
//	single-device, singleDevice, SINGLE_DEVICE -> SINGLE_DEVICE
func enumValue(s string) string {
	return strcase.ToScreamingSnake(strings.TrimSpace(s))
}
