package cloudlink

import (
	"encoding/json"

	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
	"github.com/tidwall/gjson"
)

// stringObjectKey 문자열 페이로드를 감싸는 JSON 객체의 키
const stringObjectKey = "v"

// stringObject 문자열 값을 CloudLink에 저장할 때 사용하는 {"v": "..."} 래퍼입니다.
//
// 이 래퍼는 정확히 string 타입에만 적용됩니다. 다른 기본 타입(int, bool)이나
// string을 기반으로 정의된 사용자 타입은 일반 JSON으로 직렬화됩니다.
type stringObject struct {
	V string `json:"v"`
}

// marshalPayload 값을 CloudLink 페이로드(JSON 텍스트)로 직렬화합니다.
func marshalPayload[T any](v T) (string, error) {
	var data []byte
	var err error

	if s, ok := any(v).(string); ok {
		data, err = json.Marshal(stringObject{V: s})
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.InvalidInput, "페이로드를 JSON으로 직렬화할 수 없습니다")
	}

	return string(data), nil
}

// unmarshalPayload CloudLink 페이로드(JSON 텍스트)를 T로 역직렬화합니다.
//
// T가 string이면 {"v": "..."} 래퍼에서 값을 꺼내며, "v" 키가 없으면 빈 문자열을 반환합니다.
func unmarshalPayload[T any](payload string) (T, error) {
	var out T

	if _, ok := any(out).(string); ok {
		if !gjson.Valid(payload) {
			return out, apperrors.Newf(apperrors.ParsingFailed, "문자열 페이로드가 올바른 JSON이 아닙니다: %s", truncate(payload, 128))
		}
		s := gjson.Get(payload, stringObjectKey).String()
		return any(s).(T), nil
	}

	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return out, apperrors.Wrapf(err, apperrors.ParsingFailed, "페이로드를 %T 타입으로 역직렬화할 수 없습니다", out)
	}

	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
