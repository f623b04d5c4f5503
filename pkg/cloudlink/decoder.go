package cloudlink

import (
	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
)

// Decoder ObjectData를 도메인 타입 T로 변환하는 기능입니다.
//
// 모든 조회/변경 작업은 하나의 Decoder를 받으며, 호출자는 둘 중 하나를 선택합니다.
//
//	cloudlink.AsType[Note]()                    // JSON -> Note
//	cloudlink.MapWith(func(d cloudlink.ObjectData) (Note, error) { ... })
type Decoder[T any] interface {
	Decode(data ObjectData) (T, error)
}

// DecoderFunc 일반 함수를 Decoder로 사용할 수 있게 해주는 어댑터입니다.
type DecoderFunc[T any] func(data ObjectData) (T, error)

// Decode f(data)를 호출합니다.
func (f DecoderFunc[T]) Decode(data ObjectData) (T, error) {
	return f(data)
}

// AsType 페이로드를 JSON으로 해석하여 T로 변환하는 Decoder를 반환합니다.
// T가 string이면 {"v": "..."} 래퍼에서 값을 꺼냅니다.
func AsType[T any]() Decoder[T] {
	return typeDecoder[T]{}
}

// MapWith 호출자가 제공한 변환 함수를 사용하는 Decoder를 반환합니다. fn이 nil이면 nil을 반환합니다.
func MapWith[T any](fn func(data ObjectData) (T, error)) Decoder[T] {
	if fn == nil {
		return nil
	}
	return DecoderFunc[T](fn)
}

type typeDecoder[T any] struct{}

func (typeDecoder[T]) Decode(data ObjectData) (T, error) {
	return unmarshalPayload[T](data.Payload)
}

func isNilDecoder[T any](dec Decoder[T]) bool {
	if dec == nil {
		return true
	}
	if f, ok := dec.(DecoderFunc[T]); ok && f == nil {
		return true
	}
	return false
}

// decode 봉투를 decoder로 변환하고, 실패 시 ParsingFailed로 분류되지 않은 에러를 래핑합니다.
func decode[T any](op string, dec Decoder[T], data ObjectData) (T, error) {
	v, err := dec.Decode(data)
	if err != nil {
		var zero T
		if apperrors.UnderlyingType(err) == apperrors.Unknown {
			return zero, apperrors.Wrapf(err, apperrors.ParsingFailed, "%s 응답의 페이로드를 변환할 수 없습니다", op)
		}
		return zero, err
	}
	return v, nil
}
