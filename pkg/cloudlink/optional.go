package cloudlink

// Optional 조회 결과가 "없음"일 수 있는 작업의 반환 타입입니다.
//
// "항목이 존재하지 않음"은 에러가 아니라 값이 비어 있는 Optional로 표현되므로,
// 호출자는 에러(호출 실패)와 부재(정상 응답이지만 항목 없음)를 타입으로 구분할 수 있습니다.
type Optional[T any] struct {
	value   T
	present bool
}

// Some 값이 있는 Optional을 생성합니다.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None 값이 없는 Optional을 생성합니다.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent 값이 있는지 여부를 반환합니다.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get 값과 존재 여부를 함께 반환합니다.
//
//	if v, ok := opt.Get(); ok { ... }
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse 값이 있으면 그 값을, 없으면 def를 반환합니다.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// MustGet 값을 반환합니다. 값이 없으면 panic이 발생합니다.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("cloudlink: 값이 없는 Optional에 MustGet()을 호출했습니다")
	}
	return o.value
}
