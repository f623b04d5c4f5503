package cloudlink

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate 패키지 전역 검증기입니다. validator.Validate는 동시성에 안전하며 구조체 메타데이터를 캐시합니다.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 에러 메시지에 Go 필드명 대신 JSON 필드명이 표시되도록 한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank_if_set", validateNotBlankIfSet); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'notblank_if_set' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

// validateNotBlankIfSet 값이 비어 있으면 통과하고, 값이 있으면 공백만으로 이루어지지 않았는지 검사합니다.
func validateNotBlankIfSet(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || strings.TrimSpace(s) != ""
}

// validateStruct 구조체의 validate 태그를 검사하고, 위반 사항이 있으면 모든 위반을 담은 *ValidationError를 반환합니다.
func validateStruct(s any, contextName string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return newValidationError(contextName, []Violation{{Field: contextName, Tag: "invalid", Message: err.Error()}})
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   trimNamespace(fe.Namespace()),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: violationMessage(fe),
		})
	}

	return newValidationError(contextName, violations)
}

// trimNamespace "PushNotification.target.topic" 형태의 네임스페이스에서 최상위 구조체 이름을 제거합니다.
func trimNamespace(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "필수 항목입니다"
	case "required_if":
		return fmt.Sprintf("조건(%s)을 만족하면 필수 항목입니다", fe.Param())
	case "oneof":
		return fmt.Sprintf("다음 값 중 하나여야 합니다: %s (입력값: '%v')", fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s 이상이어야 합니다 (입력값: %v)", fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s 이하여야 합니다 (입력값: %v)", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("최대 길이(%s)를 초과했습니다", fe.Param())
	case "notblank_if_set":
		return "공백만으로 이루어질 수 없습니다"
	}
	return fmt.Sprintf("제약 조건(%s)을 만족하지 않습니다", fe.Tag())
}
