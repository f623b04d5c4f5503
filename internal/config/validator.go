package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/darkkaiser/cloudlink-sdk/pkg/cloudlink"
	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator JSON 필드명을 사용하는 검증기를 만들고 커스텀 태그를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("log_level", validateLogLevel); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'log_level' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

// validateLogLevel cloudlink.LogLevelFromString이 해석할 수 있는 이름인지 검사합니다.
func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := cloudlink.LogLevelFromString(fl.Field().String())
	return err == nil
}

// checkStruct 구조체의 유효성을 검사하고, 첫 번째 위반 항목을 설명하는 에러를 반환합니다.
func checkStruct(s any, contextName string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		fe := validationErrors[0]
		return apperrors.Newf(apperrors.InvalidInput, "%s.%s 설정이 올바르지 않습니다: '%v' (조건: %s)", contextName, fe.Field(), fe.Value(), conditionOf(fe))
	}

	return apperrors.Wrapf(err, apperrors.InvalidInput, "%s 유효성 검증에 실패했습니다", contextName)
}

func conditionOf(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
