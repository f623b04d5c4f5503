// Package log SDK와 CLI가 공통으로 사용하는 logrus 기반 로깅 기능을 제공합니다.
//
// 라이브러리로 사용될 때는 별도의 초기화 없이 logrus 표준 로거를 그대로 사용하며,
// CLI처럼 프로세스를 소유하는 경우에만 Setup()으로 파일 로테이션과 레벨별 분리를 구성합니다.
package log

import (
	"github.com/sirupsen/logrus"
)

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return logrus.WithFields(newFields)
}

// SetDebugMode 디버그 모드이면 Trace, 아니면 Info 레벨로 설정합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// MaskSensitiveData 서버 키 등 민감한 문자열을 로그에 남길 수 있도록 마스킹합니다.
//
//	MaskSensitiveData("abc")               // "***"
//	MaskSensitiveData("abcdefgh")          // "abcd***"
//	MaskSensitiveData("abcdefghijklmnop")  // "abcd***mnop"
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}

	if len(data) <= 3 {
		return "***"
	}

	if len(data) <= 12 {
		return data[:4] + "***"
	}

	return data[:4] + "***" + data[len(data)-4:]
}
