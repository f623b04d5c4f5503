package errors

//go:generate stringer -type=ErrorType

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 알 수 없는 에러
	Unknown ErrorType = iota

	// Internal SDK 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (파일, 환경 변수 등)
	System

	// Unauthorized 인증 실패 (서버 키 누락 또는 불일치)
	Unauthorized

	// Forbidden 권한 없음
	Forbidden

	// InvalidInput 잘못된 인자 (필수 값 누락, 빈 식별자 등)
	InvalidInput

	// ConstraintViolation 구조화된 도메인 객체가 선언된 필드 제약 조건을 위반함
	ConstraintViolation

	// Conflict 리소스 충돌
	Conflict

	// NotFound 리소스를 찾을 수 없음 (HTTP 404)
	NotFound

	// ExecutionFailed 원격 서비스 호출 실패 (분류되지 않은 비정상 상태 코드)
	ExecutionFailed

	// ParsingFailed 응답 또는 페이로드의 디코딩 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 원격 서비스 일시적 사용 불가 (네트워크 오류, 5xx, 429)
	Unavailable
)
