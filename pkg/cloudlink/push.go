package cloudlink

import (
	"net/url"
	"strconv"
)

// Priority 푸시 알림의 전달 우선순위입니다.
type Priority string

const (
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
)

// ExpirationType ExpirationAmount의 시간 단위입니다.
type ExpirationType string

const (
	ExpirationMinutes ExpirationType = "MINUTES"
	ExpirationHours   ExpirationType = "HOURS"
	ExpirationDays    ExpirationType = "DAYS"
	ExpirationWeeks   ExpirationType = "WEEKS"
)

// TargetType 푸시 알림을 받을 대상의 종류입니다.
type TargetType string

const (
	TargetAllDevices   TargetType = "ALL_DEVICES"
	TargetSingleDevice TargetType = "SINGLE_DEVICE"
	TargetTopic        TargetType = "TOPIC"
)

const (
	defaultExpirationAmount = 4
)

// Target 푸시 알림의 수신 대상입니다.
//
// Type이 TOPIC이면 Topic이, SINGLE_DEVICE이면 DeviceToken이 필수입니다.
type Target struct {
	Type        TargetType `json:"type" validate:"required,oneof=ALL_DEVICES SINGLE_DEVICE TOPIC"`
	Topic       string     `json:"topic,omitempty" validate:"required_if=Type TOPIC,notblank_if_set"`
	DeviceToken string     `json:"deviceToken,omitempty" validate:"required_if=Type SINGLE_DEVICE,notblank_if_set"`
}

// PushNotification CloudLink를 통해 전송할 푸시 알림입니다.
//
// ID와 CreationDate는 서버가 채워서 돌려주는 값이며, 전송 시에는 무시됩니다.
// 직접 구조체를 만들기보다는 기본값이 채워진 NewPushNotification()을 사용하세요.
type PushNotification struct {
	ID           string `json:"identifier,omitempty"`
	CreationDate int64  `json:"creationDate,omitempty"`

	CustomIdentifier string `json:"customIdentifier,omitempty" validate:"max=256"`
	Title            string `json:"title" validate:"required,notblank_if_set"`
	Body             string `json:"body" validate:"required,notblank_if_set"`

	// DeliveryDate 전송 예약 시각 (epoch milliseconds, 0이면 즉시 전송)
	DeliveryDate int64 `json:"deliveryDate" validate:"gte=0"`

	Priority         Priority       `json:"priority" validate:"required,oneof=NORMAL HIGH"`
	ExpirationType   ExpirationType `json:"expirationType" validate:"required,oneof=MINUTES HOURS DAYS WEEKS"`
	ExpirationAmount int            `json:"expirationAmount" validate:"gte=0"`

	Target Target `json:"target"`

	// Invisible true이면 사용자에게 표시되지 않는 사일런트 알림으로 전송됩니다.
	Invisible bool `json:"invisible"`
}

// NewPushNotification 기본값(NORMAL 우선순위, 4주 후 만료, 모든 디바이스 대상)이 채워진 알림을 생성합니다.
func NewPushNotification(title, body string) *PushNotification {
	return &PushNotification{
		Title:            title,
		Body:             body,
		Priority:         PriorityNormal,
		ExpirationType:   ExpirationWeeks,
		ExpirationAmount: defaultExpirationAmount,
		Target: Target{
			Type: TargetAllDevices,
		},
	}
}

// Validate 알림의 필드 제약 조건을 검사합니다. 위반 시 *ValidationError를 반환합니다.
func (n *PushNotification) Validate() error {
	return validateStruct(n, "PushNotification")
}

// formValues 알림을 전송용 form 필드로 변환합니다. 빈 문자열 필드는 포함하지 않습니다.
func (n *PushNotification) formValues() url.Values {
	form := url.Values{}

	setIfNotEmpty := func(key, value string) {
		if value != "" {
			form.Set(key, value)
		}
	}

	setIfNotEmpty("customIdentifier", n.CustomIdentifier)
	setIfNotEmpty("title", n.Title)
	setIfNotEmpty("body", n.Body)
	form.Set("deliveryDate", strconv.FormatInt(n.DeliveryDate, 10))
	setIfNotEmpty("priority", string(n.Priority))
	setIfNotEmpty("expirationType", string(n.ExpirationType))
	form.Set("expirationAmount", strconv.Itoa(n.ExpirationAmount))
	setIfNotEmpty("targetType", string(n.Target.Type))
	setIfNotEmpty("targetTopic", n.Target.Topic)
	setIfNotEmpty("targetDeviceToken", n.Target.DeviceToken)
	form.Set("invisible", strconv.FormatBool(n.Invisible))

	return form
}
