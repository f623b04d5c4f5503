// Package cloudlink CloudLink 클라우드 데이터 저장소와 푸시 알림 REST 서비스를 위한 Go 클라이언트입니다.
//
// 모든 작업은 정확히 하나의 HTTP 요청/응답으로 이루어지며, 자동 재시도나 캐시는 없습니다.
// 타입이 있는 작업은 Go 메서드가 타입 매개변수를 가질 수 없으므로 패키지 함수로 제공됩니다.
//
//	client, err := cloudlink.New(cloudlink.Config{Hostname: "cloud.gluonhq.com", ServerKey: key})
//	if err != nil { ... }
//
//	note, err := cloudlink.AddObject(ctx, client, "note-1", Note{Title: "hello"}, cloudlink.AsType[Note]())
//	got, err := cloudlink.GetObject(ctx, client, "note-1", cloudlink.AsType[Note]())
//	if v, ok := got.Get(); ok { ... }
//
// 에러 종류:
//   - 필수 인자 누락: apperrors.InvalidInput (네트워크 요청 없음)
//   - 제약 조건 위반: *ValidationError (네트워크 요청 없음)
//   - 서비스 에러 응답: *ClientError (상태 코드와 본문 포함)
//
// "항목 없음"은 에러가 아니라 값이 비어 있는 Optional로 반환됩니다.
package cloudlink

import (
	"context"
	"fmt"
	"reflect"

	"github.com/darkkaiser/cloudlink-sdk/internal/pkg/version"
	"github.com/darkkaiser/cloudlink-sdk/internal/transport"
	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
	applog "github.com/darkkaiser/cloudlink-sdk/pkg/log"
)

// Client CloudLink 서비스에 대한 클라이언트입니다.
//
// 생성 이후에는 변경되는 상태가 없으므로 여러 고루틴에서 동시에 사용해도 안전합니다.
type Client struct {
	config  Config
	binding *binding
}

// New 설정을 검증하고 새로운 Client를 생성합니다.
//
// 반환값:
//   - *Client: 생성된 클라이언트
//   - error: 필수 설정(Hostname, ServerKey)이 없거나 값이 범위를 벗어나면 *ValidationError
func New(cfg Config) (*Client, error) {
	if err := validateStruct(cfg, "Config"); err != nil {
		return nil, err
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = version.UserAgent()
	}

	return newClient(cfg, transport.New(cfg.transportConfig())), nil
}

func newClient(cfg Config, f transport.Fetcher) *Client {
	c := &Client{
		config: cfg,
		binding: &binding{
			baseURL: cfg.baseURL(),
			fetcher: f,
		},
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"base_url":   c.binding.baseURL,
		"server_key": applog.MaskSensitiveData(cfg.ServerKey),
		"log_level":  cfg.LogLevel.String(),
	}).Debug("CloudLink 클라이언트 생성 완료")

	return c
}

// BaseURL 요청에 사용되는 기준 URL(<hostname>/3)을 반환합니다.
func (c *Client) BaseURL() string {
	return c.binding.baseURL
}

// Config 클라이언트 생성에 사용된 설정의 복사본을 반환합니다.
func (c *Client) Config() Config {
	return c.config
}

// SendPushNotification 푸시 알림을 전송하고, 서버가 식별자와 생성 시각을 채운 알림을 반환합니다.
func (c *Client) SendPushNotification(ctx context.Context, notification *PushNotification) (*PushNotification, error) {
	if notification == nil {
		return nil, requiredArgError(opSendPushNotification, "notification")
	}
	if err := notification.Validate(); err != nil {
		return nil, err
	}

	return c.binding.sendPushNotification(ctx, notification)
}

// RemoveObject 객체를 삭제합니다. 존재하지 않는 객체를 삭제해도 에러가 발생하지 않습니다.
func (c *Client) RemoveObject(ctx context.Context, objectID string) error {
	if err := requireID(opRemoveObject, "objectID", objectID); err != nil {
		return err
	}

	return c.binding.removeObject(ctx, objectID)
}

// RemoveFromList 리스트에서 객체를 제거합니다.
func (c *Client) RemoveFromList(ctx context.Context, listID, objectID string) error {
	if err := requireID(opRemoveFromList, "listID", listID); err != nil {
		return err
	}
	if err := requireID(opRemoveFromList, "objectID", objectID); err != nil {
		return err
	}

	return c.binding.removeFromList(ctx, listID, objectID)
}

// GetObjectData 객체의 봉투를 변환 없이 그대로 반환합니다. 객체가 없으면 UID가 빈 봉투가 반환됩니다.
func (c *Client) GetObjectData(ctx context.Context, objectID string) (ObjectData, error) {
	if err := requireID(opGetObject, "objectID", objectID); err != nil {
		return ObjectData{}, err
	}

	return c.binding.getObject(ctx, objectID)
}

// GetListData 리스트의 봉투들을 변환 없이 서버가 돌려준 순서 그대로 반환합니다.
func (c *Client) GetListData(ctx context.Context, listID string) ([]ObjectData, error) {
	if err := requireID(opGetList, "listID", listID); err != nil {
		return nil, err
	}

	return c.binding.getList(ctx, listID)
}

func requiredArgError(op, name string) error {
	return apperrors.Newf(apperrors.InvalidInput, "%s: %s는 nil일 수 없습니다", op, name)
}

func requireID(op, name, id string) error {
	if id == "" {
		return apperrors.Newf(apperrors.InvalidInput, "%s: %s는 비어 있을 수 없습니다", op, name)
	}
	return nil
}

func requireDecoder[T any](op string, dec Decoder[T]) error {
	if isNilDecoder(dec) {
		return requiredArgError(op, "decoder")
	}
	return nil
}

// requireTarget nil 포인터, 맵, 슬라이스, 인터페이스 등 "값 없음" 상태의 대상을 거부합니다.
func requireTarget[T any](op string, target T) error {
	v := reflect.ValueOf(&target).Elem()
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return requiredArgError(op, "target")
		}
	}
	return nil
}

func (c *Client) String() string {
	return fmt.Sprintf("cloudlink.Client{%s}", c.binding.baseURL)
}
