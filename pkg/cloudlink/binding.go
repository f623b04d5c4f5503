package cloudlink

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/darkkaiser/cloudlink-sdk/internal/transport"
	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
	applog "github.com/darkkaiser/cloudlink-sdk/pkg/log"
)

const component = "cloudlink.client"

// 작업 이름. 에러 메시지와 로그에 사용됩니다.
const (
	opSendPushNotification = "sendPushNotification"
	opGetObject            = "getObject"
	opAddObject            = "addObject"
	opUpdateObject         = "updateObject"
	opRemoveObject         = "removeObject"
	opGetList              = "getList"
	opAddToList            = "addToList"
	opUpdateInList         = "updateInList"
	opRemoveFromList       = "removeFromList"
)

const (
	pushNotificationPath = "/push/enterprise/notification"
	objectPathPrefix     = "/data/enterprise/object/"
	listPathPrefix       = "/data/enterprise/list/"

	formPayloadKey = "payload"
)

func objectPath(objectID string, action string) string {
	p := objectPathPrefix + url.PathEscape(objectID)
	if action != "" {
		p += "/" + action
	}
	return p
}

func listPath(listID string, action string, objectID string) string {
	p := listPathPrefix + url.PathEscape(listID)
	if action != "" {
		p += "/" + action + "/" + url.PathEscape(objectID)
	}
	return p
}

// binding CloudLink REST 경로에 대한 요청 생성, 전송, 응답 디코딩을 담당합니다.
type binding struct {
	baseURL string
	fetcher transport.Fetcher
}

// call 요청을 전송하고 응답 본문을 out에 JSON으로 디코딩합니다. out이 nil이면 본문을 버립니다.
func (b *binding) call(ctx context.Context, op, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.Internal, "%s 요청 생성에 실패했습니다", op)
	}
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := b.fetcher.Do(req)
	if err != nil {
		return decodeError(op, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		_ = resp.Body.Close()
	}()

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if apperrors.UnderlyingType(err) != apperrors.Unknown {
			return apperrors.Wrapf(err, apperrors.UnderlyingType(err), "%s 응답을 읽는 중 에러가 발생했습니다", op)
		}
		return apperrors.Wrapf(err, apperrors.ParsingFailed, "%s 응답을 JSON으로 해석할 수 없습니다", op)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"operation": op,
		"path":      path,
	}).Trace("CloudLink 응답 디코딩 완료")

	return nil
}

func (b *binding) sendPushNotification(ctx context.Context, n *PushNotification) (*PushNotification, error) {
	var out PushNotification
	if err := b.call(ctx, opSendPushNotification, http.MethodPost, pushNotificationPath, n.formValues(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *binding) getObject(ctx context.Context, objectID string) (ObjectData, error) {
	var out ObjectData
	err := b.call(ctx, opGetObject, http.MethodGet, objectPath(objectID, ""), nil, &out)
	return out, err
}

func (b *binding) addObject(ctx context.Context, objectID, payload string) (ObjectData, error) {
	var out ObjectData
	err := b.call(ctx, opAddObject, http.MethodPost, objectPath(objectID, "add"), payloadForm(payload), &out)
	return out, err
}

func (b *binding) updateObject(ctx context.Context, objectID, payload string) (ObjectData, error) {
	var out ObjectData
	err := b.call(ctx, opUpdateObject, http.MethodPost, objectPath(objectID, "update"), payloadForm(payload), &out)
	return out, err
}

func (b *binding) removeObject(ctx context.Context, objectID string) error {
	return b.call(ctx, opRemoveObject, http.MethodPost, objectPath(objectID, "remove"), nil, nil)
}

func (b *binding) getList(ctx context.Context, listID string) ([]ObjectData, error) {
	var out []ObjectData
	if err := b.call(ctx, opGetList, http.MethodGet, listPath(listID, "", ""), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []ObjectData{}
	}
	return out, nil
}

func (b *binding) addToList(ctx context.Context, listID, objectID, payload string) (ObjectData, error) {
	var out ObjectData
	err := b.call(ctx, opAddToList, http.MethodPost, listPath(listID, "add", objectID), payloadForm(payload), &out)
	return out, err
}

func (b *binding) updateInList(ctx context.Context, listID, objectID, payload string) (ObjectData, error) {
	var out ObjectData
	err := b.call(ctx, opUpdateInList, http.MethodPost, listPath(listID, "update", objectID), payloadForm(payload), &out)
	return out, err
}

func (b *binding) removeFromList(ctx context.Context, listID, objectID string) error {
	return b.call(ctx, opRemoveFromList, http.MethodPost, listPath(listID, "remove", objectID), nil, nil)
}

func payloadForm(payload string) url.Values {
	return url.Values{formPayloadKey: []string{payload}}
}
