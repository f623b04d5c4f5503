package cloudlink

import (
	"context"
)

// GetObject 객체를 조회하여 T로 변환합니다. 객체가 없으면 값이 비어 있는 Optional을 반환합니다.
func GetObject[T any](ctx context.Context, c *Client, objectID string, dec Decoder[T]) (Optional[T], error) {
	if err := requireID(opGetObject, "objectID", objectID); err != nil {
		return None[T](), err
	}
	if err := requireDecoder(opGetObject, dec); err != nil {
		return None[T](), err
	}

	data, err := c.binding.getObject(ctx, objectID)
	if err != nil {
		return None[T](), err
	}
	if !data.Exists() {
		return None[T](), nil
	}

	v, err := decode(opGetObject, dec, data)
	if err != nil {
		return None[T](), err
	}
	return Some(v), nil
}

// AddObject 객체를 생성하거나 덮어쓰고, 서버에 저장된 값을 T로 변환하여 반환합니다.
//
// target이 string이면 {"v": target} 형태로 저장됩니다.
func AddObject[T any](ctx context.Context, c *Client, objectID string, target T, dec Decoder[T]) (T, error) {
	var zero T

	if err := requireID(opAddObject, "objectID", objectID); err != nil {
		return zero, err
	}
	if err := requireTarget(opAddObject, target); err != nil {
		return zero, err
	}
	if err := requireDecoder(opAddObject, dec); err != nil {
		return zero, err
	}

	payload, err := marshalPayload(target)
	if err != nil {
		return zero, err
	}

	data, err := c.binding.addObject(ctx, objectID, payload)
	if err != nil {
		return zero, err
	}

	return decode(opAddObject, dec, data)
}

// UpdateObject 기존 객체를 갱신합니다. 객체가 없으면 새로 만들지 않고 값이 비어 있는 Optional을 반환합니다.
func UpdateObject[T any](ctx context.Context, c *Client, objectID string, target T, dec Decoder[T]) (Optional[T], error) {
	if err := requireID(opUpdateObject, "objectID", objectID); err != nil {
		return None[T](), err
	}
	if err := requireTarget(opUpdateObject, target); err != nil {
		return None[T](), err
	}
	if err := requireDecoder(opUpdateObject, dec); err != nil {
		return None[T](), err
	}

	payload, err := marshalPayload(target)
	if err != nil {
		return None[T](), err
	}

	data, err := c.binding.updateObject(ctx, objectID, payload)
	if err != nil {
		return None[T](), err
	}
	if !data.Exists() {
		return None[T](), nil
	}

	v, err := decode(opUpdateObject, dec, data)
	if err != nil {
		return None[T](), err
	}
	return Some(v), nil
}
