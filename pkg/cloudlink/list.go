package cloudlink

import (
	"context"
)

// GetList 리스트의 모든 객체를 서버가 돌려준 순서대로 T로 변환합니다.
// 빈 리스트는 에러가 아니라 길이 0의 슬라이스로 반환됩니다.
func GetList[T any](ctx context.Context, c *Client, listID string, dec Decoder[T]) ([]T, error) {
	if err := requireID(opGetList, "listID", listID); err != nil {
		return nil, err
	}
	if err := requireDecoder(opGetList, dec); err != nil {
		return nil, err
	}

	items, err := c.binding.getList(ctx, listID)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		v, err := decode(opGetList, dec, item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// AddToList 객체를 리스트에 추가하고, 서버에 저장된 값을 T로 변환하여 반환합니다.
func AddToList[T any](ctx context.Context, c *Client, listID, objectID string, target T, dec Decoder[T]) (T, error) {
	var zero T

	if err := requireID(opAddToList, "listID", listID); err != nil {
		return zero, err
	}
	if err := requireID(opAddToList, "objectID", objectID); err != nil {
		return zero, err
	}
	if err := requireTarget(opAddToList, target); err != nil {
		return zero, err
	}
	if err := requireDecoder(opAddToList, dec); err != nil {
		return zero, err
	}

	payload, err := marshalPayload(target)
	if err != nil {
		return zero, err
	}

	data, err := c.binding.addToList(ctx, listID, objectID, payload)
	if err != nil {
		return zero, err
	}

	return decode(opAddToList, dec, data)
}

// UpdateInList 리스트에 있는 객체를 갱신합니다. 리스트에 없는 객체이면 값이 비어 있는 Optional을 반환합니다.
func UpdateInList[T any](ctx context.Context, c *Client, listID, objectID string, target T, dec Decoder[T]) (Optional[T], error) {
	if err := requireID(opUpdateInList, "listID", listID); err != nil {
		return None[T](), err
	}
	if err := requireID(opUpdateInList, "objectID", objectID); err != nil {
		return None[T](), err
	}
	if err := requireTarget(opUpdateInList, target); err != nil {
		return None[T](), err
	}
	if err := requireDecoder(opUpdateInList, dec); err != nil {
		return None[T](), err
	}

	payload, err := marshalPayload(target)
	if err != nil {
		return None[T](), err
	}

	data, err := c.binding.updateInList(ctx, listID, objectID, payload)
	if err != nil {
		return None[T](), err
	}
	if !data.Exists() {
		return None[T](), nil
	}

	v, err := decode(opUpdateInList, dec, data)
	if err != nil {
		return None[T](), err
	}
	return Some(v), nil
}
