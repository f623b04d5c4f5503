package cloudlink

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/darkkaiser/cloudlink-sdk/internal/transport"
	"github.com/darkkaiser/cloudlink-sdk/internal/transport/mocks"
	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestClient_RequiredArguments 필수 인자가 비어 있으면 네트워크 요청 없이 InvalidInput을 반환하는지 검증합니다.
func TestClient_RequiredArguments(t *testing.T) {
	ctx := context.Background()
	strDec := AsType[string]()

	var nilMap map[string]int
	var nilPtr *note

	tests := []struct {
		name string
		call func(c *Client) error
	}{
		{"SendPushNotification: nil 알림", func(c *Client) error {
			_, err := c.SendPushNotification(ctx, nil)
			return err
		}},
		{"GetObject: 빈 ID", func(c *Client) error {
			_, err := GetObject(ctx, c, "", strDec)
			return err
		}},
		{"GetObject: nil Decoder", func(c *Client) error {
			_, err := GetObject[string](ctx, c, "id", nil)
			return err
		}},
		{"AddObject: 빈 ID", func(c *Client) error {
			_, err := AddObject(ctx, c, "", "v", strDec)
			return err
		}},
		{"AddObject: nil 포인터 대상", func(c *Client) error {
			_, err := AddObject(ctx, c, "id", nilPtr, AsType[*note]())
			return err
		}},
		{"AddObject: nil 맵 대상", func(c *Client) error {
			_, err := AddObject(ctx, c, "id", nilMap, AsType[map[string]int]())
			return err
		}},
		{"AddObject: nil 인터페이스 대상", func(c *Client) error {
			_, err := AddObject[any](ctx, c, "id", nil, AsType[any]())
			return err
		}},
		{"AddObject: nil DecoderFunc", func(c *Client) error {
			var f DecoderFunc[string]
			_, err := AddObject[string](ctx, c, "id", "v", f)
			return err
		}},
		{"UpdateObject: 빈 ID", func(c *Client) error {
			_, err := UpdateObject(ctx, c, "", "v", strDec)
			return err
		}},
		{"RemoveObject: 빈 ID", func(c *Client) error {
			return c.RemoveObject(ctx, "")
		}},
		{"GetObjectData: 빈 ID", func(c *Client) error {
			_, err := c.GetObjectData(ctx, "")
			return err
		}},
		{"GetList: 빈 리스트 ID", func(c *Client) error {
			_, err := GetList(ctx, c, "", strDec)
			return err
		}},
		{"GetListData: 빈 리스트 ID", func(c *Client) error {
			_, err := c.GetListData(ctx, "")
			return err
		}},
		{"AddToList: 빈 객체 ID", func(c *Client) error {
			_, err := AddToList(ctx, c, "list", "", "v", strDec)
			return err
		}},
		{"UpdateInList: 빈 리스트 ID", func(c *Client) error {
			_, err := UpdateInList(ctx, c, "", "id", "v", strDec)
			return err
		}},
		{"RemoveFromList: 빈 객체 ID", func(c *Client) error {
			return c.RemoveFromList(ctx, "list", "")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newMockClient(t)

			err := tt.call(c)

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput), "InvalidInput 에러여야 합니다: %v", err)
			assert.Zero(t, m.GetCallCount(), "네트워크 요청이 발생하지 않아야 합니다")
		})
	}
}

func TestClient_SendPushNotification_ValidationFailsBeforeNetwork(t *testing.T) {
	c, m := newMockClient(t)

	n := NewPushNotification("t", "b")
	n.Target.Type = TargetTopic

	_, err := c.SendPushNotification(context.Background(), n)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Zero(t, m.GetCallCount())
}

func TestClient_SendPushNotification(t *testing.T) {
	m := mocks.NewMockFetcher()
	m.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodPost &&
			req.URL.String() == testBaseURL+pushNotificationPath &&
			req.Header.Get("Authorization") == "Gluon "+testServerKey &&
			req.Header.Get("Content-Type") == "application/x-www-form-urlencoded"
	})).Return(mocks.NewMockResponseWithJSON(`{"identifier":"p-1","creationDate":1700000000000,"title":"t","body":"b","priority":"HIGH"}`, http.StatusOK), nil).Once()

	cfg := Config{Hostname: "cloud.test", ServerKey: testServerKey}
	c := newClient(cfg, transport.Decorate(m, cfg.transportConfig()))

	n := NewPushNotification("t", "b")
	n.Priority = PriorityHigh

	got, err := c.SendPushNotification(context.Background(), n)
	require.NoError(t, err)

	assert.Equal(t, "p-1", got.ID)
	assert.Equal(t, int64(1700000000000), got.CreationDate)
	assert.Equal(t, PriorityHigh, got.Priority)
	m.AssertExpectations(t)
}

func TestClient_RequestShape(t *testing.T) {
	c, m := newMockClient(t)
	m.SetResponse(http.MethodPost, objectURL("a b/c", "add"), []byte(`{"uid":"u1","payload":"{\"v\":\"hello\"}"}`))

	got, err := AddObject(context.Background(), c, "a b/c", "hello", AsType[string]())
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	reqs := m.GetRequests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "https://cloud.test/3/data/enterprise/object/a%20b%2Fc/add", reqs[0].URL)
	assert.Equal(t, "Gluon "+testServerKey, reqs[0].Header.Get("Authorization"))
	assert.Equal(t, "application/json", reqs[0].Header.Get("Accept"))

	form, err := url.ParseQuery(string(reqs[0].Body))
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":"hello"}`, form.Get("payload"))
}

// TestClient_ServiceErrors 2xx가 아닌 응답이 모든 작업에서 *ClientError로 전달되는지 검증합니다.
func TestClient_ServiceErrors(t *testing.T) {
	ctx := context.Background()
	dec := AsType[note]()
	target := note{Title: "x"}

	tests := []struct {
		name   string
		method string
		url    string
		op     string
		call   func(c *Client) error
	}{
		{"addObject", http.MethodPost, objectURL("a", "add"), opAddObject, func(c *Client) error {
			_, err := AddObject(ctx, c, "a", target, dec)
			return err
		}},
		{"getObject", http.MethodGet, objectURL("a", ""), opGetObject, func(c *Client) error {
			_, err := GetObject(ctx, c, "a", dec)
			return err
		}},
		{"updateObject", http.MethodPost, objectURL("a", "update"), opUpdateObject, func(c *Client) error {
			_, err := UpdateObject(ctx, c, "a", target, dec)
			return err
		}},
		{"removeObject", http.MethodPost, objectURL("a", "remove"), opRemoveObject, func(c *Client) error {
			return c.RemoveObject(ctx, "a")
		}},
		{"getList", http.MethodGet, listURL("l", "", ""), opGetList, func(c *Client) error {
			_, err := GetList(ctx, c, "l", dec)
			return err
		}},
		{"addToList", http.MethodPost, listURL("l", "add", "a"), opAddToList, func(c *Client) error {
			_, err := AddToList(ctx, c, "l", "a", target, dec)
			return err
		}},
		{"updateInList", http.MethodPost, listURL("l", "update", "a"), opUpdateInList, func(c *Client) error {
			_, err := UpdateInList(ctx, c, "l", "a", target, dec)
			return err
		}},
		{"removeFromList", http.MethodPost, listURL("l", "remove", "a"), opRemoveFromList, func(c *Client) error {
			return c.RemoveFromList(ctx, "l", "a")
		}},
		{"sendPushNotification", http.MethodPost, testBaseURL + pushNotificationPath, opSendPushNotification, func(c *Client) error {
			_, err := c.SendPushNotification(ctx, NewPushNotification("t", "b"))
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newMockClient(t)
			m.SetResponseWithStatus(tt.method, tt.url, []byte(`{"error":"object store unavailable"}`), http.StatusNotFound)

			err := tt.call(c)
			require.Error(t, err)

			var ce *ClientError
			require.True(t, errors.As(err, &ce), "ClientError여야 합니다: %v", err)
			assert.Equal(t, http.StatusNotFound, ce.StatusCode)
			assert.Equal(t, `{"error":"object store unavailable"}`, ce.Body)
			assert.Equal(t, tt.op, ce.Operation)
			assert.True(t, apperrors.Is(err, apperrors.NotFound))
			assert.Equal(t, 1, m.GetCallCount())
		})
	}
}

func TestClient_ServiceErrors_LargeBody(t *testing.T) {
	big := strings.Repeat("x", 10000)

	c, m := newMockClient(t)
	m.SetResponseWithStatus(http.MethodGet, objectURL("a", ""), []byte(big), http.StatusInternalServerError)

	_, err := GetObject(context.Background(), c, "a", AsType[note]())

	var ce *ClientError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, big, ce.Body, "서비스가 돌려준 본문이 잘리지 않아야 합니다")
	assert.Less(t, len(ce.Error()), len(big), "에러 메시지에는 본문의 앞부분만 포함되어야 합니다")
}

func TestClient_TransportErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("네트워크 에러", func(t *testing.T) {
		c, m := newMockClient(t)
		m.SetError(http.MethodGet, objectURL("a", ""), errors.New("connection refused"))

		_, err := GetObject(ctx, c, "a", AsType[note]())
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))

		var ce *ClientError
		assert.False(t, errors.As(err, &ce))
	})

	t.Run("타임아웃", func(t *testing.T) {
		c, m := newMockClient(t)
		m.SetError(http.MethodGet, objectURL("a", ""), context.DeadlineExceeded)

		_, err := GetObject(ctx, c, "a", AsType[note]())
		assert.True(t, apperrors.Is(err, apperrors.Timeout))
	})

	t.Run("해석할 수 없는 응답", func(t *testing.T) {
		c, m := newMockClient(t)
		m.SetResponse(http.MethodGet, objectURL("a", ""), []byte(`<html>`))

		_, err := GetObject(ctx, c, "a", AsType[note]())
		assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
	})

	t.Run("해석할 수 없는 페이로드", func(t *testing.T) {
		c, m := newMockClient(t)
		m.SetResponse(http.MethodGet, objectURL("a", ""), []byte(`{"uid":"1","payload":"[1,2"}`))

		_, err := GetObject(ctx, c, "a", AsType[note]())
		assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
	})
}

func TestClient_AbsentResults(t *testing.T) {
	ctx := context.Background()
	c, m := newMockClient(t)
	m.SetResponse(http.MethodGet, objectURL("missing", ""), []byte(`{}`))
	m.SetResponse(http.MethodPost, objectURL("missing", "update"), []byte(`{"uid":null,"payload":null}`))
	m.SetResponse(http.MethodPost, listURL("l", "update", "missing"), []byte(`{"uid":""}`))
	m.SetResponse(http.MethodGet, listURL("empty", "", ""), []byte(`[]`))
	m.SetResponse(http.MethodGet, listURL("null", "", ""), []byte(`null`))

	got, err := GetObject(ctx, c, "missing", AsType[note]())
	require.NoError(t, err)
	assert.False(t, got.IsPresent())

	upd, err := UpdateObject(ctx, c, "missing", note{}, AsType[note]())
	require.NoError(t, err)
	assert.False(t, upd.IsPresent())

	inList, err := UpdateInList(ctx, c, "l", "missing", "v", AsType[string]())
	require.NoError(t, err)
	assert.False(t, inList.IsPresent())

	for _, id := range []string{"empty", "null"} {
		items, err := GetList(ctx, c, id, AsType[note]())
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	}
}

func TestClient_GetList_PreservesOrderAndUsesMapper(t *testing.T) {
	c, m := newMockClient(t)
	m.SetResponse(http.MethodGet, listURL("l", "", ""), []byte(`[
		{"uid":"3","payload":"{\"title\":\"c\"}"},
		{"uid":"1","payload":"{\"title\":\"a\"}"},
		{"uid":"2","payload":"{\"title\":\"b\"}"}
	]`))

	uids, err := GetList(context.Background(), c, "l", MapWith(func(d ObjectData) (string, error) {
		return d.UID, nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "2"}, uids)

	notes, err := GetList(context.Background(), c, "l", AsType[note]())
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{notes[0].Title, notes[1].Title, notes[2].Title})
}
