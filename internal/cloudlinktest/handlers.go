package cloudlinktest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"
)

// Push 가짜 서버가 수신하여 보관한 푸시 알림입니다.
type Push struct {
	ID               string     `json:"identifier"`
	CreationDate     int64      `json:"creationDate"`
	CustomIdentifier string     `json:"customIdentifier,omitempty"`
	Title            string     `json:"title"`
	Body             string     `json:"body"`
	DeliveryDate     int64      `json:"deliveryDate"`
	Priority         string     `json:"priority"`
	ExpirationType   string     `json:"expirationType"`
	ExpirationAmount int        `json:"expirationAmount"`
	Target           PushTarget `json:"target"`
	Invisible        bool       `json:"invisible"`
}

type PushTarget struct {
	Type        string `json:"type"`
	Topic       string `json:"topic,omitempty"`
	DeviceToken string `json:"deviceToken,omitempty"`
}

func (s *Server) handleSendPushNotification(c echo.Context) error {
	title := c.FormValue("title")
	body := c.FormValue("body")
	if title == "" || body == "" {
		return c.String(http.StatusBadRequest, "title and body are required")
	}

	p := Push{
		ID:               uuid.NewString(),
		CreationDate:     time.Now().UnixMilli(),
		CustomIdentifier: c.FormValue("customIdentifier"),
		Title:            title,
		Body:             body,
		Priority:         c.FormValue("priority"),
		ExpirationType:   c.FormValue("expirationType"),
		Target: PushTarget{
			Type:        c.FormValue("targetType"),
			Topic:       c.FormValue("targetTopic"),
			DeviceToken: c.FormValue("targetDeviceToken"),
		},
	}

	var err error
	if p.DeliveryDate, err = parseInt64(c.FormValue("deliveryDate")); err != nil {
		return c.String(http.StatusBadRequest, "invalid deliveryDate")
	}
	amount, err := parseInt64(c.FormValue("expirationAmount"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid expirationAmount")
	}
	p.ExpirationAmount = int(amount)
	if v := c.FormValue("invisible"); v != "" {
		if p.Invisible, err = strconv.ParseBool(v); err != nil {
			return c.String(http.StatusBadRequest, "invalid invisible")
		}
	}

	s.mu.Lock()
	s.pushes = append(s.pushes, p)
	s.mu.Unlock()

	return c.JSON(http.StatusOK, p)
}

func parseInt64(v string) (int64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

// formPayload 요청 본문에서 payload 필드를 읽고, 올바른 JSON인지 확인합니다.
func formPayload(c echo.Context) (string, bool) {
	payload := c.FormValue("payload")
	if payload == "" || !gjson.Valid(payload) {
		return "", false
	}
	return payload, true
}

func (s *Server) handleGetObject(c echo.Context) error {
	id := pathParam(c, "objectId")

	s.mu.RLock()
	data := s.objects[id]
	s.mu.RUnlock()

	return c.JSON(http.StatusOK, data)
}

func (s *Server) handleAddObject(c echo.Context) error {
	id := pathParam(c, "objectId")
	payload, ok := formPayload(c)
	if !ok {
		return c.String(http.StatusBadRequest, "payload must be valid JSON")
	}

	s.mu.Lock()
	data, exists := s.objects[id]
	if !exists {
		data.UID = uuid.NewString()
	}
	data.Payload = payload
	s.objects[id] = data
	s.mu.Unlock()

	return c.JSON(http.StatusOK, data)
}

func (s *Server) handleUpdateObject(c echo.Context) error {
	id := pathParam(c, "objectId")
	payload, ok := formPayload(c)
	if !ok {
		return c.String(http.StatusBadRequest, "payload must be valid JSON")
	}

	s.mu.Lock()
	data, exists := s.objects[id]
	if exists {
		data.Payload = payload
		s.objects[id] = data
	}
	s.mu.Unlock()

	return c.JSON(http.StatusOK, data)
}

func (s *Server) handleRemoveObject(c echo.Context) error {
	id := pathParam(c, "objectId")

	s.mu.Lock()
	delete(s.objects, id)
	s.mu.Unlock()

	return c.NoContent(http.StatusOK)
}

func (s *Server) handleGetList(c echo.Context) error {
	listID := pathParam(c, "listId")

	s.mu.RLock()
	entries := s.lists[listID]
	out := make([]objectData, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.data)
	}
	s.mu.RUnlock()

	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleAddToList(c echo.Context) error {
	listID := pathParam(c, "listId")
	objectID := pathParam(c, "objectId")
	payload, ok := formPayload(c)
	if !ok {
		return c.String(http.StatusBadRequest, "payload must be valid JSON")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.lists[listID]
	for i := range entries {
		if entries[i].objectID == objectID {
			entries[i].data.Payload = payload
			return c.JSON(http.StatusOK, entries[i].data)
		}
	}

	entry := listEntry{
		objectID: objectID,
		data:     objectData{UID: uuid.NewString(), Payload: payload},
	}
	s.lists[listID] = append(entries, entry)

	return c.JSON(http.StatusOK, entry.data)
}

func (s *Server) handleUpdateInList(c echo.Context) error {
	listID := pathParam(c, "listId")
	objectID := pathParam(c, "objectId")
	payload, ok := formPayload(c)
	if !ok {
		return c.String(http.StatusBadRequest, "payload must be valid JSON")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.lists[listID]
	for i := range entries {
		if entries[i].objectID == objectID {
			entries[i].data.Payload = payload
			return c.JSON(http.StatusOK, entries[i].data)
		}
	}

	return c.JSON(http.StatusOK, objectData{})
}

func (s *Server) handleRemoveFromList(c echo.Context) error {
	listID := pathParam(c, "listId")
	objectID := pathParam(c, "objectId")

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.lists[listID]
	for i := range entries {
		if entries[i].objectID == objectID {
			s.lists[listID] = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}

	return c.NoContent(http.StatusOK)
}
