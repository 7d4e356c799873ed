package services

import (
	"context"

	"kiosk/dto"
	"kiosk/models"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Notifier được gọi sau mỗi lượt check-in thành công
type Notifier interface {
	Notify(ctx context.Context, record *models.CheckinRecord) error
}

// FeedNotifier broadcast lượt check-in tới các màn hình lễ tân đang mở /ws.
// Chỉ gửi tên và thời điểm, không gửi số điện thoại hay ảnh.
type FeedNotifier struct {
	m *melody.Melody
}

func NewFeedNotifier(m *melody.Melody) *FeedNotifier {
	return &FeedNotifier{m: m}
}

func NewCheckinEvent(record *models.CheckinRecord) dto.CheckinEvent {
	return dto.CheckinEvent{
		Type:      "checkin",
		Name:      record.Name,
		Timestamp: record.Timestamp,
	}
}

func (n *FeedNotifier) Notify(_ context.Context, record *models.CheckinRecord) error {
	message, err := json.Marshal(NewCheckinEvent(record))
	if err != nil {
		return err
	}
	return n.m.Broadcast(message)
}
