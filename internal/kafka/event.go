package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/top_products/internal/domain"
)

// ErrInvalidEvent — сообщение не разбирается как событие обновления; повторять бессмысленно.
var ErrInvalidEvent = errors.New("invalid refresh event")

// RefreshedEvent — событие «закоммичено новое поколение рейтинга».
type RefreshedEvent struct {
	Generation time.Time `json:"generation"`
	Count      int       `json:"count"`
	Strategy   string    `json:"strategy,omitempty"`
}

// NewRefreshedEvent — событие по итогам успешного обновления.
func NewRefreshedEvent(r domain.RefreshReport) RefreshedEvent {
	return RefreshedEvent{Generation: r.Generation.UTC(), Count: r.Count, Strategy: r.Strategy}
}

// DecodeRefreshedEvent — разбор и проверка полезной нагрузки.
func DecodeRefreshedEvent(raw []byte) (RefreshedEvent, error) {
	var ev RefreshedEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return RefreshedEvent{}, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	// пустой рейтинг допустим, но метка поколения есть всегда
	if ev.Generation.IsZero() {
		return RefreshedEvent{}, fmt.Errorf("%w: generation is required", ErrInvalidEvent)
	}
	if ev.Count < 0 {
		return RefreshedEvent{}, fmt.Errorf("%w: negative count %d", ErrInvalidEvent, ev.Count)
	}
	return ev, nil
}
