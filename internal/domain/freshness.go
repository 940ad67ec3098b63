package domain

import "time"

// Freshness — классификация поколения кэша относительно окна свежести.
type Freshness int

const (
	FreshnessEmpty Freshness = iota // строк нет
	FreshnessFresh                  // поколение не старше окна
	FreshnessStale                  // поколение старше окна
)

// Сообщения клиенту для каждого состояния.
const (
	MessageEmpty = "No top products available"
	MessageFresh = "Top products retrieved successfully"
	MessageStale = "Top products data may be outdated"
)

// String — имя состояния (для логов и меток метрик).
func (f Freshness) String() string {
	switch f {
	case FreshnessFresh:
		return "fresh"
	case FreshnessStale:
		return "stale"
	default:
		return "empty"
	}
}

// Message — человекочитаемый статус для ответа.
func (f Freshness) Message() string {
	switch f {
	case FreshnessFresh:
		return MessageFresh
	case FreshnessStale:
		return MessageStale
	default:
		return MessageEmpty
	}
}

// Classify — определяет свежесть поколения.
// Пустое поколение → Empty; возраст больше window → Stale; иначе Fresh
// (метка из будущего при рассинхроне часов считается свежей).
func Classify(g Generation, now time.Time, window time.Duration) Freshness {
	if g.Empty() {
		return FreshnessEmpty
	}
	if now.Sub(g.UpdatedAt) > window {
		return FreshnessStale
	}
	return FreshnessFresh
}
