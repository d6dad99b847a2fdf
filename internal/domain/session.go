package domain

import "time"

// DialogueState шаг диалога сбора данных рождения
type DialogueState int

const (
	StateAwaitingDate DialogueState = iota
	StateAwaitingTime
	StateAwaitingPlace
	StateAwaitingConfirmation
)

func (s DialogueState) String() string {
	switch s {
	case StateAwaitingDate:
		return "awaiting_date"
	case StateAwaitingTime:
		return "awaiting_time"
	case StateAwaitingPlace:
		return "awaiting_place"
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	default:
		return "unknown"
	}
}

// Session данные одного диалога, принадлежат одному чату
type Session struct {
	ChatID    int64
	State     DialogueState
	Birth     BirthInput
	Place     *ResolvedPlace // заполняется на шаге места
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession начинает диалог с шага даты
func NewSession(chatID int64, now time.Time) *Session {
	return &Session{
		ChatID:    chatID,
		State:     StateAwaitingDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Restart единственное обратное ребро: Edit -> AwaitingDate
func (s *Session) Restart(now time.Time) {
	s.State = StateAwaitingDate
	s.Birth = BirthInput{}
	s.Place = nil
	s.UpdatedAt = now
}

// Advance переводит диалог в следующее состояние
func (s *Session) Advance(next DialogueState, now time.Time) {
	s.State = next
	s.UpdatedAt = now
}
