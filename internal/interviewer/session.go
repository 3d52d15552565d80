package interviewer

import (
	"time"

	"github.com/google/uuid"
)

// Роли реплик в истории интервью
const (
	RoleInterviewer = "interviewer"
	RoleCandidate   = "candidate"
)

// HistoryEntry — одна реплика диалога. История append-only:
// записи никогда не изменяются и не переупорядочиваются.
type HistoryEntry struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Session — состояние одного интервью. Живет от старта до команды
// завершения или сброса со стороны UI; между сессиями ничего не разделяется.
type Session struct {
	ID                  string
	Role                string
	History             []HistoryEntry
	FollowupCount       int
	PersonaCaseCounter  map[PersonaCase]int
	CurrentMainQuestion string
	Finished            bool
	CreatedAt           time.Time
	LastActivity        time.Time

	// Основные вопросы отдельно от истории: контекст против повторов
	// строится только по ним, без уточняющих
	mainQuestions []string
}

// NewSession создает пустую сессию для указанной роли
func NewSession(role string) *Session {
	now := time.Now()
	return &Session{
		ID:                 uuid.New().String(),
		Role:               role,
		History:            []HistoryEntry{},
		PersonaCaseCounter: make(map[PersonaCase]int),
		CreatedAt:          now,
		LastActivity:       now,
	}
}

func (s *Session) appendHistory(role, text string) {
	s.History = append(s.History, HistoryEntry{Role: role, Text: text})
	s.LastActivity = time.Now()
}

// LastQuestion возвращает последнюю реплику интервьюера
// (основной вопрос или уточняющий), либо пустую строку
func (s *Session) LastQuestion() string {
	for i := len(s.History) - 1; i >= 0; i-- {
		if s.History[i].Role == RoleInterviewer {
			return s.History[i].Text
		}
	}
	return ""
}

// recentMainQuestions возвращает до n последних основных вопросов
func (s *Session) recentMainQuestions(n int) []string {
	if len(s.mainQuestions) <= n {
		return s.mainQuestions
	}
	return s.mainQuestions[len(s.mainQuestions)-n:]
}

// recentContext возвращает до n последних реплик диалога в текстовом виде
func (s *Session) recentContext(n int) []string {
	start := len(s.History) - n
	if start < 0 {
		start = 0
	}

	var context []string
	for _, entry := range s.History[start:] {
		switch entry.Role {
		case RoleInterviewer:
			context = append(context, "Interviewer: "+entry.Text)
		case RoleCandidate:
			context = append(context, "Candidate: "+entry.Text)
		}
	}
	return context
}

// TurnResult — результат обработки одного ответа кандидата
type TurnResult struct {
	Followup string         `json:"followup,omitempty"`
	Feedback []string       `json:"feedback"`
	History  []HistoryEntry `json:"history"`
	Finished bool           `json:"finished"`
}
