package server

import "interview-practice-partner/internal/interviewer"

// StartRequest — тело запроса на старт интервью
type StartRequest struct {
	Role string `json:"role"`
}

// StartResponse — созданная сессия и первый вопрос
type StartResponse struct {
	InterviewID string `json:"interview_id"`
	Question    string `json:"question"`
}

// AnswerRequest — ответ кандидата на текущий вопрос
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// TurnResponse — результат хода; followup равен null,
// когда уточняющего вопроса нет
type TurnResponse struct {
	Followup *string  `json:"followup"`
	Feedback []string `json:"feedback"`
	Finished bool     `json:"finished"`
}

// QuestionResponse — следующий основной вопрос
type QuestionResponse struct {
	Question string `json:"question"`
}

// StatusResponse — текущее состояние сессии
type StatusResponse struct {
	InterviewID   string                     `json:"interview_id"`
	Role          string                     `json:"role"`
	Finished      bool                       `json:"finished"`
	FollowupCount int                        `json:"followup_count"`
	History       []interviewer.HistoryEntry `json:"history"`
}

// ErrorResponse — тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
