package storage

import "interview-practice-partner/internal/interviewer"

// InterviewResult представляет сохраняемый результат интервью
type InterviewResult struct {
	InterviewID  string                      `json:"interview_id"`
	Role         string                      `json:"role"`
	Timestamp    string                      `json:"timestamp"`
	History      []interviewer.HistoryEntry  `json:"history"`
	PersonaCases map[string]int              `json:"persona_cases,omitempty"`
}
