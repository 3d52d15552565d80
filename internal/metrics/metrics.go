package metrics

import (
	"sync"
	"time"
)

// Metrics — счетчики процесса; единственное состояние, разделяемое
// между сессиями, поэтому под собственным локом
type Metrics struct {
	mu sync.RWMutex

	interviewsStarted  int64
	interviewsFinished int64
	answersProcessed   int64
	questionsGenerated int64
	followupsGenerated int64
	fallbackFeedback   int64
	generationErrors   int64
	personaCases       map[string]int64
	lastUpdateTime     time.Time
}

// Snapshot — копия счетчиков для отдачи наружу
type Snapshot struct {
	InterviewsStarted  int64            `json:"interviews_started"`
	InterviewsFinished int64            `json:"interviews_finished"`
	AnswersProcessed   int64            `json:"answers_processed"`
	QuestionsGenerated int64            `json:"questions_generated"`
	FollowupsGenerated int64            `json:"followups_generated"`
	FallbackFeedback   int64            `json:"fallback_feedback"`
	GenerationErrors   int64            `json:"generation_errors"`
	PersonaCases       map[string]int64 `json:"persona_cases"`
	LastUpdateTime     time.Time        `json:"last_update_time"`
}

func New() *Metrics {
	return &Metrics{
		personaCases:   make(map[string]int64),
		lastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementInterviewsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interviewsStarted++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementInterviewsFinished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interviewsFinished++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAnswersProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answersProcessed++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementQuestionsGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questionsGenerated++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementFollowupsGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.followupsGenerated++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementFallbackFeedback() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbackFeedback++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementGenerationError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generationErrors++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementPersonaCase(label string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.personaCases[label]++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cases := make(map[string]int64, len(m.personaCases))
	for label, count := range m.personaCases {
		cases[label] = count
	}

	return Snapshot{
		InterviewsStarted:  m.interviewsStarted,
		InterviewsFinished: m.interviewsFinished,
		AnswersProcessed:   m.answersProcessed,
		QuestionsGenerated: m.questionsGenerated,
		FollowupsGenerated: m.followupsGenerated,
		FallbackFeedback:   m.fallbackFeedback,
		GenerationErrors:   m.generationErrors,
		PersonaCases:       cases,
		LastUpdateTime:     m.lastUpdateTime,
	}
}
