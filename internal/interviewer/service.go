package interviewer

import (
	"fmt"
	"log"

	"interview-practice-partner/internal/config"
	"interview-practice-partner/internal/llm"
	"interview-practice-partner/internal/metrics"
	"interview-practice-partner/internal/prompts"
	"interview-practice-partner/internal/scoring"
)

// Generator — граница внешнего сервиса генерации текста.
// Реализуется llm.Client; в тестах подменяется фейком.
type Generator interface {
	Enabled() bool
	Generate(prompt string, maxTokens int, temperature float64) (string, error)
}

// Параметры генерации по типам запросов
const (
	questionMaxTokens   = 100
	followupMaxTokens   = 120
	feedbackMaxTokens   = 300
	questionTemperature = 0.7
	followupTemperature = 0.7
	feedbackTemperature = 0.5

	maxFollowupsPerQuestion = 2
	recentMainQuestionLimit = 3
	recentContextLimit      = 4
	maxFeedbackBullets      = 5
	minFollowupLength       = 10
)

// Service представляет сервис интервьюера
type Service struct {
	generator Generator
	rubric    *config.Rubric
	metrics   *metrics.Metrics
}

// New создает новый сервис интервьюера
func New(generator Generator, rubric *config.Rubric, m *metrics.Metrics) *Service {
	return &Service{
		generator: generator,
		rubric:    rubric,
		metrics:   m,
	}
}

// StartInterview создает новую сессию и генерирует первый вопрос
func (s *Service) StartInterview(role string) (*Session, string, error) {
	sess := NewSession(role)

	question, err := s.NextQuestion(sess)
	if err != nil {
		return nil, "", err
	}

	s.metrics.IncrementInterviewsStarted()
	return sess, question, nil
}

// ProcessAnswer обрабатывает один ответ кандидата.
// Порядок ходов фиксированный: команда завершения, затем вырожденный
// ответ, затем обычный путь с обратной связью и уточняющим вопросом.
func (s *Service) ProcessAnswer(sess *Session, answer, questionText string) *TurnResult {
	if IsEndCommand(answer) {
		sess.appendHistory(RoleCandidate, answer)
		sess.Finished = true
		s.metrics.IncrementInterviewsFinished()
		return &TurnResult{
			Feedback: []string{"Interview ended at your request."},
			History:  sess.History,
			Finished: true,
		}
	}

	sess.appendHistory(RoleCandidate, answer)
	s.metrics.IncrementAnswersProcessed()

	if personaCase := DetectPersonaCase(answer); personaCase != PersonaNone {
		sess.PersonaCaseCounter[personaCase]++
		s.metrics.IncrementPersonaCase(string(personaCase))

		nudge := personaNudges[personaCase]
		if (personaCase == PersonaConfused || personaCase == PersonaChatty) &&
			sess.PersonaCaseCounter[personaCase] > 1 {
			nudge += escalationSuffix
		}

		sess.appendHistory(RoleInterviewer, nudge)

		// Скоринг на вырожденном ответе не выполняется
		return &TurnResult{
			Followup: nudge,
			Feedback: []string{"Provide a more complete answer to get valuable feedback!"},
			History:  sess.History,
		}
	}

	feedback := s.generateFeedback(sess, answer, questionText)
	followup := s.generateFollowup(sess, answer, questionText)

	return &TurnResult{
		Followup: followup,
		Feedback: feedback,
		History:  sess.History,
	}
}

// NextQuestion генерирует следующий основной вопрос.
// Детерминированного fallback здесь нет: без настроенного генератора
// операция завершается ошибкой, история при этом не меняется.
func (s *Service) NextQuestion(sess *Session) (string, error) {
	if !s.generator.Enabled() {
		return "", fmt.Errorf("генерация вопросов недоступна: %w", llm.ErrNotConfigured)
	}

	prompt := prompts.BuildQuestionPrompt(sess.Role, sess.recentMainQuestions(recentMainQuestionLimit))

	raw, err := s.generator.Generate(prompt, questionMaxTokens, questionTemperature)
	if err != nil {
		s.metrics.IncrementGenerationError()
		return "", fmt.Errorf("ошибка генерации вопроса: %w", err)
	}

	question := prompts.StripQuestionPrefix(raw)
	if question == "" {
		s.metrics.IncrementGenerationError()
		return "", fmt.Errorf("ошибка генерации вопроса: %w", llm.ErrEmptyResult)
	}

	sess.FollowupCount = 0
	sess.CurrentMainQuestion = question
	sess.mainQuestions = append(sess.mainQuestions, question)
	sess.appendHistory(RoleInterviewer, question)
	s.metrics.IncrementQuestionsGenerated()

	return question, nil
}

// generateFeedback возвращает пункты обратной связи по ответу.
// Сбой генерации здесь всегда восстановим: детерминированный движок
// обязателен как fallback, наружу ошибка не выходит.
func (s *Service) generateFeedback(sess *Session, answer, questionText string) []string {
	if !s.generator.Enabled() {
		return s.fallbackFeedback(answer)
	}

	prompt := prompts.BuildFeedbackPrompt(sess.Role, questionText, answer)

	text, err := s.generator.Generate(prompt, feedbackMaxTokens, feedbackTemperature)
	if err != nil {
		log.Printf("Генерация обратной связи не удалась, переходим на рубрику: %v", err)
		s.metrics.IncrementGenerationError()
		return s.fallbackFeedback(answer)
	}

	bullets := prompts.ParseFeedbackBullets(text)
	if len(bullets) == 0 {
		log.Printf("Генерация обратной связи вернула пустой результат, переходим на рубрику")
		s.metrics.IncrementGenerationError()
		return s.fallbackFeedback(answer)
	}

	if len(bullets) > maxFeedbackBullets {
		bullets = bullets[:maxFeedbackBullets]
	}
	return bullets
}

// fallbackFeedback — детерминированная обратная связь по рубрике
func (s *Service) fallbackFeedback(answer string) []string {
	s.metrics.IncrementFallbackFeedback()
	score := scoring.ComputeScores(answer, s.rubric)
	return scoring.ScoresToFeedback(score, s.rubric)
}

// generateFollowup пытается получить уточняющий вопрос. Best-effort:
// любая ошибка логируется и деградирует до отсутствия уточнения,
// ход кандидата из-за нее не ломается.
func (s *Service) generateFollowup(sess *Session, answer, questionText string) string {
	if !s.generator.Enabled() {
		return ""
	}

	// Не больше двух уточнений на основной вопрос
	if sess.FollowupCount >= maxFollowupsPerQuestion {
		return ""
	}

	prompt := prompts.BuildFollowupPrompt(sess.Role, questionText, answer, sess.recentContext(recentContextLimit))

	raw, err := s.generator.Generate(prompt, followupMaxTokens, followupTemperature)
	if err != nil {
		log.Printf("Генерация уточняющего вопроса не удалась: %v", err)
		s.metrics.IncrementGenerationError()
		return ""
	}

	followup := prompts.StripQuestionPrefix(raw)
	if len(followup) <= minFollowupLength {
		// Слишком короткий текст вопросом не считаем
		return ""
	}

	sess.FollowupCount++
	sess.appendHistory(RoleInterviewer, followup)
	s.metrics.IncrementFollowupsGenerated()

	return followup
}
