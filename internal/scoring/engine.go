package scoring

import (
	"strings"

	"interview-practice-partner/internal/config"
)

// Score — три оценки ответа по шкале 1-5
type Score struct {
	Communication int `json:"communication"`
	Depth         int `json:"depth"`
	Relevance     int `json:"relevance"`
}

// ComputeScores вычисляет оценки ответа по рубрике.
// Чистая функция: без состояния и внешних вызовов.
func ComputeScores(answer string, rubric *config.Rubric) Score {
	// Пустой ответ — безусловный минимум, остальная логика не выполняется
	if strings.TrimSpace(answer) == "" {
		return Score{Communication: 1, Depth: 1, Relevance: 1}
	}

	tokens := strings.Fields(answer)
	n := len(tokens)

	shortAnswerTokens := rubric.GetShortAnswerTokens()
	goodDepthMatches := rubric.GetGoodDepthMatches()

	// Communication: длина и выразительность ответа
	var comm int
	if n >= shortAnswerTokens {
		if n >= 40 {
			comm = 5
		} else {
			comm = 4
		}
	} else {
		if n >= 5 {
			comm = 2
		} else {
			comm = 1
		}
	}

	// Depth: совпадения ключевых слов, каждое ключевое слово считается один раз
	matches := countDepthMatches(answer, rubric.DepthKeywords)

	var depth int
	switch {
	case matches >= goodDepthMatches+2:
		depth = 5
	case matches >= goodDepthMatches:
		depth = 4
	case matches >= 1:
		depth = 3
	default:
		depth = 1
	}

	// Relevance: база 3, понижение за короткий ответ,
	// затем бонус за ключевые слова (после понижения, не вместо него)
	relevance := 3
	if n < shortAnswerTokens {
		relevance = 2
	}
	if matches >= 1 {
		relevance++
		if relevance > 5 {
			relevance = 5
		}
	}

	// Финальный защитный clamp — обязательный инвариант
	return Score{
		Communication: clamp(comm),
		Depth:         clamp(depth),
		Relevance:     clamp(relevance),
	}
}

// countDepthMatches считает число ключевых слов рубрики, встречающихся
// в ответе как подстрока без учета регистра. Повторы одного ключевого
// слова не увеличивают счетчик.
func countDepthMatches(answer string, keywords []string) int {
	lowered := strings.ToLower(answer)

	matches := 0
	for _, kw := range keywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			matches++
		}
	}
	return matches
}

// ScoresToFeedback превращает оценки в ровно 3 пункта обратной связи
// в фиксированном порядке: communication, depth, relevance.
// Полностью детерминировано для данных score и rubric.
func ScoresToFeedback(score Score, rubric *config.Rubric) []string {
	bullets := make([]string, 0, 3)

	// Communication
	switch {
	case score.Communication >= 4:
		bullets = append(bullets, "Strong communication — clear and structured.")
	case score.Communication == 3:
		bullets = append(bullets, "Good clarity; could benefit from slightly more structure (use STAR method).")
	default:
		bullets = append(bullets, rubric.Messages.StructureTip)
	}

	// Depth
	switch {
	case score.Depth >= 4:
		bullets = append(bullets, "Good technical depth — strong use of concepts and trade-offs.")
	case score.Depth == 3:
		bullets = append(bullets, "Some technical details present; add more specifics like components or metrics.")
	default:
		bullets = append(bullets, rubric.Messages.DetailTip)
	}

	// Relevance
	switch {
	case score.Relevance >= 4:
		bullets = append(bullets, "Answer was highly relevant and on point.")
	case score.Relevance == 3:
		bullets = append(bullets, "Mostly relevant — try tying each statement directly to the question.")
	default:
		bullets = append(bullets, rubric.Messages.OnTopicTip)
	}

	return bullets
}

func clamp(x int) int {
	if x < 1 {
		return 1
	}
	if x > 5 {
		return 5
	}
	return x
}
