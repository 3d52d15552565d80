package prompts

import "strings"

// Префиксы-ярлыки, которые модель любит добавлять перед вопросом
var questionPrefixes = []string{
	"Follow-up question:",
	"Follow-up:",
	"Here's a question:",
	"Here's the question:",
	"Question:",
	"Q:",
}

// Маркеры списков в сгенерированной обратной связи
var bulletMarkers = []string{"-", "•", "*", "1.", "2.", "3.", "4.", "5."}

// StripQuestionPrefix убирает ярлык в начале сгенерированного вопроса
func StripQuestionPrefix(question string) string {
	q := strings.TrimSpace(question)
	for _, prefix := range questionPrefixes {
		if len(q) >= len(prefix) && strings.EqualFold(q[:len(prefix)], prefix) {
			return strings.TrimSpace(q[len(prefix):])
		}
	}
	return q
}

// ParseFeedbackBullets разбирает сгенерированный текст обратной связи
// на отдельные пункты, убирая маркеры списков. Если ни одного пункта
// выделить не удалось, весь текст возвращается одним пунктом.
func ParseFeedbackBullets(text string) []string {
	text = strings.TrimSpace(text)

	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, marker := range bulletMarkers {
			if strings.HasPrefix(line, marker) {
				line = strings.TrimSpace(line[len(marker):])
				break
			}
		}
		if line != "" {
			bullets = append(bullets, line)
		}
	}

	if len(bullets) == 0 && text != "" {
		bullets = []string{text}
	}

	return bullets
}
