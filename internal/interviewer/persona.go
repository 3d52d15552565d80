package interviewer

import "strings"

// PersonaCase — вырожденный паттерн ответа, который перехватывается
// до скоринга и получает наводящую реплику вместо оценки
type PersonaCase string

const (
	PersonaEmpty    PersonaCase = "EMPTY"
	PersonaIDK      PersonaCase = "IDK"
	PersonaTooShort PersonaCase = "TOO_SHORT"
	PersonaConfused PersonaCase = "CONFUSED"
	PersonaChatty   PersonaCase = "CHATTY"
	PersonaNone     PersonaCase = ""
)

// Команды завершения интервью; сравнение без регистра,
// допускается один завершающий знак препинания
var endPhrases = map[string]struct{}{
	"end":                 {},
	"end interview":       {},
	"stop":                {},
	"stop interview":      {},
	"quit":                {},
	"exit":                {},
	"finish":              {},
	"finish interview":    {},
	"terminate":           {},
	"terminate interview": {},
}

// Варианты "не знаю"; точное совпадение без регистра
var idkPhrases = map[string]struct{}{
	"idk":          {},
	"i don’t know": {},
	"i dont know":  {},
	"don't know":   {},
	"dont know":    {},
	"no idea":      {},
}

// Подстроки, сигнализирующие о растерянности кандидата
var confusedPhrases = []string{
	"help",
	"what do i do",
	"how does this work",
	"instructions",
	"explain",
	"lost",
	"don’t understand",
	"dont understand",
	"not sure",
	"confused",
}

// Приветственные фразы: ответ начинается с них или совпадает целиком
var chattyPhrases = []string{
	"hello",
	"hi",
	"what's your name",
	"how are you",
	"good morning",
	"good afternoon",
	"good evening",
}

// Наводящие реплики по типу вырожденного ответа
var personaNudges = map[PersonaCase]string{
	PersonaEmpty:    "Don't worry, just give your best try—even a short answer helps!",
	PersonaIDK:      "It's okay if you don't know. Take a guess or try to explain your thinking!",
	PersonaTooShort: "Could you add a bit more detail to your answer? You'll get better feedback that way!",
	PersonaConfused: "Just answer as best you can—there's no penalty for mistakes!",
	PersonaChatty:   "Let's focus on the interview questions; practice will help you improve!",
}

// Суффикс эскалации при повторных CONFUSED/CHATTY в рамках сессии
const escalationSuffix = " (Try to give an answer to keep the practice going!)"

// IsEndCommand сообщает, является ли текст командой завершения интервью.
// Пустой текст командой не считается.
func IsEndCommand(text string) bool {
	if text == "" {
		return false
	}

	normalized := strings.ToLower(strings.TrimSpace(text))
	if _, ok := endPhrases[normalized]; ok {
		return true
	}

	// Допускаем варианты вида "end." или "quit!"
	normalized = strings.TrimRight(normalized, ".!?,")
	_, ok := endPhrases[normalized]
	return ok
}

// DetectPersonaCase классифицирует вырожденный ответ. Проверки идут в
// строгом порядке приоритета, первое совпадение выигрывает.
func DetectPersonaCase(answer string) PersonaCase {
	a := strings.ToLower(strings.TrimSpace(answer))

	if a == "" {
		return PersonaEmpty
	}

	if _, ok := idkPhrases[a]; ok {
		return PersonaIDK
	}

	if len(strings.Fields(a)) < 5 {
		return PersonaTooShort
	}

	for _, p := range confusedPhrases {
		if strings.Contains(a, p) {
			return PersonaConfused
		}
	}

	for _, p := range chattyPhrases {
		if strings.HasPrefix(a, p) || a == p {
			return PersonaChatty
		}
	}

	return PersonaNone
}
