package interviewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEndCommand(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"end", true},
		{"end interview", true},
		{"stop", true},
		{"stop interview", true},
		{"quit", true},
		{"exit", true},
		{"finish", true},
		{"finish interview", true},
		{"terminate", true},
		{"terminate interview", true},
		{"QUIT", true},
		{"QUIT!", true},
		{"End Interview.", true},
		{"  quit  ", true},
		{"quit?", true},
		{"quitting", false},
		{"please end the interview", false},
		{"", false},
		{"   ", false},
		{"endless", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsEndCommand(tt.text), "IsEndCommand(%q)", tt.text)
	}
}

func TestDetectPersonaCase_PriorityOrder(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   PersonaCase
	}{
		{"пустой ответ", "", PersonaEmpty},
		{"только пробелы", "   \t ", PersonaEmpty},
		{"idk", "idk", PersonaIDK},
		{"idk в верхнем регистре", "IDK", PersonaIDK},
		// "no idea" короче 5 токенов, но приоритет у IDK
		{"no idea приоритетнее TOO_SHORT", "no idea", PersonaIDK},
		{"dont know", "Dont Know", PersonaIDK},
		{"одно слово", "yes", PersonaTooShort},
		{"четыре слова", "it depends on context", PersonaTooShort},
		{"растерянность not sure", "i am not sure about this question at all", PersonaConfused},
		{"растерянность help", "can you help me understand what you are asking", PersonaConfused},
		{"растерянность lost", "honestly i am completely lost with this whole topic", PersonaConfused},
		{"приветствие hello", "hello there nice to meet you today", PersonaChatty},
		{"приветствие how are you", "how are you doing today my friend", PersonaChatty},
		// CONFUSED проверяется раньше CHATTY
		{"приветствие с растерянностью", "hello i am confused by your question entirely", PersonaConfused},
		{"нормальный ответ", "a binary search halves the search space on every comparison step", PersonaNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPersonaCase(tt.answer))
		})
	}
}
