package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRubric загружает рубрику из YAML файла.
// Отсутствующий или некорректный файл — фатальная ошибка конфигурации:
// движок никогда не придумывает рубрику сам.
func LoadRubric(filename string) (*Rubric, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла рубрики %s: %w", filename, err)
	}

	var rubric Rubric
	err = yaml.Unmarshal(data, &rubric)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга YAML рубрики: %w", err)
	}

	applyRubricDefaults(&rubric)

	err = validateRubric(&rubric)
	if err != nil {
		return nil, fmt.Errorf("ошибка валидации рубрики: %w", err)
	}

	return &rubric, nil
}

// applyRubricDefaults подставляет значения по умолчанию для опциональных полей
func applyRubricDefaults(rubric *Rubric) {
	if rubric.Thresholds.ShortAnswerTokens == 0 {
		rubric.Thresholds.ShortAnswerTokens = DefaultShortAnswerTokens
	}
	if rubric.Thresholds.GoodDepthMatches == 0 {
		rubric.Thresholds.GoodDepthMatches = DefaultGoodDepthMatches
	}
	if rubric.Messages.StructureTip == "" {
		rubric.Messages.StructureTip = DefaultStructureTip
	}
	if rubric.Messages.DetailTip == "" {
		rubric.Messages.DetailTip = DefaultDetailTip
	}
	if rubric.Messages.OnTopicTip == "" {
		rubric.Messages.OnTopicTip = DefaultOnTopicTip
	}
}

// validateRubric проверяет корректность рубрики
func validateRubric(rubric *Rubric) error {
	if rubric.Thresholds.ShortAnswerTokens < 0 {
		return fmt.Errorf("short_answer_tokens не может быть отрицательным")
	}

	if rubric.Thresholds.GoodDepthMatches < 0 {
		return fmt.Errorf("good_depth_matches не может быть отрицательным")
	}

	for i, kw := range rubric.DepthKeywords {
		if kw == "" {
			return fmt.Errorf("depth_keywords[%d] пустой", i)
		}
	}

	return nil
}
