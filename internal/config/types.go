package config

// Rubric представляет рубрику для детерминированной оценки ответов
type Rubric struct {
	Thresholds    Thresholds `yaml:"thresholds"`
	DepthKeywords []string   `yaml:"depth_keywords"`
	Messages      Messages   `yaml:"messages"`
}

// Thresholds содержит пороговые значения скоринга
type Thresholds struct {
	ShortAnswerTokens int `yaml:"short_answer_tokens"`
	GoodDepthMatches  int `yaml:"good_depth_matches"`
}

// Messages содержит настраиваемые тексты подсказок для низких оценок
type Messages struct {
	StructureTip string `yaml:"structure_tip"`
	DetailTip    string `yaml:"detail_tip"`
	OnTopicTip   string `yaml:"on_topic_tip"`
}

// Значения по умолчанию. Применяются один раз при загрузке рубрики,
// потребители рубрики никогда не подставляют дефолты сами.
const (
	DefaultShortAnswerTokens = 12
	DefaultGoodDepthMatches  = 2

	DefaultStructureTip = "Try structuring answers with STAR (Situation, Task, Action, Result)."
	DefaultDetailTip    = "Add concrete technical details: components, trade-offs, and numbers."
	DefaultOnTopicTip   = "Keep answers focused on the asked problem; brief examples are fine."
)

// Методы для удобного доступа к конфигурации
func (r *Rubric) GetShortAnswerTokens() int {
	return r.Thresholds.ShortAnswerTokens
}

func (r *Rubric) GetGoodDepthMatches() int {
	return r.Thresholds.GoodDepthMatches
}
