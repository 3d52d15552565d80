package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRubricFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rubric.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRubric_Full(t *testing.T) {
	path := writeRubricFile(t, `
thresholds:
  short_answer_tokens: 15
  good_depth_matches: 3
depth_keywords:
  - caching
  - indexing
  - latency
messages:
  structure_tip: "Custom structure tip."
  detail_tip: "Custom detail tip."
  on_topic_tip: "Custom topic tip."
`)

	rubric, err := LoadRubric(path)
	require.NoError(t, err)

	assert.Equal(t, 15, rubric.Thresholds.ShortAnswerTokens)
	assert.Equal(t, 3, rubric.Thresholds.GoodDepthMatches)
	assert.Equal(t, []string{"caching", "indexing", "latency"}, rubric.DepthKeywords)
	assert.Equal(t, "Custom structure tip.", rubric.Messages.StructureTip)
	assert.Equal(t, "Custom detail tip.", rubric.Messages.DetailTip)
	assert.Equal(t, "Custom topic tip.", rubric.Messages.OnTopicTip)
}

func TestLoadRubric_DefaultsApplied(t *testing.T) {
	path := writeRubricFile(t, `
depth_keywords:
  - caching
`)

	rubric, err := LoadRubric(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultShortAnswerTokens, rubric.Thresholds.ShortAnswerTokens)
	assert.Equal(t, DefaultGoodDepthMatches, rubric.Thresholds.GoodDepthMatches)
	assert.Equal(t, DefaultStructureTip, rubric.Messages.StructureTip)
	assert.Equal(t, DefaultDetailTip, rubric.Messages.DetailTip)
	assert.Equal(t, DefaultOnTopicTip, rubric.Messages.OnTopicTip)
}

func TestLoadRubric_MissingFile(t *testing.T) {
	_, err := LoadRubric(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRubric_MalformedYAML(t *testing.T) {
	path := writeRubricFile(t, "thresholds: [not a mapping")

	_, err := LoadRubric(path)
	assert.Error(t, err)
}

func TestLoadRubric_NegativeThreshold(t *testing.T) {
	path := writeRubricFile(t, `
thresholds:
  short_answer_tokens: -1
depth_keywords:
  - caching
`)

	_, err := LoadRubric(path)
	assert.Error(t, err)
}

func TestLoadRubric_EmptyKeyword(t *testing.T) {
	path := writeRubricFile(t, `
depth_keywords:
  - caching
  - ""
`)

	_, err := LoadRubric(path)
	assert.Error(t, err)
}

func TestRubricAccessors(t *testing.T) {
	rubric := &Rubric{}
	rubric.Thresholds.ShortAnswerTokens = 20
	rubric.Thresholds.GoodDepthMatches = 4
	assert.Equal(t, 20, rubric.GetShortAnswerTokens())
	assert.Equal(t, 4, rubric.GetGoodDepthMatches())
}
