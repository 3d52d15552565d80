package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-practice-partner/internal/config"
	"interview-practice-partner/internal/interviewer"
	"interview-practice-partner/internal/llm"
	"interview-practice-partner/internal/metrics"
)

type fakeGenerator struct {
	enabled   bool
	responses []string
	err       error
}

func (f *fakeGenerator) Enabled() bool {
	return f.enabled
}

func (f *fakeGenerator) Generate(prompt string, maxTokens int, temperature float64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", llm.ErrEmptyResult
	}
	response := f.responses[0]
	f.responses = f.responses[1:]
	return response, nil
}

func testRubric() *config.Rubric {
	return &config.Rubric{
		Thresholds: config.Thresholds{
			ShortAnswerTokens: 12,
			GoodDepthMatches:  2,
		},
		DepthKeywords: []string{"caching", "indexing"},
		Messages: config.Messages{
			StructureTip: config.DefaultStructureTip,
			DetailTip:    config.DefaultDetailTip,
			OnTopicTip:   config.DefaultOnTopicTip,
		},
	}
}

func newTestServer(gen interviewer.Generator) *Server {
	m := metrics.New()
	return New(interviewer.New(gen, testRubric(), m), m)
}

// Сохранение расшифровок пишет в results/ относительно рабочей директории
func chdirTemp(t *testing.T) string {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
	return dir
}

func doRequest(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader([]byte("{}"))
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestStartInterview(t *testing.T) {
	gen := &fakeGenerator{
		enabled:   true,
		responses: []string{"What is a hash table?"},
	}
	srv := newTestServer(gen)

	rec := doRequest(t, srv, "POST", "/api/interviews", StartRequest{Role: "software_engineer"})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp StartResponse
	decodeBody(t, rec, &resp)
	assert.NotEmpty(t, resp.InterviewID)
	assert.Equal(t, "What is a hash table?", resp.Question)
}

func TestStartInterview_NotConfigured(t *testing.T) {
	srv := newTestServer(&fakeGenerator{enabled: false})

	rec := doRequest(t, srv, "POST", "/api/interviews", StartRequest{})

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "text generation is not configured", resp.Error)
}

func TestAnswer_PersonaNudge(t *testing.T) {
	gen := &fakeGenerator{
		enabled:   true,
		responses: []string{"What is a hash table?"},
	}
	srv := newTestServer(gen)

	var start StartResponse
	decodeBody(t, doRequest(t, srv, "POST", "/api/interviews", StartRequest{}), &start)

	rec := doRequest(t, srv, "POST", "/api/interviews/"+start.InterviewID+"/answer", AnswerRequest{Answer: "idk"})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TurnResponse
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Finished)
	require.NotNil(t, resp.Followup)
	assert.Equal(t, "It's okay if you don't know. Take a guess or try to explain your thinking!", *resp.Followup)
	assert.Equal(t, []string{"Provide a more complete answer to get valuable feedback!"}, resp.Feedback)
}

func TestAnswer_EndCommandFinishesAndSavesTranscript(t *testing.T) {
	dir := chdirTemp(t)

	gen := &fakeGenerator{
		enabled:   true,
		responses: []string{"What is a hash table?"},
	}
	srv := newTestServer(gen)

	var start StartResponse
	decodeBody(t, doRequest(t, srv, "POST", "/api/interviews", StartRequest{}), &start)

	rec := doRequest(t, srv, "POST", "/api/interviews/"+start.InterviewID+"/answer", AnswerRequest{Answer: "quit"})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TurnResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Finished)
	assert.Nil(t, resp.Followup)
	assert.Equal(t, []string{"Interview ended at your request."}, resp.Feedback)

	// Расшифровка сохранена
	path := filepath.Join(dir, "results", "interview_"+start.InterviewID+".json")
	_, err := os.Stat(path)
	assert.NoError(t, err)

	// Завершенная сессия убрана из реестра
	rec = doRequest(t, srv, "POST", "/api/interviews/"+start.InterviewID+"/answer", AnswerRequest{Answer: "hi"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnswer_UnknownInterview(t *testing.T) {
	srv := newTestServer(&fakeGenerator{enabled: true})

	rec := doRequest(t, srv, "POST", "/api/interviews/nonexistent/answer", AnswerRequest{Answer: "hi"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNextQuestion(t *testing.T) {
	gen := &fakeGenerator{
		enabled: true,
		responses: []string{
			"What is a hash table?",
			"Question: What is a linked list?",
		},
	}
	srv := newTestServer(gen)

	var start StartResponse
	decodeBody(t, doRequest(t, srv, "POST", "/api/interviews", StartRequest{}), &start)

	rec := doRequest(t, srv, "POST", "/api/interviews/"+start.InterviewID+"/next", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuestionResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "What is a linked list?", resp.Question)
}

func TestNextQuestion_GenerationFailureKeepsSession(t *testing.T) {
	gen := &fakeGenerator{
		enabled:   true,
		responses: []string{"What is a hash table?"},
	}
	srv := newTestServer(gen)

	var start StartResponse
	decodeBody(t, doRequest(t, srv, "POST", "/api/interviews", StartRequest{}), &start)

	// Очередь ответов пуста: генерация следующего вопроса падает
	rec := doRequest(t, srv, "POST", "/api/interviews/"+start.InterviewID+"/next", nil)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var errResp ErrorResponse
	decodeBody(t, rec, &errResp)
	assert.Equal(t, "question generation failed, please retry", errResp.Error)

	// Сессия жива, отвечать по-прежнему можно
	rec = doRequest(t, srv, "POST", "/api/interviews/"+start.InterviewID+"/answer", AnswerRequest{Answer: "idk"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatus(t *testing.T) {
	gen := &fakeGenerator{
		enabled:   true,
		responses: []string{"What is a hash table?"},
	}
	srv := newTestServer(gen)

	var start StartResponse
	decodeBody(t, doRequest(t, srv, "POST", "/api/interviews", StartRequest{Role: "data_scientist"}), &start)

	rec := doRequest(t, srv, "GET", "/api/interviews/"+start.InterviewID, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatusResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, start.InterviewID, resp.InterviewID)
	assert.Equal(t, "data_scientist", resp.Role)
	assert.False(t, resp.Finished)
	require.Len(t, resp.History, 1)
	assert.Equal(t, interviewer.RoleInterviewer, resp.History[0].Role)
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(&fakeGenerator{enabled: false})

	rec := doRequest(t, srv, "GET", "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, "GET", "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot metrics.Snapshot
	decodeBody(t, rec, &snapshot)
	assert.Equal(t, int64(0), snapshot.InterviewsStarted)
}

func TestRateLimit(t *testing.T) {
	gen := &fakeGenerator{
		enabled:   true,
		responses: []string{"What is a hash table?"},
	}
	srv := newTestServer(gen)

	// Лимит 10 запросов в минуту с одного адреса
	var last *httptest.ResponseRecorder
	for i := 0; i < 11; i++ {
		last = doRequest(t, srv, "POST", "/api/interviews", StartRequest{})
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
}
