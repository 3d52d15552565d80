package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"interview-practice-partner/internal/config"
	"interview-practice-partner/internal/interviewer"
	"interview-practice-partner/internal/llm"
	"interview-practice-partner/internal/metrics"
	"interview-practice-partner/internal/storage"
)

// Server — HTTP поверхность turn API: start/answer/next плюс health и metrics
type Server struct {
	svc         *interviewer.Service
	metrics     *metrics.Metrics
	sessions    map[string]*sessionEntry
	sessionsMu  sync.RWMutex
	rateLimiter *RateLimiter
}

// sessionEntry держит сессию и ее лок: ходы одной сессии
// обрабатываются строго по одному
type sessionEntry struct {
	mu   sync.Mutex
	sess *interviewer.Session
}

// New создает новый HTTP сервер поверх сервиса интервьюера
func New(svc *interviewer.Service, m *metrics.Metrics) *Server {
	s := &Server{
		svc:         svc,
		metrics:     m,
		sessions:    make(map[string]*sessionEntry),
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
	s.startSessionCleanup()
	return s
}

func (s *Server) startSessionCleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for range ticker.C {
			s.cleanupInactiveSessions()
		}
	}()
}

func (s *Server) cleanupInactiveSessions() {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	cutoff := time.Now().Add(-24 * time.Hour)
	for id, entry := range s.sessions {
		if entry.sess.LastActivity.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// Router настраивает маршруты сервера
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/interviews", s.handleStart).Methods("POST")
	api.HandleFunc("/interviews/{id}", s.handleStatus).Methods("GET")
	api.HandleFunc("/interviews/{id}/answer", s.handleAnswer).Methods("POST")
	api.HandleFunc("/interviews/{id}/next", s.handleNext).Methods("POST")

	r.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	r.HandleFunc("/metrics", s.handleMetrics).Methods("GET")

	return r
}

// Run запускает сервер с таймаутами из конфигурации
func (s *Server) Run(cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	log.Printf("HTTP сервер запущен на порту %d", cfg.Port)
	return srv.ListenAndServe()
}

// handleStart обрабатывает POST /api/interviews
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r) {
		return
	}

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Role == "" {
		req.Role = "software_engineer"
	}

	sess, question, err := s.svc.StartInterview(req.Role)
	if err != nil {
		s.writeGenerationError(w, err)
		return
	}

	s.sessionsMu.Lock()
	s.sessions[sess.ID] = &sessionEntry{sess: sess}
	s.sessionsMu.Unlock()

	writeJSON(w, http.StatusCreated, StartResponse{
		InterviewID: sess.ID,
		Question:    question,
	})
}

// handleAnswer обрабатывает POST /api/interviews/{id}/answer
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r) {
		return
	}

	entry, ok := s.lookup(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "interview not found")
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.sess.Finished {
		writeError(w, http.StatusConflict, "interview already finished")
		return
	}

	result := s.svc.ProcessAnswer(entry.sess, req.Answer, entry.sess.LastQuestion())

	if result.Finished {
		s.finishSession(entry.sess)
	}

	var followup *string
	if result.Followup != "" {
		followup = &result.Followup
	}

	writeJSON(w, http.StatusOK, TurnResponse{
		Followup: followup,
		Feedback: result.Feedback,
		Finished: result.Finished,
	})
}

// handleNext обрабатывает POST /api/interviews/{id}/next
func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r) {
		return
	}

	entry, ok := s.lookup(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "interview not found")
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.sess.Finished {
		writeError(w, http.StatusConflict, "interview already finished")
		return
	}

	question, err := s.svc.NextQuestion(entry.sess)
	if err != nil {
		// Состояние сессии валидно, клиент может повторить запрос
		s.writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, QuestionResponse{Question: question})
}

// handleStatus обрабатывает GET /api/interviews/{id}
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.lookup(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "interview not found")
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	writeJSON(w, http.StatusOK, StatusResponse{
		InterviewID:   entry.sess.ID,
		Role:          entry.sess.Role,
		Finished:      entry.sess.Finished,
		FollowupCount: entry.sess.FollowupCount,
		History:       entry.sess.History,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.GetSnapshot())
}

// finishSession сохраняет расшифровку и убирает сессию из реестра
func (s *Server) finishSession(sess *interviewer.Session) {
	cases := make(map[string]int, len(sess.PersonaCaseCounter))
	for label, count := range sess.PersonaCaseCounter {
		cases[string(label)] = count
	}

	result := &storage.InterviewResult{
		InterviewID:  sess.ID,
		Role:         sess.Role,
		Timestamp:    time.Now().Format(time.RFC3339),
		History:      sess.History,
		PersonaCases: cases,
	}
	if err := storage.SaveResult(result); err != nil {
		log.Printf("Ошибка сохранения результата интервью %s: %v", sess.ID, err)
	}

	s.sessionsMu.Lock()
	delete(s.sessions, sess.ID)
	s.sessionsMu.Unlock()
}

func (s *Server) lookup(id string) (*sessionEntry, bool) {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	entry, ok := s.sessions[id]
	return entry, ok
}

// allow применяет лимит частоты запросов по адресу клиента
func (s *Server) allow(w http.ResponseWriter, r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if !s.rateLimiter.IsAllowed(host) {
		writeError(w, http.StatusTooManyRequests, "too many requests, please wait")
		return false
	}
	return true
}

// writeGenerationError переводит ошибки генерации в HTTP статусы
func (s *Server) writeGenerationError(w http.ResponseWriter, err error) {
	log.Printf("Ошибка генерации: %v", err)
	if errors.Is(err, llm.ErrNotConfigured) {
		writeError(w, http.StatusServiceUnavailable, "text generation is not configured")
		return
	}
	writeError(w, http.StatusBadGateway, "question generation failed, please retry")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
