package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandler exposes the question bank over JSON.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs the question bank HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// Register mounts the question bank routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/categories", h.HandleCategories)
	mux.HandleFunc("/categories/{id}/questions", h.HandleCategoryQuestions)
	mux.HandleFunc("/questions", h.HandleQuestions)
	mux.HandleFunc("/questions/find", h.HandleSearch)
	mux.HandleFunc("/questions/{id}", h.HandleQuestion)
	mux.HandleFunc("/quizzes", h.HandleQuiz)
}

// HandleCategories handles GET /categories
func (h *HTTPHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categoryMap(categories),
	})
}

// HandleQuestions handles GET /questions?page=N and POST /questions
func (h *HTTPHandler) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.createQuestion(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

func (h *HTTPHandler) listQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	list, err := h.svc.ListQuestions(r.Context(), page)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        list.Questions,
		"total_questions":  list.Total,
		"categories":       categoryMap(list.AllCategories),
		"current_category": list.Categories,
	})
}

type createRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   flexInt `json:"category"`
	Difficulty flexInt `json:"difficulty"`
}

func (h *HTTPHandler) createQuestion(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}
	created, err := h.svc.CreateQuestion(r.Context(), NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category.Value,
		Difficulty: req.Difficulty.Value,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"created": created.ID,
	})
}

// HandleQuestion handles DELETE /questions/{id}
func (h *HTTPHandler) HandleQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": id,
	})
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// HandleSearch handles POST /questions/find?page=N
func (h *HTTPHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}
	page, err := pageParam(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	result, err := h.svc.SearchQuestions(r.Context(), req.SearchTerm, page)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": result.Categories,
	})
}

// HandleCategoryQuestions handles GET /categories/{id}/questions?page=N
func (h *HTTPHandler) HandleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	page, err := pageParam(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	result, err := h.svc.ListQuestionsByCategory(r.Context(), id, page)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": result.CategoryID,
	})
}

type quizRequest struct {
	PreviousQuestions []int `json:"previous_questions"`
	QuizCategory      *struct {
		ID flexInt `json:"id"`
	} `json:"quiz_category"`
}

// HandleQuiz handles POST /quizzes
func (h *HTTPHandler) HandleQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}
	if req.QuizCategory == nil || !req.QuizCategory.ID.Set {
		httperrors.RespondValidationError(w, http.StatusBadRequest, httperrors.ErrCodeMissingField, "quiz_category.id is required", "quiz_category")
		return
	}

	draw, err := h.svc.DrawQuizQuestion(r.Context(), QuizRequest{
		Category: req.QuizCategory.ID.Value,
		History:  req.PreviousQuestions,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if draw.Exhausted {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":  false,
			"question": false,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": draw.Question,
	})
}

func (h *HTTPHandler) respondErr(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		status := http.StatusBadRequest
		code := httperrors.ErrCodeValidationFailed
		if errors.Is(err, ErrUnprocessable) {
			status = http.StatusUnprocessableEntity
			code = httperrors.ErrCodeUnprocessable
		}
		httperrors.RespondValidationError(w, status, code, verr.Error(), verr.Field)
	case errors.Is(err, ErrInvalidInput):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, err.Error())
	case errors.Is(err, ErrUnprocessable):
		httperrors.RespondUnprocessable(w, err.Error())
	default:
		logger := logging.FromContext(r.Context(), h.logger)
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		httperrors.RespondInternalError(w, "internal server error")
	}
}

func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, invalid("page", "must be a positive integer")
	}
	return page, nil
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, invalid(name, "must be an integer")
	}
	return id, nil
}

func categoryMap(categories []Category) map[string]string {
	out := make(map[string]string, len(categories))
	for _, c := range categories {
		out[strconv.Itoa(c.ID)] = c.Type
	}
	return out
}

// flexInt accepts a JSON number or a numeric string; clients send
// category ids both ways. Set stays false for a missing field, null or "".
type flexInt struct {
	Value int
	Set   bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*f = flexInt{}
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("expected integer, got %s", data)
	}
	*f = flexInt{Value: n, Set: true}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
