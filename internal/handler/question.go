package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/ctxdata"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/model"
	"github.com/go-chi/chi/v5"
)

type QuestionService interface {
	Create(ctx context.Context, body *model.QuestionBody) (int64, error)
	Answer(ctx context.Context, answer *model.Answer) (bool, error)
	Get(ctx context.Context) ([]model.UnansweredView, error)
	GetByID(ctx context.Context, questionID int64) (*model.QuestionView, error)
}

type QuestionHandler struct {
	s QuestionService
}

func NewQuestionHandler(s QuestionService) *QuestionHandler {
	return &QuestionHandler{s: s}
}

type createQuestionResponse struct {
	ID int64 `json:"id"`
}

type answerQuestionRequest struct {
	QuestionID int64      `json:"-"`
	Answer     string     `json:"answer"`
	AnsweredBy string     `json:"answeredBy"`
	AnsweredAt *time.Time `json:"answeredAt"`
}

type answerQuestionResponse struct {
	Answered bool `json:"answered"`
}

type emptyRequest struct{}

type questionIDRequest struct {
	ID int64
}

// RegisterRoutes mounts the question routes. answerGuard wraps only the answer
// route, on top of authMiddleware.
func (h *QuestionHandler) RegisterRoutes(r chi.Router, authMiddleware, answerGuard func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/", Handle(h.create, nil, true, http.StatusCreated))
		r.Get("/", Handle(h.list, nil, false, http.StatusOK))
		r.Get("/{id}", Handle(h.getByID, parseQuestionID, false, http.StatusOK))
		r.With(answerGuard).Post("/{id}", Handle(h.answer, parseAnswer, true, http.StatusCreated))
	})
}

func (h *QuestionHandler) create(ctx context.Context, req *model.QuestionBody) (createQuestionResponse, error) {
	id, err := h.s.Create(ctx, req)
	if err != nil {
		return createQuestionResponse{}, err
	}
	return createQuestionResponse{ID: id}, nil
}

func (h *QuestionHandler) answer(ctx context.Context, req *answerQuestionRequest) (answerQuestionResponse, error) {
	answer := &model.Answer{
		QuestionID: req.QuestionID,
		Answer:     req.Answer,
		AnsweredBy: req.AnsweredBy,
	}
	if answer.AnsweredBy == "" {
		if userID, ok := ctxdata.GetUserID(ctx); ok {
			answer.AnsweredBy = userID
		}
	}
	if req.AnsweredAt != nil {
		answer.AnsweredAt = *req.AnsweredAt
	}

	ok, err := h.s.Answer(ctx, answer)
	if err != nil {
		return answerQuestionResponse{}, err
	}
	return answerQuestionResponse{Answered: ok}, nil
}

func (h *QuestionHandler) list(ctx context.Context, _ *emptyRequest) ([]model.UnansweredView, error) {
	return h.s.Get(ctx)
}

func (h *QuestionHandler) getByID(ctx context.Context, req *questionIDRequest) (*model.QuestionView, error) {
	return h.s.GetByID(ctx, req.ID)
}

func parseQuestionID(_ context.Context, r *http.Request, req *questionIDRequest) error {
	id, err := parseIDParam(r, "id")
	if err != nil {
		return err
	}
	req.ID = id
	return nil
}

func parseAnswer(_ context.Context, r *http.Request, req *answerQuestionRequest) error {
	id, err := parseIDParam(r, "id")
	if err != nil {
		return err
	}
	req.QuestionID = id
	return nil
}
