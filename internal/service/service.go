package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/errdefs"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/logging"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/model"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

type QuestionRepository interface {
	FindUserByName(ctx context.Context, name string) (int64, error)
	FindClassByName(ctx context.Context, name string) (int64, error)
	Insert(ctx context.Context, input *model.RepositoryCreateQuestionInput) (*model.Question, error)
	FindQuestionByID(ctx context.Context, id int64) (*model.Question, error)
	FindUnansweredQuestions(ctx context.Context) ([]*model.Question, error)
	// Update must only succeed while the question is unanswered and report
	// errdefs.ErrConflict otherwise.
	Update(ctx context.Context, answer *model.Answer) (bool, error)
}

type DateFormatter interface {
	FormatDate(t time.Time) string
}

type EventPublisher interface {
	PublishQuestionCreated(ctx context.Context, question *model.Question) error
	PublishQuestionAnswered(ctx context.Context, answer *model.Answer) error
}

type ViewCache interface {
	GetView(ctx context.Context, questionID int64) (*model.QuestionView, bool)
	SetView(ctx context.Context, view *model.QuestionView)
	DeleteView(ctx context.Context, questionID int64)
}

type QuestionService struct {
	repo      QuestionRepository
	formatter DateFormatter
	publisher EventPublisher
	cache     ViewCache
	now       func() time.Time
}

// NewQuestionService wires the workflow. publisher and cache are optional.
func NewQuestionService(
	repo QuestionRepository,
	formatter DateFormatter,
	publisher EventPublisher,
	cache ViewCache,
) *QuestionService {
	return &QuestionService{
		repo:      repo,
		formatter: formatter,
		publisher: publisher,
		cache:     cache,
		now:       time.Now,
	}
}

func (s *QuestionService) Create(ctx context.Context, body *model.QuestionBody) (int64, error) {
	if strings.TrimSpace(body.Question) == "" {
		return 0, fmt.Errorf("%w: question text is required", errdefs.ErrValidation)
	}
	if strings.TrimSpace(body.Student) == "" || strings.TrimSpace(body.Classname) == "" {
		return 0, fmt.Errorf("%w: student and classname are required", errdefs.ErrValidation)
	}

	studentID, err := s.repo.FindUserByName(ctx, body.Student)
	if err != nil {
		return 0, notFoundAs(err, "the student name does not belong to any registered user")
	}

	if _, err := s.repo.FindClassByName(ctx, body.Classname); err != nil {
		return 0, notFoundAs(err, "the class name does not belong to any registered class")
	}

	question, err := s.repo.Insert(ctx, &model.RepositoryCreateQuestionInput{
		Question:  body.Question,
		StudentID: studentID,
		Tags:      model.NormalizeTags(body.Tags),
	})
	if err != nil {
		return 0, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishQuestionCreated(ctx, question); err != nil {
			logWarn(ctx, "failed to publish question created event", question.ID, err)
		}
	}

	return question.ID, nil
}

func (s *QuestionService) Answer(ctx context.Context, answer *model.Answer) (bool, error) {
	if strings.TrimSpace(answer.Answer) == "" {
		return false, fmt.Errorf("%w: answer text is required", errdefs.ErrValidation)
	}
	if strings.TrimSpace(answer.AnsweredBy) == "" {
		return false, fmt.Errorf("%w: answeredBy is required", errdefs.ErrValidation)
	}

	question, err := s.repo.FindQuestionByID(ctx, answer.QuestionID)
	if err != nil {
		return false, notFoundAs(err, "question not found")
	}
	if question.Answered {
		return false, fmt.Errorf("%w: question already answered", errdefs.ErrConflict)
	}

	if answer.AnsweredAt.IsZero() {
		answer.AnsweredAt = s.now()
	}

	ok, err := s.repo.Update(ctx, answer)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if s.cache != nil {
		s.cache.DeleteView(ctx, answer.QuestionID)
	}
	if s.publisher != nil {
		if err := s.publisher.PublishQuestionAnswered(ctx, answer); err != nil {
			logWarn(ctx, "failed to publish question answered event", answer.QuestionID, err)
		}
	}

	return true, nil
}

func (s *QuestionService) Get(ctx context.Context) ([]model.UnansweredView, error) {
	questions, err := s.repo.FindUnansweredQuestions(ctx)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: unanswered questions not found", errdefs.ErrNotFound)
	}

	result := make([]model.UnansweredView, 0, len(questions))
	for _, question := range questions {
		result = append(result, s.unansweredView(question))
	}
	return result, nil
}

func (s *QuestionService) GetByID(ctx context.Context, questionID int64) (*model.QuestionView, error) {
	if s.cache != nil {
		if view, ok := s.cache.GetView(ctx, questionID); ok {
			return view, nil
		}
	}

	question, err := s.repo.FindQuestionByID(ctx, questionID)
	if err != nil {
		return nil, notFoundAs(err, "question not found")
	}

	if question.State() == model.QuestionStateUnanswered {
		// Not cached: an answer may commit at any moment and the entry would
		// outlive it.
		view := model.NewUnansweredQuestionView(s.unansweredView(question))
		return &view, nil
	}

	view := model.NewAnsweredQuestionView(s.answeredView(question))
	if s.cache != nil {
		s.cache.SetView(ctx, &view)
	}
	return &view, nil
}

func (s *QuestionService) summary(question *model.Question) model.QuestionSummary {
	tags := question.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.QuestionSummary{
		ID:          question.ID,
		Question:    question.Text,
		StudentID:   question.StudentID,
		Tags:        tags,
		Answered:    question.Answered,
		SubmittedAt: s.formatter.FormatDate(question.SubmittedAt),
	}
}

func (s *QuestionService) unansweredView(question *model.Question) model.UnansweredView {
	return model.UnansweredView{QuestionSummary: s.summary(question)}
}

func (s *QuestionService) answeredView(question *model.Question) model.AnsweredView {
	view := model.AnsweredView{QuestionSummary: s.summary(question)}
	if question.Answer != nil {
		view.Answer = *question.Answer
	}
	if question.AnsweredBy != nil {
		view.AnsweredBy = *question.AnsweredBy
	}
	if question.AnsweredAt != nil {
		view.AnsweredAt = s.formatter.FormatDate(*question.AnsweredAt)
	}
	return view
}

// notFoundAs attaches msg to not-found errors and passes others through.
func notFoundAs(err error, msg string) error {
	if errors.Is(err, errdefs.ErrNotFound) {
		return fmt.Errorf("%w: %s", errdefs.ErrNotFound, msg)
	}
	return err
}

func logWarn(ctx context.Context, msg string, questionID int64, err error) {
	if logger, ok := logging.GetFromContext(ctx); ok {
		logger.Warn(ctx, msg, zap.Int64("question_id", questionID), zap.Error(err))
	}
}
