package worker

import (
	"context"
	"errors"
	"time"

	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/errdefs"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/logging"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/model"
	"go.uber.org/zap"
)

type UnansweredQuestionFinder interface {
	FindUnansweredQuestions(ctx context.Context) ([]*model.Question, error)
}

type ReminderPublisher interface {
	PublishQuestionReminder(ctx context.Context, question *model.Question) error
}

// ReminderWorker periodically announces questions that have waited longer
// than age for an answer.
type ReminderWorker struct {
	repo      UnansweredQuestionFinder
	publisher ReminderPublisher
	logger    *logging.Logger
	interval  time.Duration
	age       time.Duration
	now       func() time.Time
}

func NewReminderWorker(
	repo UnansweredQuestionFinder,
	publisher ReminderPublisher,
	logger *logging.Logger,
	interval time.Duration,
	age time.Duration,
) *ReminderWorker {
	return &ReminderWorker{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		interval:  interval,
		age:       age,
		now:       time.Now,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Reminder worker stopped")
			return
		case <-ticker.C:
			w.processReminders(ctx)
		}
	}
}

// processReminders returns the number of reminders sent.
func (w *ReminderWorker) processReminders(ctx context.Context) int {
	questions, err := w.repo.FindUnansweredQuestions(ctx)
	if err != nil {
		if !errors.Is(err, errdefs.ErrNotFound) {
			w.logger.Error(ctx, "Failed to get unanswered questions", zap.Error(err))
		}
		return 0
	}

	cutoff := w.now().Add(-w.age)
	sent := 0
	for _, question := range questions {
		if question.SubmittedAt.After(cutoff) {
			continue
		}
		if err := w.publisher.PublishQuestionReminder(ctx, question); err != nil {
			w.logger.Error(ctx, "Failed to send reminder", zap.Int64("question_id", question.ID), zap.Error(err))
			continue
		}
		sent++
	}

	if sent > 0 {
		w.logger.Info(ctx, "Sent question reminders", zap.Int("count", sent))
	}
	return sent
}
