package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/model"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/utils"
	"github.com/segmentio/kafka-go"
)

type EventType string

const (
	EventQuestionCreated  EventType = "question.created"
	EventQuestionAnswered EventType = "question.answered"
	EventQuestionReminder EventType = "question.reminder"
)

type QuestionEvent struct {
	EventType   EventType  `json:"event_type"`
	QuestionID  int64      `json:"question_id"`
	StudentID   int64      `json:"student_id,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	AnsweredBy  string     `json:"answered_by,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	OccurredAt  time.Time  `json:"occurred_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	publishAttempts  = 3
	publishBaseDelay = 100 * time.Millisecond
	breakerThreshold = 5
	breakerReset     = 30 * time.Second
)

type Publisher struct {
	writer  messageWriter
	breaker *utils.CircuitBreaker
	now     func() time.Time
}

func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return newPublisher(writer)
}

func newPublisher(writer messageWriter) *Publisher {
	return &Publisher{
		writer:  writer,
		breaker: utils.NewCircuitBreaker(breakerThreshold, breakerReset, nil),
		now:     time.Now,
	}
}

func (p *Publisher) PublishQuestionCreated(ctx context.Context, question *model.Question) error {
	submittedAt := question.SubmittedAt
	return p.send(ctx, QuestionEvent{
		EventType:   EventQuestionCreated,
		QuestionID:  question.ID,
		StudentID:   question.StudentID,
		Tags:        question.Tags,
		SubmittedAt: &submittedAt,
	})
}

func (p *Publisher) PublishQuestionAnswered(ctx context.Context, answer *model.Answer) error {
	return p.send(ctx, QuestionEvent{
		EventType:  EventQuestionAnswered,
		QuestionID: answer.QuestionID,
		AnsweredBy: answer.AnsweredBy,
	})
}

func (p *Publisher) PublishQuestionReminder(ctx context.Context, question *model.Question) error {
	submittedAt := question.SubmittedAt
	return p.send(ctx, QuestionEvent{
		EventType:   EventQuestionReminder,
		QuestionID:  question.ID,
		StudentID:   question.StudentID,
		Tags:        question.Tags,
		SubmittedAt: &submittedAt,
	})
}

func (p *Publisher) send(ctx context.Context, event QuestionEvent) error {
	event.OccurredAt = p.now().UTC()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.EventType, err)
	}

	message := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.QuestionID, 10)),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	_, err = utils.RetryWithCircuitBreaker(ctx, p.breaker, publishAttempts, publishBaseDelay, nil, func() (struct{}, error) {
		return struct{}{}, p.writer.WriteMessages(ctx, message)
	})
	if err != nil {
		return fmt.Errorf("failed to send %s event (circuit %s): %w", event.EventType, p.breaker.State(), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
