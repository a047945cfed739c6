package model

import (
	"time"
)

type Question struct {
	ID          int64      `db:"id"`
	Text        string     `db:"question"`
	StudentID   int64      `db:"student_id"`
	Tags        []string   `db:"tags"`
	SubmittedAt time.Time  `db:"submitted_at"`
	Answered    bool       `db:"answered"`
	Answer      *string    `db:"answer"`
	AnsweredBy  *string    `db:"answered_by"`
	AnsweredAt  *time.Time `db:"answered_at"`
}

func (q *Question) State() QuestionState {
	if q.Answered {
		return QuestionStateAnswered
	}
	return QuestionStateUnanswered
}

type QuestionState string

const (
	QuestionStateUnanswered QuestionState = "unanswered"
	QuestionStateAnswered   QuestionState = "answered"
)

func (s QuestionState) String() string {
	return string(s)
}
