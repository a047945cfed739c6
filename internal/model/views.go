package model

import (
	"encoding/json"
	"errors"
)

// QuestionSummary holds the fields every rendered question carries.
type QuestionSummary struct {
	ID          int64    `json:"id"`
	Question    string   `json:"question"`
	StudentID   int64    `json:"studentId"`
	Tags        []string `json:"tags"`
	Answered    bool     `json:"answered"`
	SubmittedAt string   `json:"submittedAt"`
}

// UnansweredView has no answer fields at all, so they never appear in its JSON.
type UnansweredView struct {
	QuestionSummary
}

type AnsweredView struct {
	QuestionSummary
	Answer     string `json:"answer"`
	AnsweredBy string `json:"answeredBy"`
	AnsweredAt string `json:"answeredAt"`
}

// QuestionView is exactly one of Unanswered or Answered, selected by State.
type QuestionView struct {
	State      QuestionState
	Unanswered *UnansweredView
	Answered   *AnsweredView
}

var ErrEmptyView = errors.New("question view has no variant set")

func NewUnansweredQuestionView(v UnansweredView) QuestionView {
	v.Answered = false
	return QuestionView{State: QuestionStateUnanswered, Unanswered: &v}
}

func NewAnsweredQuestionView(v AnsweredView) QuestionView {
	v.Answered = true
	return QuestionView{State: QuestionStateAnswered, Answered: &v}
}

func (v QuestionView) ID() int64 {
	switch v.State {
	case QuestionStateAnswered:
		if v.Answered != nil {
			return v.Answered.ID
		}
	case QuestionStateUnanswered:
		if v.Unanswered != nil {
			return v.Unanswered.ID
		}
	}
	return 0
}

func (v QuestionView) MarshalJSON() ([]byte, error) {
	switch {
	case v.State == QuestionStateAnswered && v.Answered != nil:
		return json.Marshal(v.Answered)
	case v.State == QuestionStateUnanswered && v.Unanswered != nil:
		return json.Marshal(v.Unanswered)
	default:
		return nil, ErrEmptyView
	}
}

func (v *QuestionView) UnmarshalJSON(data []byte) error {
	var head struct {
		Answered bool `json:"answered"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	if head.Answered {
		var answered AnsweredView
		if err := json.Unmarshal(data, &answered); err != nil {
			return err
		}
		*v = NewAnsweredQuestionView(answered)
		return nil
	}

	var unanswered UnansweredView
	if err := json.Unmarshal(data, &unanswered); err != nil {
		return err
	}
	*v = NewUnansweredQuestionView(unanswered)
	return nil
}
