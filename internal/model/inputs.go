package model

import (
	"strings"
	"time"
)

// QuestionBody is a question submission. Student and Classname are display
// names, resolved to identifiers before anything is stored.
type QuestionBody struct {
	Question  string   `json:"question"`
	Student   string   `json:"student"`
	Classname string   `json:"classname"`
	Tags      []string `json:"tags"`
}

type Answer struct {
	QuestionID int64     `json:"questionId"`
	Answer     string    `json:"answer"`
	AnsweredBy string    `json:"answeredBy"`
	AnsweredAt time.Time `json:"answeredAt"`
}

type RepositoryCreateQuestionInput struct {
	Question  string
	StudentID int64
	Tags      []string
}

// NormalizeTags trims tags and drops blanks and duplicates, keeping the order
// in which each tag first appears. The result is never nil.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
