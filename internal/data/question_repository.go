package data

import (
	"context"

	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/errdefs"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/model"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const questionColumns = `
	id, question, student_id, tags, submitted_at,
	answered, answer, answered_by, answered_at
`

// Querier is the subset of *pgxpool.Pool the repository and pgxscan need.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type QuestionRepository struct {
	db Querier
}

func NewQuestionRepository(db Querier) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) FindUserByName(ctx context.Context, name string) (int64, error) {
	query := `
SELECT id
FROM users
WHERE name = $1
`
	var id int64
	if err := pgxscan.Get(ctx, r.db, &id, query, name); err != nil {
		return 0, handleError(err)
	}
	return id, nil
}

func (r *QuestionRepository) FindClassByName(ctx context.Context, name string) (int64, error) {
	query := `
SELECT id
FROM classes
WHERE name = $1
`
	var id int64
	if err := pgxscan.Get(ctx, r.db, &id, query, name); err != nil {
		return 0, handleError(err)
	}
	return id, nil
}

// Insert stores a new unanswered question and returns the stored row, including
// the id and submitted_at assigned by the database.
func (r *QuestionRepository) Insert(ctx context.Context, input *model.RepositoryCreateQuestionInput) (*model.Question, error) {
	query := `
INSERT INTO questions (question, student_id, tags)
VALUES ($1, $2, $3)
RETURNING` + questionColumns
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	var question model.Question
	if err := pgxscan.Get(ctx, r.db, &question, query, input.Question, input.StudentID, tags); err != nil {
		return nil, handleError(err)
	}
	return &question, nil
}

func (r *QuestionRepository) FindQuestionByID(ctx context.Context, id int64) (*model.Question, error) {
	query := `
SELECT` + questionColumns + `
FROM questions
WHERE id = $1
`
	var question model.Question
	if err := pgxscan.Get(ctx, r.db, &question, query, id); err != nil {
		return nil, handleError(err)
	}
	return &question, nil
}

func (r *QuestionRepository) FindUnansweredQuestions(ctx context.Context) ([]*model.Question, error) {
	query := `
SELECT` + questionColumns + `
FROM questions
WHERE answered = FALSE
ORDER BY submitted_at ASC, id ASC
`
	var questions []*model.Question
	if err := pgxscan.Select(ctx, r.db, &questions, query); err != nil {
		return nil, handleError(err)
	}
	return questions, nil
}

// Update answers a question only while it is still unanswered, so concurrent
// answers cannot both succeed. The loser gets errdefs.ErrConflict.
func (r *QuestionRepository) Update(ctx context.Context, answer *model.Answer) (bool, error) {
	query := `
UPDATE questions
SET answer = $1, answered_by = $2, answered_at = $3, answered = TRUE
WHERE id = $4 AND answered = FALSE
`
	tag, err := r.db.Exec(ctx, query,
		answer.Answer,
		answer.AnsweredBy,
		answer.AnsweredAt,
		answer.QuestionID,
	)
	if err != nil {
		return false, handleError(err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	var answered bool
	err = pgxscan.Get(ctx, r.db, &answered, `SELECT answered FROM questions WHERE id = $1`, answer.QuestionID)
	if err != nil {
		return false, handleError(err)
	}
	if answered {
		return false, errdefs.ErrConflict
	}
	return false, nil
}
