package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/dateformat"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/errdefs"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/model"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepository keeps questions in memory with the same conditional update
// semantics as the postgres repository.
type memoryRepository struct {
	mu        sync.Mutex
	users     map[string]int64
	classes   map[string]int64
	questions map[int64]*model.Question
	nextID    int64
	clock     func() time.Time
}

func newMemoryRepository(clock func() time.Time) *memoryRepository {
	return &memoryRepository{
		users:     map[string]int64{"alice": 1, "bob": 2},
		classes:   map[string]int64{"Math101": 1},
		questions: map[int64]*model.Question{},
		clock:     clock,
	}
}

func (m *memoryRepository) FindUserByName(_ context.Context, name string) (int64, error) {
	if id, ok := m.users[name]; ok {
		return id, nil
	}
	return 0, errdefs.ErrNotFound
}

func (m *memoryRepository) FindClassByName(_ context.Context, name string) (int64, error) {
	if id, ok := m.classes[name]; ok {
		return id, nil
	}
	return 0, errdefs.ErrNotFound
}

func (m *memoryRepository) Insert(_ context.Context, input *model.RepositoryCreateQuestionInput) (*model.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	q := &model.Question{
		ID:          m.nextID,
		Text:        input.Question,
		StudentID:   input.StudentID,
		Tags:        input.Tags,
		SubmittedAt: m.clock(),
	}
	m.questions[m.nextID] = q
	cp := *q
	return &cp, nil
}

func (m *memoryRepository) FindQuestionByID(_ context.Context, id int64) (*model.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.questions[id]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (m *memoryRepository) FindUnansweredQuestions(_ context.Context) ([]*model.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Question
	for id := int64(1); id <= m.nextID; id++ {
		if q, ok := m.questions[id]; ok && !q.Answered {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memoryRepository) Update(_ context.Context, answer *model.Answer) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.questions[answer.QuestionID]
	if !ok {
		return false, errdefs.ErrNotFound
	}
	if q.Answered {
		return false, errdefs.ErrConflict
	}
	text, by, at := answer.Answer, answer.AnsweredBy, answer.AnsweredAt
	q.Answered, q.Answer, q.AnsweredBy, q.AnsweredAt = true, &text, &by, &at
	return true, nil
}

func newScenarioService(t *testing.T) (*service.QuestionService, *memoryRepository) {
	t.Helper()
	submitted := time.Date(2026, time.October, 17, 9, 5, 0, 0, time.UTC)
	repo := newMemoryRepository(func() time.Time { return submitted })
	formatter, err := dateformat.New(dateformat.DefaultLayout, "UTC")
	require.NoError(t, err)
	return service.NewQuestionService(repo, formatter, nil, nil), repo
}

func TestQuestionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newScenarioService(t)

	id, err := svc.Create(ctx, &model.QuestionBody{
		Question:  "Why?",
		Student:   "alice",
		Classname: "Math101",
		Tags:      []string{"algebra"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	view, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, view.Unanswered)
	assert.False(t, view.Unanswered.Answered)
	assert.Equal(t, "17/10/2026 09:05", view.Unanswered.SubmittedAt)

	list, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)

	answeredAt := time.Date(2026, time.October, 17, 10, 30, 0, 0, time.UTC)
	ok, err := svc.Answer(ctx, &model.Answer{
		QuestionID: id,
		Answer:     "Because",
		AnsweredBy: "bob",
		AnsweredAt: answeredAt,
	})
	require.NoError(t, err)
	assert.True(t, ok)

	view, err = svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, view.Answered)
	assert.Equal(t, "Because", view.Answered.Answer)
	assert.Equal(t, "bob", view.Answered.AnsweredBy)
	assert.Equal(t, "17/10/2026 10:30", view.Answered.AnsweredAt)

	data, err := json.Marshal(view)
	require.NoError(t, err)
	assert.JSONEq(t, fmt.Sprintf(`{
		"id": %d,
		"question": "Why?",
		"studentId": 1,
		"tags": ["algebra"],
		"answered": true,
		"submittedAt": "17/10/2026 09:05",
		"answer": "Because",
		"answeredBy": "bob",
		"answeredAt": "17/10/2026 10:30"
	}`, id), string(data))

	_, err = svc.Answer(ctx, &model.Answer{QuestionID: id, Answer: "Again", AnsweredBy: "bob"})
	assert.ErrorIs(t, err, errdefs.ErrConflict)

	_, err = svc.Get(ctx)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)

	_, err = svc.Answer(ctx, &model.Answer{QuestionID: id + 100, Answer: "x", AnsweredBy: "bob"})
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestConcurrentAnswersHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	svc, _ := newScenarioService(t)

	id, err := svc.Create(ctx, &model.QuestionBody{Question: "Why?", Student: "alice", Classname: "Math101"})
	require.NoError(t, err)

	const answerers = 8
	var wg sync.WaitGroup
	results := make(chan error, answerers)
	for i := 0; i < answerers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Answer(ctx, &model.Answer{
				QuestionID: id,
				Answer:     fmt.Sprintf("answer %d", i),
				AnsweredBy: "bob",
			})
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, errdefs.ErrConflict)
	}
	assert.Equal(t, 1, wins)
}

// memoryCache is a ViewCache backed by a map.
type memoryCache struct {
	mu    sync.Mutex
	views map[int64]model.QuestionView
}

func newMemoryCache() *memoryCache {
	return &memoryCache{views: map[int64]model.QuestionView{}}
}

func (c *memoryCache) GetView(_ context.Context, id int64) (*model.QuestionView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.views[id]
	if !ok {
		return nil, false
	}
	return &v, true
}

func (c *memoryCache) SetView(_ context.Context, view *model.QuestionView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.views[view.ID()] = *view
}

func (c *memoryCache) DeleteView(_ context.Context, id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.views, id)
}

// answerDuringLookup runs afterRead once, between reading a question and
// handing it back, so a lookup observes the row as it was before afterRead.
type answerDuringLookup struct {
	*memoryRepository
	afterRead func()
}

func (r *answerDuringLookup) FindQuestionByID(ctx context.Context, id int64) (*model.Question, error) {
	q, err := r.memoryRepository.FindQuestionByID(ctx, id)
	if hook := r.afterRead; hook != nil {
		r.afterRead = nil
		hook()
	}
	return q, err
}

func TestGetByIDRacingAnswerDoesNotHideAnswer(t *testing.T) {
	ctx := context.Background()
	submitted := time.Date(2026, time.October, 17, 9, 5, 0, 0, time.UTC)
	repo := &answerDuringLookup{memoryRepository: newMemoryRepository(func() time.Time { return submitted })}
	formatter, err := dateformat.New(dateformat.DefaultLayout, "UTC")
	require.NoError(t, err)
	cache := newMemoryCache()
	svc := service.NewQuestionService(repo, formatter, nil, cache)

	id, err := svc.Create(ctx, &model.QuestionBody{Question: "Why?", Student: "alice", Classname: "Math101"})
	require.NoError(t, err)

	// The answer commits, and invalidates the cache, after the lookup below
	// has read the unanswered row but before it returns.
	repo.afterRead = func() {
		ok, err := svc.Answer(ctx, &model.Answer{QuestionID: id, Answer: "Because", AnsweredBy: "bob"})
		require.NoError(t, err)
		require.True(t, ok)
	}

	stale, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.QuestionStateUnanswered, stale.State)

	view, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.QuestionStateAnswered, view.State)
	require.NotNil(t, view.Answered)
	assert.Equal(t, "Because", view.Answered.Answer)
	assert.Equal(t, "bob", view.Answered.AnsweredBy)

	cached, ok := cache.GetView(ctx, id)
	require.True(t, ok)
	assert.Equal(t, model.QuestionStateAnswered, cached.State)
}
