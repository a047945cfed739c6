package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisCache(rdb, time.Hour), mr
}

func answeredView() model.QuestionView {
	return model.NewAnsweredQuestionView(model.AnsweredView{
		QuestionSummary: model.QuestionSummary{
			ID:          1,
			Question:    "Why?",
			StudentID:   10,
			Tags:        []string{"algebra"},
			SubmittedAt: "17/10/2026 09:00",
		},
		Answer:     "Because",
		AnsweredBy: "bob",
		AnsweredAt: "17/10/2026 10:00",
	})
}

func unansweredView() model.QuestionView {
	return model.NewUnansweredQuestionView(model.UnansweredView{
		QuestionSummary: model.QuestionSummary{
			ID:          2,
			Question:    "How?",
			StudentID:   10,
			Tags:        []string{},
			SubmittedAt: "17/10/2026 09:00",
		},
	})
}

func TestGetViewMiss(t *testing.T) {
	c, _ := setup(t)

	_, ok := c.GetView(context.Background(), 1)
	assert.False(t, ok)
}

func TestSetAndGetAnsweredView(t *testing.T) {
	c, mr := setup(t)
	ctx := context.Background()
	view := answeredView()

	c.SetView(ctx, &view)

	assert.Equal(t, time.Hour, mr.TTL("question:1:view"))

	got, ok := c.GetView(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, model.QuestionStateAnswered, got.State)
	require.NotNil(t, got.Answered)
	assert.Equal(t, "Because", got.Answered.Answer)
	assert.Equal(t, "bob", got.Answered.AnsweredBy)
}

func TestAnsweredViewExpires(t *testing.T) {
	c, mr := setup(t)
	ctx := context.Background()
	view := answeredView()

	c.SetView(ctx, &view)
	mr.FastForward(2 * time.Hour)

	_, ok := c.GetView(ctx, 1)
	assert.False(t, ok)
}

func TestUnansweredViewIsNeverStored(t *testing.T) {
	c, mr := setup(t)
	view := unansweredView()

	c.SetView(context.Background(), &view)
	assert.False(t, mr.Exists("question:2:view"))
}

func TestStoredUnansweredEntryIsEvicted(t *testing.T) {
	c, mr := setup(t)
	require.NoError(t, mr.Set("question:2:view",
		`{"id":2,"question":"How?","studentId":10,"tags":[],"answered":false,"submittedAt":"17/10/2026 09:00"}`))

	_, ok := c.GetView(context.Background(), 2)
	assert.False(t, ok)
	assert.False(t, mr.Exists("question:2:view"))
}

func TestSetViewSkippedWhenTTLDisabled(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	c := NewRedisCache(rdb, 0)
	view := answeredView()

	c.SetView(context.Background(), &view)
	assert.False(t, mr.Exists("question:1:view"))
}

func TestDeleteView(t *testing.T) {
	c, mr := setup(t)
	ctx := context.Background()
	view := answeredView()

	c.SetView(ctx, &view)
	c.DeleteView(ctx, 1)

	assert.False(t, mr.Exists("question:1:view"))
}

func TestCorruptEntryIsEvicted(t *testing.T) {
	c, mr := setup(t)
	require.NoError(t, mr.Set("question:3:view", "{not json"))

	_, ok := c.GetView(context.Background(), 3)
	assert.False(t, ok)
	assert.False(t, mr.Exists("question:3:view"))
}

func TestUnavailableRedisIsAMiss(t *testing.T) {
	c, mr := setup(t)
	mr.Close()

	_, ok := c.GetView(context.Background(), 1)
	assert.False(t, ok)
}
