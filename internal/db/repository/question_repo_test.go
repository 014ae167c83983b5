package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/question"
)

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) ListCategories(ctx context.Context) ([]sqlcgen.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sqlcgen.Category), args.Error(1)
}

func (m *mockQuestionStore) ListQuestions(ctx context.Context) ([]sqlcgen.Question, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sqlcgen.Question), args.Error(1)
}

func (m *mockQuestionStore) ListQuestionsByCategory(ctx context.Context, category int32) ([]sqlcgen.Question, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]sqlcgen.Question), args.Error(1)
}

func (m *mockQuestionStore) InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(sqlcgen.Question), args.Error(1)
}

func (m *mockQuestionStore) DeleteQuestion(ctx context.Context, id int32) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestQuestionRepository_ListCategories(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	store.On("ListCategories", mock.Anything).Return([]sqlcgen.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}, nil)

	got, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []question.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}, got)
	store.AssertExpectations(t)
}

func TestQuestionRepository_ListQuestionsByCategory(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	store.On("ListQuestionsByCategory", mock.Anything, int32(3)).Return([]sqlcgen.Question{
		{ID: 7, Question: "Where is Lake Titicaca?", Answer: "Peru/Bolivia", Category: 3, Difficulty: 2},
	}, nil)

	got, err := repo.ListQuestionsByCategory(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, question.Question{ID: 7, Question: "Where is Lake Titicaca?", Answer: "Peru/Bolivia", Category: 3, Difficulty: 2}, got[0])
	store.AssertExpectations(t)
}

func TestQuestionRepository_ListQuestionsPropagatesError(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	dbErr := errors.New("connection reset")
	store.On("ListQuestions", mock.Anything).Return([]sqlcgen.Question(nil), dbErr)

	_, err := repo.ListQuestions(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestQuestionRepository_Insert(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	params := sqlcgen.InsertQuestionParams{Question: "Q", Answer: "A", Category: 1, Difficulty: 3}
	store.On("InsertQuestion", mock.Anything, params).Return(sqlcgen.Question{
		ID: 24, Question: "Q", Answer: "A", Category: 1, Difficulty: 3,
	}, nil)

	got, err := repo.InsertQuestion(context.Background(), question.NewQuestion{Question: "Q", Answer: "A", Category: 1, Difficulty: 3})
	require.NoError(t, err)
	assert.Equal(t, 24, got.ID)
	store.AssertExpectations(t)
}

func TestQuestionRepository_InsertUnknownCategory(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	store.On("InsertQuestion", mock.Anything, mock.Anything).
		Return(sqlcgen.Question{}, &pgconn.PgError{Code: pgForeignKeyViolation})

	_, err := repo.InsertQuestion(context.Background(), question.NewQuestion{Question: "Q", Answer: "A", Category: 42, Difficulty: 1})
	assert.ErrorIs(t, err, question.ErrUnprocessable)
}

func TestQuestionRepository_Delete(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	store.On("DeleteQuestion", mock.Anything, int32(5)).Return(int64(1), nil)
	store.On("DeleteQuestion", mock.Anything, int32(99)).Return(int64(0), nil)

	assert.NoError(t, repo.DeleteQuestion(context.Background(), 5))
	assert.ErrorIs(t, repo.DeleteQuestion(context.Background(), 99), question.ErrNotFound)
	store.AssertExpectations(t)
}

func TestQuestionRepository_OutOfRangeIDsNeverReachStore(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)
	ctx := context.Background()

	// 1<<32+5 would wrap to 5 if narrowed blindly.
	err := repo.DeleteQuestion(ctx, 1<<32+5)
	assert.ErrorIs(t, err, question.ErrNotFound)

	qs, err := repo.ListQuestionsByCategory(ctx, 1<<32+1)
	require.NoError(t, err)
	assert.Empty(t, qs)

	_, err = repo.InsertQuestion(ctx, question.NewQuestion{Question: "Q", Answer: "A", Category: 1<<32 + 1, Difficulty: 1})
	assert.ErrorIs(t, err, question.ErrUnprocessable)

	store.AssertNotCalled(t, "DeleteQuestion", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "ListQuestionsByCategory", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "InsertQuestion", mock.Anything, mock.Anything)
}
