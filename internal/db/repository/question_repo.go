package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgconn"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/question"
)

const pgForeignKeyViolation = "23503"

type questionStore interface {
	ListCategories(ctx context.Context) ([]sqlcgen.Category, error)
	ListQuestions(ctx context.Context) ([]sqlcgen.Question, error)
	ListQuestionsByCategory(ctx context.Context, category int32) ([]sqlcgen.Question, error)
	InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	DeleteQuestion(ctx context.Context, id int32) (int64, error)
}

// QuestionRepository is the Postgres-backed record store for questions
// and categories.
type QuestionRepository struct {
	store questionStore
}

var _ question.Store = (*QuestionRepository)(nil)

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

func (r *QuestionRepository) ListCategories(ctx context.Context) ([]question.Category, error) {
	rows, err := r.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]question.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, question.Category{ID: int(row.ID), Type: row.Type})
	}
	return out, nil
}

func (r *QuestionRepository) ListQuestions(ctx context.Context) ([]question.Question, error) {
	rows, err := r.store.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	return toDomain(rows), nil
}

func (r *QuestionRepository) ListQuestionsByCategory(ctx context.Context, categoryID int) ([]question.Question, error) {
	id, ok := toInt32(categoryID)
	if !ok {
		return []question.Question{}, nil
	}
	rows, err := r.store.ListQuestionsByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDomain(rows), nil
}

// InsertQuestion stores q. A category the database does not know about
// surfaces as question.ErrUnprocessable.
func (r *QuestionRepository) InsertQuestion(ctx context.Context, q question.NewQuestion) (question.Question, error) {
	category, ok := toInt32(q.Category)
	if !ok {
		return question.Question{}, fmt.Errorf("category %d: %w", q.Category, question.ErrUnprocessable)
	}
	difficulty, ok := toInt32(q.Difficulty)
	if !ok {
		return question.Question{}, fmt.Errorf("difficulty %d: %w", q.Difficulty, question.ErrUnprocessable)
	}
	row, err := r.store.InsertQuestion(ctx, sqlcgen.InsertQuestionParams{
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   category,
		Difficulty: difficulty,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return question.Question{}, fmt.Errorf("category %d: %w", q.Category, question.ErrUnprocessable)
		}
		return question.Question{}, err
	}
	return fromRow(row), nil
}

// DeleteQuestion removes the row with id, or returns question.ErrNotFound.
func (r *QuestionRepository) DeleteQuestion(ctx context.Context, id int) error {
	key, ok := toInt32(id)
	if !ok {
		return fmt.Errorf("question %d: %w", id, question.ErrNotFound)
	}
	n, err := r.store.DeleteQuestion(ctx, key)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("question %d: %w", id, question.ErrNotFound)
	}
	return nil
}

// toInt32 narrows an id to the INTEGER column type. Ids outside that range
// cannot exist in the table.
func toInt32(id int) (int32, bool) {
	if id < math.MinInt32 || id > math.MaxInt32 {
		return 0, false
	}
	return int32(id), true
}

func toDomain(rows []sqlcgen.Question) []question.Question {
	out := make([]question.Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out
}

func fromRow(row sqlcgen.Question) question.Question {
	return question.Question{
		ID:         int(row.ID),
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   int(row.Category),
		Difficulty: int(row.Difficulty),
	}
}
