package question

import (
	"context"
	"fmt"
	"slices"
)

// memStore is an in-memory Store for coordinator and selector tests.
type memStore struct {
	categories []Category
	questions  []Question
	nextID     int
	err        error
}

func newMemStore() *memStore {
	return &memStore{
		categories: []Category{
			{ID: 1, Type: "Science"},
			{ID: 2, Type: "Art"},
			{ID: 3, Type: "Geography"},
			{ID: 4, Type: "History"},
			{ID: 5, Type: "Entertainment"},
			{ID: 6, Type: "Sports"},
		},
		nextID: 1,
	}
}

func (s *memStore) add(text string, category int) Question {
	q := Question{ID: s.nextID, Question: text, Answer: "answer", Category: category, Difficulty: 1}
	s.nextID++
	s.questions = append(s.questions, q)
	return q
}

func (s *memStore) ListCategories(context.Context) ([]Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return slices.Clone(s.categories), nil
}

func (s *memStore) ListQuestions(context.Context) ([]Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	return slices.Clone(s.questions), nil
}

func (s *memStore) ListQuestionsByCategory(_ context.Context, categoryID int) ([]Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []Question
	for _, q := range s.questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *memStore) InsertQuestion(_ context.Context, nq NewQuestion) (Question, error) {
	if s.err != nil {
		return Question{}, s.err
	}
	q := Question{ID: s.nextID, Question: nq.Question, Answer: nq.Answer, Category: nq.Category, Difficulty: nq.Difficulty}
	s.nextID++
	s.questions = append(s.questions, q)
	return q, nil
}

func (s *memStore) DeleteQuestion(_ context.Context, id int) error {
	if s.err != nil {
		return s.err
	}
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = slices.Delete(s.questions, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("question %d: %w", id, ErrNotFound)
}

func ids(qs []Question) []int {
	out := make([]int, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
