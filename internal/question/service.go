package question

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Store is the record store behind the service. List methods return
// questions ordered by id. DeleteQuestion returns an error matching
// ErrNotFound when no row has the id.
type Store interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListQuestions(ctx context.Context) ([]Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error)
	InsertQuestion(ctx context.Context, q NewQuestion) (Question, error)
	DeleteQuestion(ctx context.Context, id int) error
}

// Service answers the list, search, category and quiz queries.
type Service struct {
	store    Store
	catalog  *Catalog
	selector *Selector
	pageSize int
	logger   zerolog.Logger
}

type ServiceOptions struct {
	PageSize      int
	CategoryCache CategoryCache
	Random        RandomSource
}

func NewService(store Store, opts ServiceOptions, logger zerolog.Logger) *Service {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	catalog := NewCatalog(store, opts.CategoryCache, logger)
	return &Service{
		store:    store,
		catalog:  catalog,
		selector: NewSelector(store, catalog, opts.Random),
		pageSize: pageSize,
		logger:   logger.With().Str("component", "question_service").Logger(),
	}
}

// Catalog exposes the category catalog backing the service.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// ListCategories returns every category ordered by id.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.catalog.All(ctx)
}

// ListQuestions pages through every question. Total is the store size.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionList, error) {
	all, err := s.store.ListQuestions(ctx)
	if err != nil {
		return QuestionList{}, storeErr("list questions", err)
	}
	p, err := s.page(all, page)
	if err != nil {
		return QuestionList{}, err
	}
	categories, err := s.catalog.All(ctx)
	if err != nil {
		return QuestionList{}, err
	}
	return QuestionList{Page: p, AllCategories: categories}, nil
}

// SearchQuestions pages through questions whose text contains term.
// Total counts the matched questions only.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (Page, error) {
	all, err := s.store.ListQuestions(ctx)
	if err != nil {
		return Page{}, storeErr("search questions", err)
	}
	matcher := NewMatcher(term)
	matched := make([]Question, 0, len(all))
	for _, q := range all {
		if matcher.Match(q.Question) {
			matched = append(matched, q)
		}
	}
	return s.page(matched, page)
}

// ListQuestionsByCategory pages through one category's questions. An
// unknown category id is ErrNotFound.
func (s *Service) ListQuestionsByCategory(ctx context.Context, categoryID, page int) (CategoryPage, error) {
	if _, err := s.catalog.Resolve(ctx, categoryID); err != nil {
		return CategoryPage{}, err
	}
	qs, err := s.store.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return CategoryPage{}, storeErr("list questions by category", err)
	}
	p, err := s.page(qs, page)
	if err != nil {
		return CategoryPage{}, err
	}
	return CategoryPage{Page: p, CategoryID: categoryID}, nil
}

// CreateQuestion validates q and stores it.
func (s *Service) CreateQuestion(ctx context.Context, q NewQuestion) (Question, error) {
	q.Question = strings.TrimSpace(q.Question)
	q.Answer = strings.TrimSpace(q.Answer)
	switch {
	case q.Question == "":
		return Question{}, unprocessable("question", "required")
	case q.Answer == "":
		return Question{}, unprocessable("answer", "required")
	case q.Category == 0:
		return Question{}, unprocessable("category", "required")
	case q.Difficulty == 0:
		return Question{}, unprocessable("difficulty", "required")
	case q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty:
		return Question{}, unprocessable("difficulty", fmt.Sprintf("must be between %d and %d", MinDifficulty, MaxDifficulty))
	}
	if _, err := s.catalog.Resolve(ctx, q.Category); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Question{}, unprocessable("category", "unknown category")
		}
		return Question{}, err
	}

	created, err := s.store.InsertQuestion(ctx, q)
	if err != nil {
		return Question{}, storeErr("insert question", err)
	}
	s.logger.Info().Int("question_id", created.ID).Int("category", created.Category).Msg("question created")
	return created, nil
}

// DeleteQuestion removes the question with the given id.
func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	if id < 1 {
		return invalid("id", "must be a positive integer")
	}
	if err := s.store.DeleteQuestion(ctx, id); err != nil {
		return storeErr("delete question", err)
	}
	s.logger.Info().Int("question_id", id).Msg("question deleted")
	return nil
}

// DrawQuizQuestion picks the next unseen quiz question.
func (s *Service) DrawQuizQuestion(ctx context.Context, req QuizRequest) (Draw, error) {
	return s.selector.Draw(ctx, req)
}

func (s *Service) page(qs []Question, page int) (Page, error) {
	items, err := Paginate(qs, page, s.pageSize)
	if err != nil {
		return Page{}, err
	}
	return Page{Questions: items, Total: len(qs), Categories: categoriesOf(items)}, nil
}

func categoriesOf(qs []Question) []int {
	ids := make([]int, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.Category)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}
