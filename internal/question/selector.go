package question

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var quizDraws = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "trivia",
	Name:      "quiz_draws_total",
	Help:      "Quiz draws by outcome.",
}, []string{"outcome"})

// RandomSource picks an index in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

type questionLister interface {
	ListQuestions(ctx context.Context) ([]Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error)
}

// Selector draws one unseen question per call. It holds no per-session
// state; the caller sends the full history every time.
type Selector struct {
	store   questionLister
	catalog *Catalog
	rng     RandomSource
}

// NewSelector builds a selector. A nil rng uses the math/rand/v2 global
// generator, which is safe for concurrent use. An injected source is used
// as-is and must be safe for however many goroutines share it.
func NewSelector(store questionLister, catalog *Catalog, rng RandomSource) *Selector {
	if rng == nil {
		rng = globalSource{}
	}
	return &Selector{store: store, catalog: catalog, rng: rng}
}

// Draw returns a uniformly random question from the requested category that
// is not in req.History, or an exhausted Draw when none is left. An unknown
// category filter is a validation error.
func (s *Selector) Draw(ctx context.Context, req QuizRequest) (Draw, error) {
	candidates, err := s.candidates(ctx, req.Category)
	if err != nil {
		return Draw{}, err
	}

	asked := make(map[int]struct{}, len(req.History))
	for _, id := range req.History {
		asked[id] = struct{}{}
	}
	eligible := candidates[:0:0]
	for _, q := range candidates {
		if _, seen := asked[q.ID]; !seen {
			eligible = append(eligible, q)
		}
	}

	if len(eligible) == 0 {
		quizDraws.WithLabelValues("exhausted").Inc()
		return Draw{Exhausted: true}, nil
	}
	picked := eligible[s.rng.IntN(len(eligible))]
	quizDraws.WithLabelValues("question").Inc()
	return Draw{Question: &picked}, nil
}

func (s *Selector) candidates(ctx context.Context, category int) ([]Question, error) {
	switch {
	case category == AllCategories:
		qs, err := s.store.ListQuestions(ctx)
		if err != nil {
			return nil, storeErr("list questions", err)
		}
		return qs, nil
	case category < 0:
		return nil, invalid("quiz_category", "must be 0 (all) or a category id")
	}

	if _, err := s.catalog.Resolve(ctx, category); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, invalid("quiz_category", "unknown category")
		}
		return nil, err
	}
	qs, err := s.store.ListQuestionsByCategory(ctx, category)
	if err != nil {
		return nil, storeErr("list questions by category", err)
	}
	return qs, nil
}
