package question

// DefaultPageSize is the number of questions returned per page.
const DefaultPageSize = 10

// AllCategories is the quiz category filter that spans every category.
const AllCategories = 0

// Difficulty bounds accepted on create.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question is a stored trivia question.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category is read-mostly reference data; Type is the display name.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Page is one slice of an ordered result set plus the size of that set.
type Page struct {
	Questions  []Question
	Total      int
	Categories []int // distinct categories present on this page, ascending
}

// QuestionList is the result of ListQuestions.
type QuestionList struct {
	Page
	AllCategories []Category
}

// CategoryPage is the result of ListQuestionsByCategory.
type CategoryPage struct {
	Page
	CategoryID int
}

// NewQuestion carries the fields required to create a question.
// Zero values mean the field was not supplied.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// QuizRequest asks for the next unseen quiz question.
type QuizRequest struct {
	Category int   // AllCategories or a category id
	History  []int // ids already asked in this session
}

// Draw is the outcome of a quiz draw. Exhausted is set when no unseen
// question remains; Question is nil in that case.
type Draw struct {
	Question  *Question
	Exhausted bool
}
