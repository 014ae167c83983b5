package sqlcgen

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Category struct {
	ID   int32
	Type string
}

type Question struct {
	ID         int32
	Question   string
	Answer     string
	Category   int32
	Difficulty int32
	CreatedAt  pgtype.Timestamptz
}
