package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type Question struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

// QuestionInput uses a pointer so a missing order can be told apart from zero.
type QuestionInput struct {
	Text  string `json:"text" validate:"required,not_blank"`
	Order *Order `json:"order" validate:"required"`
}

// Order is a question position. Any JSON number without a fractional part is
// accepted, so 2 and 2.0 decode the same. Strings are rejected.
type Order int

func (o *Order) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return fmt.Errorf("order must be a number")
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return err
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return fmt.Errorf("order must be a whole number, got %s", n)
	}
	*o = Order(f)
	return nil
}

type QuestionRepository interface {
	List(ctx context.Context) ([]Question, error)
	GetByID(ctx context.Context, id string) (*Question, error)
	Create(ctx context.Context, question *Question) error
	Update(ctx context.Context, question *Question) (bool, error)
	// Delete removes the question's answers, then the question, in one transaction.
	Delete(ctx context.Context, id string) (bool, error)
}

type QuestionUsecase interface {
	List(ctx context.Context) ([]Question, error)
	Create(ctx context.Context, input QuestionInput) (*Question, error)
	Update(ctx context.Context, id string, input QuestionInput) error
	Delete(ctx context.Context, id string) error
}
