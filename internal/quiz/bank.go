package quiz

import (
	"errors"
	"fmt"
)

const OptionsPerQuestion = 4

var (
	ErrEmptyBank         = errors.New("question bank is empty")
	ErrInvalidQuestionID = errors.New("question id must be positive")
	ErrDuplicateQuestion = errors.New("duplicate question id")
	ErrWrongOptionCount  = errors.New("question must have exactly 4 options")
	ErrCorrectOutOfRange = errors.New("correct index out of range")
)

// Bank is the read-only, ordered set of quiz questions. It is safe for
// concurrent use because nothing mutates it after NewBank returns.
type Bank struct {
	questions []Question
}

func NewBank(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}

	seen := make(map[int]struct{}, len(questions))
	copied := make([]Question, 0, len(questions))

	for _, q := range questions {
		if q.ID <= 0 {
			return nil, fmt.Errorf("question %d: %w", q.ID, ErrInvalidQuestionID)
		}
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("question %d: %w", q.ID, ErrDuplicateQuestion)
		}
		if len(q.Options) != OptionsPerQuestion {
			return nil, fmt.Errorf("question %d has %d options: %w", q.ID, len(q.Options), ErrWrongOptionCount)
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, fmt.Errorf("question %d correct index %d: %w", q.ID, q.CorrectIndex, ErrCorrectOutOfRange)
		}
		seen[q.ID] = struct{}{}

		q.Options = append([]string(nil), q.Options...)
		copied = append(copied, q)
	}

	return &Bank{questions: copied}, nil
}

func MustNewBank(questions []Question) *Bank {
	b, err := NewBank(questions)
	if err != nil {
		panic(fmt.Sprintf("quiz: invalid question bank: %v", err))
	}
	return b
}

func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns a deep copy of the bank in bank order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// each walks the bank in order without copying. fn must not retain or
// modify q.Options.
func (b *Bank) each(fn func(q *Question)) {
	for i := range b.questions {
		fn(&b.questions[i])
	}
}
