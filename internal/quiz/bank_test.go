package quiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/devllmops-quiz/internal/quiz"
)

func sampleQuestion(id, correct int) quiz.Question {
	return quiz.Question{
		ID:           id,
		Text:         "question",
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: correct,
		Explanation:  "because",
	}
}

func TestDefaultBank(t *testing.T) {
	bank := quiz.DefaultBank()
	require.Equal(t, 10, bank.Len())

	seen := map[int]bool{}
	for i, q := range bank.Questions() {
		assert.Equal(t, i+1, q.ID, "bank order must follow ids")
		assert.False(t, seen[q.ID], "duplicate id %d", q.ID)
		seen[q.ID] = true
		assert.Len(t, q.Options, quiz.OptionsPerQuestion)
		assert.GreaterOrEqual(t, q.CorrectIndex, 0)
		assert.Less(t, q.CorrectIndex, len(q.Options))
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.Explanation)
	}
}

func TestNewBankValidation(t *testing.T) {
	cases := []struct {
		name      string
		questions []quiz.Question
		want      error
	}{
		{"Empty", nil, quiz.ErrEmptyBank},
		{"ZeroID", []quiz.Question{sampleQuestion(0, 0)}, quiz.ErrInvalidQuestionID},
		{"DuplicateID", []quiz.Question{sampleQuestion(1, 0), sampleQuestion(1, 1)}, quiz.ErrDuplicateQuestion},
		{"CorrectTooHigh", []quiz.Question{sampleQuestion(1, 4)}, quiz.ErrCorrectOutOfRange},
		{"CorrectNegative", []quiz.Question{sampleQuestion(1, -1)}, quiz.ErrCorrectOutOfRange},
		{"ThreeOptions", []quiz.Question{{ID: 1, Options: []string{"a", "b", "c"}}}, quiz.ErrWrongOptionCount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := quiz.NewBank(tc.questions)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("MustNewBankPanics", func(t *testing.T) {
		assert.Panics(t, func() { quiz.MustNewBank(nil) })
	})
}

func TestBankIsImmutable(t *testing.T) {
	input := []quiz.Question{sampleQuestion(1, 2)}
	bank, err := quiz.NewBank(input)
	require.NoError(t, err)

	input[0].Options[2] = "changed by caller"
	input[0].CorrectIndex = 0

	got := bank.Questions()
	assert.Equal(t, "c", got[0].Options[2])
	assert.Equal(t, 2, got[0].CorrectIndex)

	got[0].Options[0] = "changed by reader"
	assert.Equal(t, "a", bank.Questions()[0].Options[0])
}
