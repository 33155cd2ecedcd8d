package quiz_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/devllmops-quiz/internal/quiz"
)

func TestDecodeSubmission(t *testing.T) {
	t.Run("CoercesStringKeys", func(t *testing.T) {
		sub, err := quiz.DecodeSubmission(strings.NewReader(`{"answers": {"1": 0, "2": 2, "10": 3}}`))
		require.NoError(t, err)
		assert.Equal(t, quiz.AnswerSubmission{1: 0, 2: 2, 10: 3}, sub)
	})

	t.Run("AcceptsIntegralFloatsAndNumericStrings", func(t *testing.T) {
		sub, err := quiz.DecodeSubmission(strings.NewReader(`{"answers": {"1": 2.0, "2": "3"}}`))
		require.NoError(t, err)
		assert.Equal(t, quiz.AnswerSubmission{1: 2, 2: 3}, sub)
	})

	t.Run("AcceptsBooleansAsZeroOrOne", func(t *testing.T) {
		sub, err := quiz.DecodeSubmission(strings.NewReader(`{"answers": {"1": true, "2": false}}`))
		require.NoError(t, err)
		assert.Equal(t, quiz.AnswerSubmission{1: 1, 2: 0}, sub)
	})

	t.Run("ClampsValuesBeyondIntRange", func(t *testing.T) {
		body := `{"answers": {"1": 99999999999999999999, "2": -1e300, "3": "99999999999999999999", "4": 99999999999}}`
		sub, err := quiz.DecodeSubmission(strings.NewReader(body))
		require.NoError(t, err)
		assert.Equal(t, math.MaxInt, sub[1])
		assert.Equal(t, math.MinInt, sub[2])
		assert.Equal(t, math.MaxInt, sub[3])
		assert.EqualValues(t, int64(99999999999), sub[4])
	})

	t.Run("DropsKeysBeyondIntRange", func(t *testing.T) {
		sub, err := quiz.DecodeSubmission(strings.NewReader(`{"answers": {"99999999999999999999": 0, "1": 0}}`))
		require.NoError(t, err)
		assert.Equal(t, quiz.AnswerSubmission{1: 0}, sub)
	})

	t.Run("EmptyAnswersIsValid", func(t *testing.T) {
		sub, err := quiz.DecodeSubmission(strings.NewReader(`{"answers": {}}`))
		require.NoError(t, err)
		assert.Empty(t, sub)
	})

	t.Run("IgnoresExtraTopLevelFields", func(t *testing.T) {
		sub, err := quiz.DecodeSubmission(strings.NewReader(`{"answers": {"1": 0}, "user": "x"}`))
		require.NoError(t, err)
		assert.Equal(t, quiz.AnswerSubmission{1: 0}, sub)
	})

	t.Run("NotJSON", func(t *testing.T) {
		_, err := quiz.DecodeSubmission(strings.NewReader(`{"answers":`))
		assert.ErrorIs(t, err, quiz.ErrInvalidBody)

		_, err = quiz.DecodeSubmission(strings.NewReader(``))
		assert.ErrorIs(t, err, quiz.ErrInvalidBody)
	})

	t.Run("MissingAnswers", func(t *testing.T) {
		_, err := quiz.DecodeSubmission(strings.NewReader(`{}`))
		assert.ErrorIs(t, err, quiz.ErrMissingAnswers)

		_, err = quiz.DecodeSubmission(strings.NewReader(`{"answers": null}`))
		assert.ErrorIs(t, err, quiz.ErrMissingAnswers)
	})

	invalid := map[string]string{
		"BodyNotObject":    `[1, 2]`,
		"AnswersNotObject": `{"answers": [0, 1]}`,
		"NonNumericKey":    `{"answers": {"one": 0}}`,
		"FractionalValue":  `{"answers": {"1": 1.5}}`,
		"NullValue":        `{"answers": {"1": null}}`,
		"WordValue":        `{"answers": {"1": "first"}}`,
		"ObjectValue":      `{"answers": {"1": {"index": 0}}}`,
		"WordStringValue":  `{"answers": {"1": "inf"}}`,
		"FloatStringValue": `{"answers": {"1": "1.5"}}`,
	}

	for name, body := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := quiz.DecodeSubmission(strings.NewReader(body))
			var verr *quiz.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Reason)
		})
	}
}
