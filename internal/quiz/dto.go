package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrInvalidBody    = errors.New("invalid request body")
	ErrMissingAnswers = errors.New("field required: answers")
)

// ValidationError reports a well-formed JSON body of the wrong shape.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

type SubmitAnswersRequest struct {
	Answers map[string]int `json:"answers"`
}

// DecodeSubmission parses {"answers": {"<id>": <index>}} into an
// AnswerSubmission. Non-JSON input yields ErrInvalidBody; JSON of the wrong
// shape yields a *ValidationError or ErrMissingAnswers. The handler reports
// all three as 422.
func DecodeSubmission(r io.Reader) (AnswerSubmission, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidBody
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, &ValidationError{Field: "body", Reason: "must be a JSON object"}
	}

	answers, ok := body["answers"]
	if !ok || isNull(answers) {
		return nil, ErrMissingAnswers
	}

	return ParseAnswers(answers)
}

// ParseAnswers coerces the string keys of the answers object to question ids
// and each value to an option index. Keys are processed in sorted order so
// that "1" and "01" resolve deterministically. An integral key too large for
// int can never name a bank question and is dropped like any unknown id.
func ParseAnswers(raw json.RawMessage) (AnswerSubmission, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &ValidationError{Field: "answers", Reason: "must be an object mapping question id to option index"}
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	submission := make(AnswerSubmission, len(entries))
	for _, k := range keys {
		idx, err := parseIndex(entries[k])
		if err != nil {
			return nil, &ValidationError{Field: "answers." + k, Reason: err.Error()}
		}

		id, err := strconv.Atoi(k)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				continue
			}
			return nil, &ValidationError{Field: "answers." + k, Reason: "key must be an integer question id"}
		}
		submission[id] = idx
	}

	return submission, nil
}

var errNotInteger = errors.New("value must be an integer")

// parseIndex accepts any integral JSON number, an integer string, or a
// boolean (true is 1, false is 0). Values beyond the int range are clamped
// to math.MaxInt or math.MinInt, which never match an option index.
func parseIndex(raw json.RawMessage) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return 0, errNotInteger
	}

	switch val := v.(type) {
	case json.Number:
		return numberToInt(string(val))
	case string:
		return numericStringToInt(strings.TrimSpace(val))
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, errNotInteger
	}
}

// numberToInt converts a JSON number token. 2.0 and 1e2 are integral;
// 1.5 is not.
func numberToInt(s string) (int, error) {
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0)) {
		return 0, errNotInteger
	}
	if !math.IsInf(f, 0) && f != math.Trunc(f) {
		return 0, errNotInteger
	}
	return clampFloat(f), nil
}

func numericStringToInt(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err == nil {
		return i, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	}
	return 0, errNotInteger
}

func clampFloat(f float64) int {
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	default:
		return int(f)
	}
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
