package quiz

import (
	"context"
	"math"

	"github.com/saulo-duarte/devllmops-quiz/internal/config"
)

type QuestionService interface {
	ListPublicQuestions(ctx context.Context) []PublicQuestion
}

type GradingService interface {
	Grade(ctx context.Context, submission AnswerSubmission) *GradeReport
}

// GradeObserver receives the outcome of every grading.
type GradeObserver interface {
	ObserveGrade(score, total int)
}

type questionService struct {
	bank *Bank
}

func NewQuestionService(bank *Bank) QuestionService {
	return &questionService{bank: bank}
}

func (s *questionService) ListPublicQuestions(ctx context.Context) []PublicQuestion {
	log := config.WithContext(ctx)

	out := make([]PublicQuestion, 0, s.bank.Len())
	s.bank.each(func(q *Question) {
		out = append(out, PublicQuestion{
			ID:       q.ID,
			Question: q.Text,
			Options:  append([]string(nil), q.Options...),
		})
	})

	log.Debugf("Listed %d public questions", len(out))
	return out
}

type gradingService struct {
	bank     *Bank
	observer GradeObserver
}

// NewGradingService builds a GradingService over bank. observer may be nil.
func NewGradingService(bank *Bank, observer GradeObserver) GradingService {
	return &gradingService{bank: bank, observer: observer}
}

func (s *gradingService) Grade(ctx context.Context, submission AnswerSubmission) *GradeReport {
	log := config.WithContext(ctx)

	results := make([]QuestionResult, 0, s.bank.Len())
	score := 0

	s.bank.each(func(q *Question) {
		var selected *int
		if idx, ok := submission[q.ID]; ok {
			v := idx
			selected = &v
		}

		correct := selected != nil && *selected == q.CorrectIndex
		if correct {
			score++
		}

		results = append(results, QuestionResult{
			ID:            q.ID,
			Correct:       correct,
			CorrectAnswer: q.CorrectIndex,
			Selected:      selected,
			Explanation:   q.Explanation,
		})
	})

	total := s.bank.Len()
	report := &GradeReport{
		Score:      score,
		Total:      total,
		Percentage: Percentage(score, total),
		Results:    results,
	}

	if s.observer != nil {
		s.observer.ObserveGrade(score, total)
	}

	log.WithField("score", score).WithField("total", total).Info("Answers graded")
	return report
}

// Percentage returns score/total*100 rounded half away from zero, so 12.5
// becomes 13. Half-to-even rounding would give 12 there; the two rules
// only differ on exact .5 results. A zero total yields 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
