package quiz

type QuizContainer struct {
	Bank            *Bank
	QuestionService QuestionService
	GradingService  GradingService
	Handler         *Handler
}

func NewQuizContainer(bank *Bank, observer GradeObserver) *QuizContainer {
	questions := NewQuestionService(bank)
	grading := NewGradingService(bank, observer)
	handler := NewHandler(questions, grading)

	return &QuizContainer{
		Bank:            bank,
		QuestionService: questions,
		GradingService:  grading,
		Handler:         handler,
	}
}
