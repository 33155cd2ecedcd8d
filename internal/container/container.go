package container

import (
	"context"

	"github.com/saulo-duarte/devllmops-quiz/internal/config"
	"github.com/saulo-duarte/devllmops-quiz/internal/metrics"
	"github.com/saulo-duarte/devllmops-quiz/internal/quiz"
)

type Container struct {
	Config        *config.Config
	Metrics       *metrics.Metrics
	QuizContainer *quiz.QuizContainer
}

func New(cfg *config.Config) *Container {
	config.InitLogger(cfg)

	m := metrics.New()
	quizContainer := quiz.NewQuizContainer(quiz.DefaultBank(), m)

	config.WithContext(context.Background()).
		WithField("questions", quizContainer.Bank.Len()).
		Info("Question bank loaded")

	return &Container{
		Config:        cfg,
		Metrics:       m,
		QuizContainer: quizContainer,
	}
}
