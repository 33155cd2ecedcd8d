package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/devllmops-quiz/internal/config"
	"github.com/saulo-duarte/devllmops-quiz/internal/container"
	"github.com/saulo-duarte/devllmops-quiz/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func init() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	c := container.New(cfg)
	chiLambda = chiadapter.New(router.New(router.RouterConfig{
		QuizHandler:    c.QuizContainer.Handler,
		Metrics:        c.Metrics,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}))
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
