package main

import (
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"

	"github.com/saulo-duarte/flashdeck-lambda/internal/container"
	"github.com/saulo-duarte/flashdeck-lambda/internal/router"
)

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Aviso: arquivo .env nao encontrado: %v", err)
		}
	}

	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:        c.UserContainer.Handler,
		PostHandler:        c.PostContainer.Handler,
		BlobHandler:        c.BlobContainer.Handler,
		QuizHandler:        c.QuizContainer.Handler,
		QuizSessionHandler: c.QuizSessionContainer.Handler,
		MetricsHandler:     c.MetricsContainer.Handler,
		MetricsRing:        c.MetricsContainer.Ring,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.NewV2(r).ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Servidor ouvindo em http://localhost:%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("falha ao iniciar o servidor: %v", err)
	}
}
