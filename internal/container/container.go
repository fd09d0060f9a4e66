package container

import (
	"context"
	"log"
	"os"

	"github.com/saulo-duarte/flashdeck-lambda/internal/auth"
	"github.com/saulo-duarte/flashdeck-lambda/internal/blob"
	"github.com/saulo-duarte/flashdeck-lambda/internal/config"
	"github.com/saulo-duarte/flashdeck-lambda/internal/metrics"
	"github.com/saulo-duarte/flashdeck-lambda/internal/post"
	"github.com/saulo-duarte/flashdeck-lambda/internal/quiz"
	"github.com/saulo-duarte/flashdeck-lambda/internal/quizsession"
	"github.com/saulo-duarte/flashdeck-lambda/internal/user"
)

const defaultQuizContentDir = "data/quizzes"

type Container struct {
	UserContainer        *user.UserContainer
	PostContainer        *post.PostContainer
	BlobContainer        *blob.BlobContainer
	QuizContainer        *quiz.QuizContainer
	QuizSessionContainer *quizsession.QuizSessionContainer
	MetricsContainer     *metrics.MetricsContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := migrate(); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	quizDir := os.Getenv("QUIZ_CONTENT_DIR")
	if quizDir == "" {
		quizDir = defaultQuizContentDir
	}

	userContainer := user.NewUserContainer(config.DB)
	postContainer := post.NewPostContainer(config.DB)
	blobContainer := blob.NewBlobContainer(config.DB)
	quizContainer := quiz.NewQuizContainer(quiz.NewDirSource(quizDir))
	quizSessionContainer := quizsession.NewQuizSessionContainer(config.DB, quizContainer.Service)
	metricsContainer := metrics.NewMetricsContainer()

	return &Container{
		UserContainer:        userContainer,
		PostContainer:        postContainer,
		BlobContainer:        blobContainer,
		QuizContainer:        quizContainer,
		QuizSessionContainer: quizSessionContainer,
		MetricsContainer:     metricsContainer,
	}
}

func migrate() error {
	return config.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
		&blob.Blob{},
		&quizsession.QuizSession{},
		&quizsession.UserAnswer{},
		&quizsession.FlaggedItem{},
	)
}
