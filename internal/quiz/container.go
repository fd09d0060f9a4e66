package quiz

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewQuizContainer(source Source) *QuizContainer {
	service := NewService(source)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
