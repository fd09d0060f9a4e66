package metrics

const defaultCapacity = 256

type MetricsContainer struct {
	Handler *Handler
	Ring    *Ring
}

func NewMetricsContainer() *MetricsContainer {
	ring := NewRing(defaultCapacity)
	handler := NewHandler(ring)

	return &MetricsContainer{
		Handler: handler,
		Ring:    ring,
	}
}
