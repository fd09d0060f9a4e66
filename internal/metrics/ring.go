package metrics

import (
	"sync"
	"time"
)

type Sample struct {
	Method   string        `json:"method"`
	Path     string        `json:"path"`
	Status   int           `json:"status"`
	Duration time.Duration `json:"duration_ns"`
	At       time.Time     `json:"at"`
}

// Ring guarda as últimas N amostras de requisição em memória,
// sobrescrevendo as mais antigas quando enche.
type Ring struct {
	mu      sync.RWMutex
	samples []Sample
	next    int
	filled  bool
}

func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 1
	}
	return &Ring{samples: make([]Sample, capacity)}
}

func (r *Ring) Record(s Sample) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.samples[r.next] = s
	r.next++
	if r.next == len(r.samples) {
		r.next = 0
		r.filled = true
	}
}

func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.filled {
		return len(r.samples)
	}
	return r.next
}

// Recent retorna até limit amostras, da mais nova para a mais antiga.
// limit <= 0 retorna todas.
func (r *Ring) Recent(limit int) []Sample {
	r.mu.RLock()
	defer r.mu.RUnlock()

	size := r.next
	if r.filled {
		size = len(r.samples)
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]Sample, 0, limit)
	for i := 0; i < limit; i++ {
		idx := (r.next - 1 - i + len(r.samples)) % len(r.samples)
		out = append(out, r.samples[idx])
	}
	return out
}
