package mocks

import (
	"context"
	"sync"

	"github.com/ayoub-aberbach/foldora/pkg/ports"
)

// Confirmer is a scripted implementation of ports.Confirmer.
// Answers are consumed in order; once exhausted every answer is Default.
type Confirmer struct {
	mu        sync.Mutex
	answers   []bool
	Default   bool
	Err       error
	Questions []string
}

// NewConfirmer creates a Confirmer that returns the given answers in order.
func NewConfirmer(answers ...bool) *Confirmer {
	return &Confirmer{answers: answers}
}

func (m *Confirmer) Confirm(ctx context.Context, question string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Questions = append(m.Questions, question)
	if m.Err != nil {
		return false, m.Err
	}
	if len(m.answers) == 0 {
		return m.Default, nil
	}
	answer := m.answers[0]
	m.answers = m.answers[1:]
	return answer, nil
}

var _ ports.Confirmer = (*Confirmer)(nil)
