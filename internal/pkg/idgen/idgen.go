package idgen

import "sync"

// Allocator distribui IDs inteiros crescentes para armazéns.
// É criado e mantido pelo serviço de roteamento, não é estado global.
type Allocator struct {
	mu   sync.Mutex
	next int
}

// New cria um alocador cujo primeiro ID será start (mínimo 1).
func New(start int) *Allocator {
	a := &Allocator{}
	a.Reset(start)
	return a
}

// Next devolve o próximo ID livre.
func (a *Allocator) Next() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.next
	a.next++
	return id
}

// Observe registra um ID atribuído explicitamente, para que Next nunca o repita.
func (a *Allocator) Observe(id int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if id >= a.next {
		a.next = id + 1
	}
}

// Reset reinicia a sequência (usado em testes e no seed de demonstração).
func (a *Allocator) Reset(start int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if start < 1 {
		start = 1
	}
	a.next = start
}
