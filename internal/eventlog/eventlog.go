// Package eventlog mantém o registro ordenado e somente-anexação das ações da rede.
package eventlog

import (
	"fmt"
	"sync"
	"time"
)

// TimeLayout é o formato HH:MM:SS usado na renderização das entradas.
const TimeLayout = "15:04:05"

// Entry é um evento com o instante em que foi registrado.
type Entry struct {
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

// String renderiza a entrada como "HH:MM:SS - mensagem".
func (e Entry) String() string {
	return fmt.Sprintf("%s - %s", e.Time.Format(TimeLayout), e.Message)
}

// Log é seguro para uso concorrente. Entradas nunca são alteradas ou removidas.
type Log struct {
	mu      sync.Mutex
	now     func() time.Time
	entries []Entry
}

// New cria um Log usando o relógio informado; nil usa time.Now.
func New(now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}
	return &Log{now: now}
}

// Append registra a mensagem e devolve a entrada criada.
func (l *Log) Append(message string) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := Entry{Time: l.now(), Message: message}
	l.entries = append(l.entries, e)
	return e
}

// Entries devolve uma cópia das entradas na ordem de registro.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Lines devolve as entradas já formatadas.
func (l *Log) Lines() []string {
	entries := l.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
