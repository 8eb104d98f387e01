// Package clock отделяет бизнес-логику от системного времени.
package clock

import (
	"sync"
	"time"
)

// Clock возвращает текущее время.
type Clock interface {
	Now() time.Time
}

// Real читает системные часы в UTC.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Fixed всегда возвращает заданный момент; Advance сдвигает его.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}
