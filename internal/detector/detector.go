// Package detector dispatches source units to detection capabilities,
// scores the verdicts, and filters them by confidence.
package detector

import (
	"context"
	"errors"
	"sync"

	"github.com/debtguard/debtguard/pkg/models"
)

// ErrNoResponse is returned by a capability when the backing detector
// produced no usable answer. The dispatcher converts it into an UNKNOWN
// verdict with zero confidence instead of failing the batch.
var ErrNoResponse = errors.New("detector produced no response")

// Response is a raw detector answer before scoring.
type Response struct {
	// Label is the normalized label, one of the granularity's valid set
	// or UNKNOWN.
	Label string

	// Raw is the unprocessed detector output, kept for diagnostics.
	Raw string
}

// Capability answers debt questions for one granularity. Implementations
// must be safe for concurrent use; the dispatcher calls Detect from
// multiple goroutines when parallel dispatch is on.
type Capability interface {
	Detect(ctx context.Context, unit *models.SourceUnit) (Response, error)
	Granularity() models.Granularity
}

// Lazy defers construction of a capability until its first use. The
// class and method capabilities are independent, so a run that only
// yields classes never pays for the method detector.
type Lazy struct {
	granularity models.Granularity
	build       func() (Capability, error)

	once  sync.Once
	built Capability
	err   error
}

// NewLazy wraps a capability constructor.
func NewLazy(g models.Granularity, build func() (Capability, error)) *Lazy {
	return &Lazy{granularity: g, build: build}
}

// Detect builds the wrapped capability on first call and delegates.
func (l *Lazy) Detect(ctx context.Context, unit *models.SourceUnit) (Response, error) {
	l.once.Do(func() {
		l.built, l.err = l.build()
	})
	if l.err != nil {
		return Response{}, l.err
	}
	return l.built.Detect(ctx, unit)
}

// Granularity implements Capability.
func (l *Lazy) Granularity() models.Granularity {
	return l.granularity
}
