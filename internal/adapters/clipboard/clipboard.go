// Package clipboard copies text to the system clipboard through an ordered
// list of strategies. Each strategy either fully succeeds or fails fast; when
// all of them fail the service falls back to showing the text for manual
// copying, so the user always has a path.
package clipboard

import (
	"fmt"
	"io"
)

// Strategy is one way of getting text onto the system clipboard.
type Strategy interface {
	Name() string
	Copy(text string) error
}

// Service implements the best-effort clipboard contract over a strategy
// chain.
type Service struct {
	strategies []Strategy
	fallback   func(text string)
}

// NewService builds the default chain: the native clipboard binding first,
// then the platform copy commands. out receives the manual-copy prompt.
func NewService(out io.Writer) *Service {
	return NewServiceWith(
		func(text string) {
			fmt.Fprintf(out, "Automatic copy failed. Copy this manually:\n%s\n", text)
		},
		nativeStrategy{},
		newCommandStrategy(),
	)
}

// NewServiceWith assembles a service from an explicit fallback and strategy
// order.
func NewServiceWith(fallback func(text string), strategies ...Strategy) *Service {
	return &Service{strategies: strategies, fallback: fallback}
}

// Copy tries each strategy in order and reports whether an automatic copy
// succeeded. On false the fallback has already shown the text to the user.
func (s *Service) Copy(text string) bool {
	for _, st := range s.strategies {
		if err := st.Copy(text); err == nil {
			return true
		}
	}
	if s.fallback != nil {
		s.fallback(text)
	}
	return false
}
