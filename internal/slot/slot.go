// Package slot stores the values of recognized flags.
//
// Each flag owns one Slot. The slot's Arity decides whether the classifier
// pulls a value for it and what a repeated occurrence means: unique-valued
// and boolean slots reject a second occurrence, multi-valued slots append,
// counters increment.
package slot

import "math"

// Arity describes how a flag consumes occurrences.
type Arity int

const (
	Unique  Arity = iota // takes a value, at most once
	Flag                 // takes no value, at most once
	Multi                // takes a value, any number of times
	Counter              // takes no value, any number of times
)

// TakesValue reports whether the classifier must pull a value for the flag.
func (a Arity) TakesValue() bool {
	return a == Unique || a == Multi
}

// Repeatable reports whether the flag may occur more than once.
func (a Arity) Repeatable() bool {
	return a == Multi || a == Counter
}

func (a Arity) String() string {
	switch a {
	case Unique:
		return "unique"
	case Flag:
		return "flag"
	case Multi:
		return "multi"
	case Counter:
		return "counter"
	default:
		return "unknown"
	}
}

// Slot accepts the occurrences of one flag. flag is the spelling the user
// typed and only appears in diagnostics; value is empty for slots that take
// no value.
type Slot interface {
	Arity() Arity
	Accept(flag, value string) error
	Seen() bool
}

var (
	_ Slot = (*Single[string])(nil)
	_ Slot = (*Bool)(nil)
	_ Slot = (*List[string])(nil)
	_ Slot = (*Count)(nil)
)

// Single holds a unique-valued option.
type Single[T any] struct {
	parse func(string) (T, error)
	value T
	seen  bool
}

// NewSingle creates a unique-valued slot converting its value with parse.
func NewSingle[T any](parse func(string) (T, error)) *Single[T] {
	return &Single[T]{parse: parse}
}

func (s *Single[T]) Arity() Arity { return Unique }
func (s *Single[T]) Seen() bool   { return s.seen }

func (s *Single[T]) Accept(flag, value string) error {
	if s.seen {
		return &DuplicateArgumentError{Flag: flag}
	}
	v, err := s.parse(value)
	if err != nil {
		return &InvalidValueError{Flag: flag, Value: value, Err: err}
	}
	s.value = v
	s.seen = true
	return nil
}

// Ptr returns a pointer to a copy of the value, or nil when the flag was not
// given.
func (s *Single[T]) Ptr() *T {
	if !s.seen {
		return nil
	}
	v := s.value
	return &v
}

// Bool holds a boolean flag.
type Bool struct {
	set bool
}

func (b *Bool) Arity() Arity { return Flag }
func (b *Bool) Seen() bool   { return b.set }
func (b *Bool) Get() bool    { return b.set }

func (b *Bool) Accept(flag, _ string) error {
	if b.set {
		return &DuplicateArgumentError{Flag: flag}
	}
	b.set = true
	return nil
}

// List holds a multi-valued option in order of appearance.
type List[T any] struct {
	parse  func(string) (T, error)
	values []T
}

// NewList creates a multi-valued slot converting each value with parse.
func NewList[T any](parse func(string) (T, error)) *List[T] {
	return &List[T]{parse: parse}
}

func (l *List[T]) Arity() Arity { return Multi }
func (l *List[T]) Seen() bool   { return len(l.values) > 0 }

func (l *List[T]) Accept(flag, value string) error {
	v, err := l.parse(value)
	if err != nil {
		return &InvalidValueError{Flag: flag, Value: value, Err: err}
	}
	l.values = append(l.values, v)
	return nil
}

// Values returns the collected values; never nil.
func (l *List[T]) Values() []T {
	out := make([]T, len(l.values))
	copy(out, l.values)
	return out
}

// Count counts occurrences of a flag such as -v.
type Count struct {
	n int
}

func (c *Count) Arity() Arity { return Counter }
func (c *Count) Seen() bool   { return c.n > 0 }

func (c *Count) Accept(_, _ string) error {
	if c.n < math.MaxInt {
		c.n++
	}
	return nil
}

// N returns the raw number of occurrences.
func (c *Count) N() int { return c.n }

// Uint8 returns the count saturated to math.MaxUint8.
func (c *Count) Uint8() uint8 {
	if c.n > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(c.n)
}
