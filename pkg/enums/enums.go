// pkg/enums/enums.go

// Package enums lists, checks and parses the values of enumerated types.
//
// Go has no enum reflection, so a type becomes an enumeration in one of two ways:
//
//   - it implements Enumerable[T], returning its values in declaration order, or
//   - its values are registered once with Register (usually from a package var).
//
// Example:
//
//	type Level int
//
//	const (
//	    Debug Level = iota
//	    Info
//	    Error
//	)
//
//	var _ = enums.MustRegister(Debug, Info, Error)
//
//	levels, err := enums.AsList[Level]() // [Debug Info Error]
package enums

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/CodeMonkeyCybersecurity/helpers/pkg/collections"
	"github.com/CodeMonkeyCybersecurity/helpers/pkg/helper_err"
)

// Enumerable is implemented by enumerated types that know their own values.
// Values must be callable on the zero value and return declaration order.
type Enumerable[T any] interface {
	Values() []T
}

var (
	mu       sync.RWMutex
	registry = map[reflect.Type]any{}
)

// Register records the ordered values of T. It fails when no values are given,
// when a value appears twice, or when T is already registered.
func Register[T comparable](values ...T) error {
	typ := reflect.TypeFor[T]()

	if len(values) == 0 {
		return helper_err.NewInvalidArgumentError("values", fmt.Sprintf("%s needs at least one value", typ))
	}

	var result *multierror.Error
	seen := make(map[T]int, len(values))
	for i, v := range values {
		if first, dup := seen[v]; dup {
			result = multierror.Append(result, fmt.Errorf("value %v at position %d duplicates position %d", v, i, first))
			continue
		}
		seen[v] = i
	}
	if err := result.ErrorOrNil(); err != nil {
		return helper_err.NewInvalidArgumentError("values", fmt.Sprintf("%s has duplicate values: %v", typ, err))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[typ]; exists {
		return helper_err.NewInvalidArgumentError("T", fmt.Sprintf("%s is already registered", typ))
	}
	registry[typ] = slices.Clone(values)
	return nil
}

// MustRegister is Register for package-level initialisation; it panics on error.
func MustRegister[T comparable](values ...T) struct{} {
	if err := Register(values...); err != nil {
		panic(err)
	}
	return struct{}{}
}

// AsList returns every declared value of T in declaration order.
// The slice is a copy and may be modified by the caller.
func AsList[T comparable]() ([]T, error) {
	var zero T
	if e, ok := any(zero).(Enumerable[T]); ok {
		if values := e.Values(); len(values) > 0 {
			return slices.Clone(values), nil
		}
	}

	typ := reflect.TypeFor[T]()

	mu.RLock()
	stored, ok := registry[typ]
	mu.RUnlock()
	if !ok {
		return nil, helper_err.NewInvalidArgumentError("T", fmt.Sprintf("%s is not an enumerated type", typ),
			"implement enums.Enumerable or call enums.Register for the type")
	}
	return slices.Clone(stored.([]T)), nil
}

// IsDefined reports whether v is one of the declared values of T.
func IsDefined[T comparable](v T) bool {
	values, err := AsList[T]()
	if err != nil {
		return false
	}
	return collections.IsAny(v, values...)
}

// Parse returns the value of T whose String form equals s.
func Parse[T interface {
	comparable
	fmt.Stringer
}](s string) (T, error) {
	var zero T
	values, err := AsList[T]()
	if err != nil {
		return zero, err
	}
	for _, v := range values {
		if v.String() == s {
			return v, nil
		}
	}
	return zero, helper_err.NewInvalidArgumentError("s", fmt.Sprintf("%q is not a value of %s", s, reflect.TypeFor[T]()))
}
