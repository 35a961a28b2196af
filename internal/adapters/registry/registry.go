package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"addressregistry/internal/domain/address"
)

var (
	ErrInvalidEntry    = errors.New("invalid registry entry")
	ErrDuplicateSymbol = errors.New("duplicate registry symbol")
)

var _ address.Repository = (*Registry)(nil)

// Registry is an immutable symbol -> address table. It is built once and never
// written to afterwards, so reads need no locking.
type Registry struct {
	entries  []address.Address
	bySymbol map[string]address.Address   // symbol (uppercase) -> Address
	byValue  map[string][]address.Address // value (lowercase) -> Addresses, more than one on collision
}

// NewMainnet builds the registry from the built-in Ethereum mainnet table
func NewMainnet() (*Registry, error) {
	return New(mainnet)
}

// New builds a registry from entries. Every value must satisfy address.Validate
// and symbols must be unique ignoring case.
func New(entries []address.Address) (*Registry, error) {
	r := &Registry{
		entries:  make([]address.Address, 0, len(entries)),
		bySymbol: make(map[string]address.Address, len(entries)),
		byValue:  make(map[string][]address.Address, len(entries)),
	}

	for _, e := range entries {
		symbol := normalizeSymbol(e.Symbol)
		if symbol == "" {
			return nil, fmt.Errorf("%w: empty symbol for value %s", ErrInvalidEntry, e.Value)
		}
		if !address.Validate(e.Value) {
			return nil, fmt.Errorf("%w: symbol=%s value=%q", ErrInvalidEntry, e.Symbol, e.Value)
		}
		if _, ok := r.bySymbol[symbol]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, e.Symbol)
		}

		e.Symbol = symbol
		r.entries = append(r.entries, e)
		r.bySymbol[symbol] = e

		value := address.Normalize(e.Value)
		r.byValue[value] = append(r.byValue[value], e)
	}

	return r, nil
}

// Get returns the address registered under symbol. Lookup is case-insensitive.
func (r *Registry) Get(_ context.Context, symbol string) (address.Address, error) {
	a, ok := r.bySymbol[normalizeSymbol(symbol)]
	if !ok {
		return address.Address{}, fmt.Errorf("%w: symbol=%s", address.ErrAddressNotFound, symbol)
	}
	return a, nil
}

// List returns all entries in declaration order
func (r *Registry) List(_ context.Context) ([]address.Address, error) {
	result := make([]address.Address, len(r.entries))
	copy(result, r.entries)
	return result, nil
}

// Validate reports whether value is a well-formed address
func (r *Registry) Validate(value string) bool {
	return address.Validate(value)
}

// Lookup returns every entry whose value matches, ignoring case
func (r *Registry) Lookup(_ context.Context, value string) ([]address.Address, error) {
	if !address.Validate(value) {
		return nil, fmt.Errorf("%w: value=%q", ErrInvalidEntry, value)
	}

	matches, ok := r.byValue[address.Normalize(value)]
	if !ok {
		return nil, fmt.Errorf("%w: value=%s", address.ErrAddressNotFound, value)
	}

	result := make([]address.Address, len(matches))
	copy(result, matches)
	return result, nil
}

// Duplicates groups symbols that share one address value, keyed by the
// lowercase value. Distinct symbols pointing at the same contract are
// almost always a transcription error in the table.
func (r *Registry) Duplicates() map[string][]string {
	dups := make(map[string][]string)
	for value, entries := range r.byValue {
		if len(entries) < 2 {
			continue
		}
		symbols := make([]string, 0, len(entries))
		for _, e := range entries {
			symbols = append(symbols, e.Symbol)
		}
		sort.Strings(symbols)
		dups[value] = symbols
	}
	return dups
}

// Count returns the number of entries
func (r *Registry) Count() int {
	return len(r.entries)
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
