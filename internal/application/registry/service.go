package registry

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"addressregistry/internal/adapters/logger"
	"addressregistry/internal/domain/address"
)

// Source is the read side of the address registry
type Source interface {
	Get(ctx context.Context, symbol string) (address.Address, error)
	List(ctx context.Context) ([]address.Address, error)
	Lookup(ctx context.Context, value string) ([]address.Address, error)
	Duplicates() map[string][]string
}

// DuplicateGroup lists symbols that resolve to the same address value
type DuplicateGroup struct {
	Value   string
	Symbols []string
}

type Service struct {
	source Source
	logger *logger.Logger
}

func NewService(source Source, logger *logger.Logger) *Service {
	return &Service{source: source, logger: logger}
}

func (s *Service) GetAddress(ctx context.Context, symbol string) (address.Address, error) {
	return s.source.Get(ctx, symbol)
}

// ListAddresses returns all entries, or only those of kind when it is non-empty
func (s *Service) ListAddresses(ctx context.Context, kind address.Kind) ([]address.Address, error) {
	entries, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	if kind == "" {
		return entries, nil
	}

	filtered := make([]address.Address, 0, len(entries))
	for _, e := range entries {
		if e.Kind == kind {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *Service) LookupAddress(ctx context.Context, value string) ([]address.Address, error) {
	return s.source.Lookup(ctx, value)
}

// CheckIntegrity reports symbols sharing a value, sorted by value, and logs
// a warning for each group. The table is left untouched.
func (s *Service) CheckIntegrity(_ context.Context) []DuplicateGroup {
	dups := s.source.Duplicates()

	groups := make([]DuplicateGroup, 0, len(dups))
	for value, symbols := range dups {
		groups = append(groups, DuplicateGroup{Value: value, Symbols: symbols})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Value < groups[j].Value })

	for _, g := range groups {
		s.logger.Warn("Distinct symbols share one address",
			zap.String("value", g.Value),
			zap.Strings("symbols", g.Symbols),
		)
	}

	return groups
}
