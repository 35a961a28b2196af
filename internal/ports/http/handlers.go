package http

import (
	"context"

	"addressregistry/internal/application/registry"
	"addressregistry/internal/domain/address"
)

type RegistryService interface {
	GetAddress(ctx context.Context, symbol string) (address.Address, error)
	ListAddresses(ctx context.Context, kind address.Kind) ([]address.Address, error)
	LookupAddress(ctx context.Context, value string) ([]address.Address, error)
	CheckIntegrity(ctx context.Context) []registry.DuplicateGroup
}

type Address struct {
	Symbol string `json:"symbol"`
	Value  string `json:"value"`
	Kind   string `json:"kind"`
}

type AddressList struct {
	Data  []*Address `json:"data"`
	Total int        `json:"total"`
}

type Validation struct {
	Value       string `json:"value"`
	Valid       bool   `json:"valid"`
	Checksummed bool   `json:"checksummed"`
}

type DuplicateGroup struct {
	Value   string   `json:"value"`
	Symbols []string `json:"symbols"`
}

type Integrity struct {
	OK         bool              `json:"ok"`
	Duplicates []*DuplicateGroup `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
