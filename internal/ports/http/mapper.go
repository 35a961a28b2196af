package http

import (
	"addressregistry/internal/application/registry"
	"addressregistry/internal/domain/address"
)

func ToHTTPAddress(a address.Address) *Address {
	return &Address{
		Symbol: a.Symbol,
		Value:  a.Value,
		Kind:   string(a.Kind),
	}
}

func ToHTTPAddressList(entries []address.Address) *AddressList {
	data := make([]*Address, 0, len(entries))
	for _, e := range entries {
		data = append(data, ToHTTPAddress(e))
	}
	return &AddressList{Data: data, Total: len(data)}
}

func ToHTTPValidation(value string) *Validation {
	return &Validation{
		Value:       value,
		Valid:       address.Validate(value),
		Checksummed: address.IsChecksummed(value),
	}
}

func ToHTTPIntegrity(groups []registry.DuplicateGroup) *Integrity {
	dups := make([]*DuplicateGroup, 0, len(groups))
	for _, g := range groups {
		dups = append(dups, &DuplicateGroup{Value: g.Value, Symbols: g.Symbols})
	}
	return &Integrity{OK: len(dups) == 0, Duplicates: dups}
}
