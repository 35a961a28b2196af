package address

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ErrAddressNotFound = errors.New("address not found")

type Kind string

const (
	KindToken   Kind = "token"
	KindRouter  Kind = "router"
	KindFactory Kind = "factory"
	KindQuoter  Kind = "quoter"
)

// Address is a named on-chain contract address
type Address struct {
	Symbol string
	Value  string
	Kind   Kind
}

type Repository interface {
	Get(ctx context.Context, symbol string) (Address, error)
	List(ctx context.Context) ([]Address, error)
}

var hexAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Validate reports whether value is "0x" followed by exactly 40 hex digits.
// Checksum casing is not enforced, see IsChecksummed.
func Validate(value string) bool {
	return hexAddressPattern.MatchString(value)
}

// IsChecksummed reports whether value is a valid address written in its EIP-55 form
func IsChecksummed(value string) bool {
	if !Validate(value) {
		return false
	}
	return common.HexToAddress(value).Hex() == value
}

// Normalize returns the lowercase form used for value comparisons.
// The caller must Validate first.
func Normalize(value string) string {
	return strings.ToLower(common.HexToAddress(value).Hex())
}
