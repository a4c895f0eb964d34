// Package codegen builds human-readable instance codes of the form
// {SKU}-{BATCH_TYPE}-{SEQ} and resolves collisions by bumping the numeric suffix.
package codegen

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
)

const (
	// MinSeqWidth is the minimum zero-padded width of a sequence suffix.
	MinSeqWidth = 3

	// MaxResolveSteps bounds the suffix search of Suggest and Resolve.
	MaxResolveSteps = 10000
)

var suffixPattern = regexp.MustCompile(`^(.+-)(\d+)$`)

// CodeLookup is the read side of the instance store the generator needs.
type CodeLookup interface {
	ListCodes(ctx context.Context, productID, branchID, batchTypeID string) ([]string, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}

// InUseFunc reports whether a code is taken.
type InUseFunc func(code string) (bool, error)

// Format renders {SKU}-{BATCH_TYPE}-{SEQ}.
func Format(sku, batchTypeName string, seq int) string {
	return fmt.Sprintf("%s%0*d", Prefix(sku, batchTypeName), MinSeqWidth, seq)
}

// Prefix is the code up to and including the dash before the sequence.
func Prefix(sku, batchTypeName string) string {
	name := strings.ToUpper(strings.Join(strings.Fields(batchTypeName), "_"))
	return strings.TrimSpace(sku) + "-" + name + "-"
}

// Suggest proposes the next unused code for a product, branch and batch type.
// It reserves nothing; the caller must still resolve and create.
func Suggest(ctx context.Context, lookup CodeLookup, productID, branchID, batchTypeID, sku, batchTypeName string) (string, error) {
	existing, err := lookup.ListCodes(ctx, productID, branchID, batchTypeID)
	if err != nil {
		return "", err
	}

	prefix := Prefix(sku, batchTypeName)
	next, err := NextSequence(prefix, existing)
	if err != nil {
		return "", err
	}

	for step := 0; step < MaxResolveSteps; step++ {
		if next > math.MaxInt-step {
			return "", exhausted(prefix)
		}
		code := fmt.Sprintf("%s%0*d", prefix, MinSeqWidth, next+step)
		taken, err := lookup.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", apperr.Validation("instance_code", "no free code after "+prefix)
}

// NextSequence returns one past the highest numeric suffix among codes that
// start with prefix, or 1 when there is none. Suffixes too large for an int
// are ignored; a suffix at math.MaxInt leaves no next sequence.
func NextSequence(prefix string, codes []string) (int, error) {
	highest := 0
	for _, code := range codes {
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		n, err := strconv.Atoi(code[len(prefix):])
		if err != nil || n < 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	if highest == math.MaxInt {
		return 0, exhausted(prefix)
	}
	return highest + 1, nil
}

// Resolve returns candidate if it is free, otherwise increments its numeric
// suffix, keeping the original padding width, until a free code is found.
// A taken candidate without a numeric suffix is a validation error.
func Resolve(candidate string, inUse InUseFunc) (string, error) {
	taken, err := inUse(candidate)
	if err != nil {
		return "", err
	}
	if !taken {
		return candidate, nil
	}

	m := suffixPattern.FindStringSubmatch(candidate)
	if m == nil {
		return "", apperr.Validation("instance_code",
			fmt.Sprintf("code %q is already in use and has no numeric suffix; supply another code", candidate))
	}
	prefix, digits := m[1], m[2]

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return "", apperr.Validation("instance_code", fmt.Sprintf("code suffix %q is out of range", digits))
	}
	width := len(digits)
	if width < MinSeqWidth {
		width = MinSeqWidth
	}

	for step := 0; step < MaxResolveSteps; step++ {
		if n == math.MaxInt64 {
			return "", exhausted(prefix)
		}
		n++
		code := fmt.Sprintf("%s%0*d", prefix, width, n)
		taken, err := inUse(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", apperr.Validation("instance_code", "no free code after "+candidate)
}

func exhausted(prefix string) error {
	return apperr.Validation("instance_code", fmt.Sprintf("sequence after %q is exhausted; supply another code", prefix))
}

// ClaimSet holds the codes already chosen within one submission. It is not
// safe for concurrent use; a submission is processed sequentially.
type ClaimSet map[string]struct{}

func NewClaimSet() ClaimSet {
	return ClaimSet{}
}

func (c ClaimSet) Claim(code string) {
	c[code] = struct{}{}
}

func (c ClaimSet) Has(code string) bool {
	_, ok := c[code]
	return ok
}

// InUse treats a code as taken when it is claimed or already stored.
func (c ClaimSet) InUse(ctx context.Context, lookup CodeLookup) InUseFunc {
	return func(code string) (bool, error) {
		if c.Has(code) {
			return true, nil
		}
		return lookup.CodeExists(ctx, code)
	}
}
