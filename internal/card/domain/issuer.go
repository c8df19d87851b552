package domain

import (
	"strconv"

	"github.com/samber/lo"
)

// Card network names as reported by classification.
const (
	IssuerDinersClub      = "Diners Club"
	IssuerAmericanExpress = "American Express"
	IssuerJCB             = "JCB"
	IssuerAAA             = "AAA"
	IssuerDiscover        = "Discover"
	IssuerMastercard      = "Mastercard"
	IssuerVisa            = "Visa"
)

// IssuerRanges holds the set of numeric prefixes assigned to one issuer.
type IssuerRanges struct {
	Name     string
	prefixes map[string]struct{}
}

// Contains reports whether prefix is exactly one of the issuer's assigned prefixes.
func (r IssuerRanges) Contains(prefix string) bool {
	_, ok := r.prefixes[prefix]
	return ok
}

// Len returns the number of prefixes assigned to the issuer.
func (r IssuerRanges) Len() int {
	return len(r.prefixes)
}

// issuerTable is ordered: classification checks issuers in this order and the first
// match wins, so overlapping ranges resolve to the earlier entry.
var issuerTable = []IssuerRanges{
	newIssuerRanges(IssuerDinersClub, prefixes("30")),
	newIssuerRanges(IssuerAmericanExpress, prefixes("34", "37")),
	newIssuerRanges(IssuerJCB, prefixes("35")),
	newIssuerRanges(IssuerAAA, prefixes("620")),
	newIssuerRanges(IssuerDiscover,
		prefixes("6011", "64", "65"),
		prefixSpan(622126, 622925),
		prefixSpan(624000, 626999),
		prefixSpan(628200, 628899),
	),
	newIssuerRanges(IssuerMastercard,
		prefixSpan(2221, 2720),
		prefixes("51", "52", "53", "55"),
	),
	newIssuerRanges(IssuerVisa, prefixes("4")),
}

// IssuerTable returns the issuer range table in classification order.
// Callers must treat the result as read-only.
func IssuerTable() []IssuerRanges {
	return issuerTable
}

// NewIssuerRanges builds the range set for an issuer from explicit prefixes.
func NewIssuerRanges(name string, prefixes ...string) IssuerRanges {
	return newIssuerRanges(name, prefixes)
}

func newIssuerRanges(name string, groups ...[]string) IssuerRanges {
	return IssuerRanges{
		Name: name,
		prefixes: lo.SliceToMap(lo.Flatten(groups), func(prefix string) (string, struct{}) {
			return prefix, struct{}{}
		}),
	}
}

func prefixes(values ...string) []string {
	return values
}

// prefixSpan enumerates the numeric prefixes in the half-open interval [from, to).
func prefixSpan(from, to int) []string {
	return lo.Map(lo.RangeFrom(from, to-from), func(n int, _ int) string {
		return strconv.Itoa(n)
	})
}
