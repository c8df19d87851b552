package service

import (
	"github.com/allisson/cardengine/internal/card/domain"
)

type issuerClassifier struct {
	table []domain.IssuerRanges
}

// NewIssuerClassifier creates a classifier over the built-in issuer range table.
func NewIssuerClassifier() IssuerClassifier {
	return &issuerClassifier{table: domain.IssuerTable()}
}

// Classify looks up the major industry from the first digit, then grows a prefix of number
// one digit at a time and returns the first issuer (in table order) whose range set contains
// it. Shorter prefixes win over longer ones. An unmatched number has a nil Issuer.
func (c *issuerClassifier) Classify(number string) (domain.Classification, error) {
	if !domain.IsDigits(number) {
		return domain.Classification{}, domain.ErrInvalidCardNumber
	}

	industry, err := domain.MajorIndustry(number[0])
	if err != nil {
		return domain.Classification{}, err
	}

	return domain.Classification{
		Issuer:        c.matchIssuer(number),
		MajorIndustry: industry,
	}, nil
}

func (c *issuerClassifier) matchIssuer(number string) *string {
	for end := 1; end <= len(number); end++ {
		prefix := number[:end]
		for _, issuer := range c.table {
			if issuer.Contains(prefix) {
				name := issuer.Name
				return &name
			}
		}
	}
	return nil
}
