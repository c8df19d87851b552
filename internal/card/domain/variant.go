package domain

// CardVariant is the generation configuration for a card network.
type CardVariant struct {
	TargetLength int
}

// Known card variants.
var (
	VariantDefault         = CardVariant{TargetLength: 16}
	VariantDinersClub      = CardVariant{TargetLength: 14}
	VariantAmericanExpress = CardVariant{TargetLength: 15}
)

// VariantForIssuer returns the card variant used when generating numbers for issuer.
// A nil or unlisted issuer gets VariantDefault.
func VariantForIssuer(issuer *string) CardVariant {
	if issuer == nil {
		return VariantDefault
	}
	switch *issuer {
	case IssuerDinersClub:
		return VariantDinersClub
	case IssuerAmericanExpress:
		return VariantAmericanExpress
	default:
		return VariantDefault
	}
}
