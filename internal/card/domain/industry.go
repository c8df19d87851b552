package domain

// Major industry labels keyed by the leading digit of a card number.
const (
	IndustryAirline           = "Airline industry"
	IndustryTravel            = "Travel/Entertainment"
	IndustryBanking           = "Banking/Financial"
	IndustryMerchandising     = "Merchandising & Banking/Financial"
	IndustryPetroleum         = "Petroleum industries"
	IndustryHealthTelecomm    = "Health, telecomm and future"
	IndustryStandardsAssigned = "For assignment by standards bodies"
)

// majorIndustries maps the major industry identifier (first digit) to its label.
// Digit '0' is intentionally absent.
var majorIndustries = map[byte]string{
	'1': IndustryAirline,
	'2': IndustryAirline,
	'3': IndustryTravel,
	'4': IndustryBanking,
	'5': IndustryBanking,
	'6': IndustryMerchandising,
	'7': IndustryPetroleum,
	'8': IndustryHealthTelecomm,
	'9': IndustryStandardsAssigned,
}

// MajorIndustry returns the industry label for a major industry identifier digit.
// Returns ErrUnknownMajorIndustry for '0' or any non-digit.
func MajorIndustry(identifier byte) (string, error) {
	label, ok := majorIndustries[identifier]
	if !ok {
		return "", ErrUnknownMajorIndustry
	}
	return label, nil
}
