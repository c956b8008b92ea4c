package entity

// SSRCode values accepted by the SR command. This is a closed
// vocabulary: anything outside it is rejected, not passed through.
var validSSRCodes = map[string]bool{
	// meals
	"AVML": true, "BBML": true, "BLML": true, "CHML": true,
	"DBML": true, "FPML": true, "GFML": true, "HNML": true,
	"KSML": true, "LCML": true, "LFML": true, "LSML": true,
	"MOML": true, "NLML": true, "RVML": true, "SFML": true,
	"SPML": true, "VGML": true, "VJML": true, "VLML": true,
	"VOML": true,
	// wheelchair and mobility
	"WCHR": true, "WCHS": true, "WCHC": true, "WCBD": true,
	"WCBW": true, "WCMP": true, "WCOB": true,
	// assistance
	"BLND": true, "DEAF": true, "DPNA": true, "MAAS": true,
	"MEDA": true, "OXYG": true, "STCR": true, "UMNR": true,
	// infants, children, extra seats
	"BSCT": true, "CHLD": true, "EXST": true, "INFT": true,
	// animals and baggage
	"AVIH": true, "PETC": true, "CBBG": true, "XBAG": true,
	// sports equipment
	"BIKE": true, "BULK": true, "GOLF": true, "SKIS": true,
	"SPEQ": true, "SURF": true, "WEAP": true,
	// documents and ticketing
	"DOCA": true, "DOCO": true, "DOCS": true, "FOID": true,
	"FQTV": true, "TKNE": true, "TKTL": true,
	// seating and misc
	"NSST": true, "RQST": true, "SEAT": true, "SMST": true,
	"GRPF": true, "GRPS": true, "LANG": true, "OTHS": true,
}

// IsValidSSRCode reports whether code belongs to the SSR vocabulary
func IsValidSSRCode(code string) bool {
	return validSSRCodes[code]
}
