package utils

import (
	"fmt"
	"math/rand/v2"
)

// Ambiguous characters (I, O, 0, 1) are excluded so locators survive
// being read over the phone
const (
	locatorLetters   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	locatorAlphabet  = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	RecordLocatorLen = 6
	tempSuffixLen    = 8
	tempSuffixMax    = 100000000
)

// NewRecordLocator generates a permanent 6-character record locator,
// first character always a letter
func NewRecordLocator() string {
	b := make([]byte, RecordLocatorLen)
	b[0] = locatorLetters[rand.IntN(len(locatorLetters))]
	for i := 1; i < RecordLocatorLen; i++ {
		b[i] = locatorAlphabet[rand.IntN(len(locatorAlphabet))]
	}
	return string(b)
}

// NewTempLocator generates the TEMP-prefixed locator a PNR carries
// before end of transaction. Temp locators of abandoned sessions stay
// in the store under the unique locator index, so the numeric suffix
// is wide enough that collisions stay negligible.
func NewTempLocator() string {
	return fmt.Sprintf("TEMP%0*d", tempSuffixLen, rand.IntN(tempSuffixMax))
}

// IsTempLocator reports whether a locator is still temporary
func IsTempLocator(locator string) bool {
	return len(locator) > 4 && locator[:4] == "TEMP"
}
