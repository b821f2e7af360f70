package app

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// Record id prefixes, one per collection.
const (
	observationIDPrefix = "CD"
	eventIDPrefix       = "EVT"
	feedbackIDPrefix    = "FB"
	reportIDPrefix      = "LP"
)

// newRecordID returns prefix + 12 uppercase hex characters, e.g. CD1A2B3C4D5E.
// Fixed width keeps lexicographic comparison usable as an insertion tie-break.
func newRecordID(prefix string) string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return prefix + strings.ToUpper(hex.EncodeToString(b))
}

// newZoneID returns a random UUID. Zones are UUID-keyed so a malformed zone
// id can be told apart from a missing one.
func newZoneID() string {
	return uuid.NewString()
}
