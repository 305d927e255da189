package submission

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewTransactionID returns TXN-<unix millis>-<8 random hex chars>.
// The time prefix keeps ids readable and sortable, the suffix keeps two ids of the same millisecond apart.
func NewTransactionID(now time.Time) string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(fmt.Sprintf("submission: reading random bytes: %v", err))
	}
	return fmt.Sprintf("TXN-%d-%s", now.UnixMilli(), hex.EncodeToString(b[:]))
}
