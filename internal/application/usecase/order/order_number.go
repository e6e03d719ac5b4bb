// Package order contains order-builder use cases.
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber produces a human-readable order number of the form
// ORD-YYYYMMDD-XXXXXXXX, where the suffix is 8 uppercase hex characters of a
// random UUID. Collisions are astronomically rare and handled by the caller.
func GenerateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}
