package shipment

import (
	"strings"

	"github.com/google/uuid"
)

const trackingPrefix = "BX"

// NewTrackingNumber returns a system-assigned tracking number such as BX9F1C2A7D04E6.
func NewTrackingNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return trackingPrefix + strings.ToUpper(raw[:12])
}
