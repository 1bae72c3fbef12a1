package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReference builds a receipt-unique payment reference, e.g.
// "ECOCASH-1735689600123-1a2b3c4d". Uniqueness only needs to be good
// enough to de-duplicate receipts.
func NewReference(method Method) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s", strings.ToUpper(string(method)), time.Now().UnixMilli(), suffix)
}
