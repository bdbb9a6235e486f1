package gmail

import (
	"fmt"
	"time"
)

// BuildInboxQuery builds the provider query for a triage run: inbox only, no
// promotions, received after the given lower bound. Gmail's `after:` operator
// only has day resolution, so callers must re-apply the exact timestamp bound
// after fetching.
func BuildInboxQuery(after time.Time) string {
	return fmt.Sprintf("in:inbox -category:promotions after:%s", after.Format("2006/01/02"))
}
