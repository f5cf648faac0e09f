package combiner

import (
	"fmt"
	"time"
)

// DefaultOutputName returns the default file name for a combined output at
// time t: combined_<YYYYMMDD>.txt.
func DefaultOutputName(t time.Time) string {
	return fmt.Sprintf("combined_%s.txt", t.Format("20060102"))
}
