package nausea

import (
	"fmt"
	"strings"
)

// FormatLine renders r the way `nausea list` prints it.
func FormatLine(r Result) string {
	return fmt.Sprintf("document name: %s -- rate: %.2f%% -- fraud words: %s",
		r.DocumentName, r.Rate, strings.Join(r.FraudWords, ","))
}
