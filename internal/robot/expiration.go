package robot

import (
	"fmt"
	"regexp"
	"strconv"
)

var regexDigits = regexp.MustCompile(`\d+`)

// parseRemainingDays extracts the first number found in the
// expiration tooltip label, such as "Expires in 5 days".
func parseRemainingDays(label string) (days int, err error) {
	match := regexDigits.FindString(label)
	if match == "" {
		return 0, fmt.Errorf("%w: %q", ErrExpirationLabelMalformed, label)
	}

	days, err = strconv.Atoi(match)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrExpirationLabelMalformed, label, err)
	}

	return days, nil
}
