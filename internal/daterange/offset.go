package daterange

import (
	"strconv"
	"strings"
)

// parseOffset parses a signed day/week/month/year offset such as "+10" or
// "-3". The sign is mandatory and the value must fit in 32 bits; anything
// else reports false, meaning "no offset present".
func parseOffset(s string) (int, bool) {
	if !strings.HasPrefix(s, "+") && !strings.HasPrefix(s, "-") {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
