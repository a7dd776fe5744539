// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for query-string values.

Listing parameters never fail a request: a malformed page number is treated
as absent and a malformed region id is ignored. These helpers encode that
policy in one place.

Do not use this package if distinguishing between malformed data and zero values
is important in your domain logic; use explicit standard libraries instead.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToIntD converts a string to an int, returning def if the trimmed string is
// empty or not an integer.
func ToIntD(str string, def int) int {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}
	return def
}

// ToInt64 parses a base-10 int64. ok is false for empty or malformed input.
func ToInt64(str string) (value int64, ok bool) {
	str = strings.TrimSpace(str)
	if str == "" {
		return 0, false
	}

	value, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
