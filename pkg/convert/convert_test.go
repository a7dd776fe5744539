// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vowdirectory/pkg/convert"
)

func TestToIntD(t *testing.T) {
	assert.Equal(t, 7, convert.ToIntD(" 7 ", 1))
	assert.Equal(t, 1, convert.ToIntD("", 1))
	assert.Equal(t, 1, convert.ToIntD("seven", 1))
	assert.Equal(t, -2, convert.ToIntD("-2", 1))
}

func TestToInt64(t *testing.T) {
	value, ok := convert.ToInt64("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), value)

	for _, raw := range []string{"", "  ", "4.2", "north"} {
		_, ok := convert.ToInt64(raw)
		assert.False(t, ok, raw)
	}
}
