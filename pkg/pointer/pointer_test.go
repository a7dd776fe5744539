package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vowdirectory/pkg/pointer"
)

func TestTo(t *testing.T) {
	value := 4.8
	p := pointer.To(value)
	value = 1

	assert.Equal(t, 4.8, *p)
}

func TestVal(t *testing.T) {
	assert.Equal(t, "", pointer.Val[string](nil))
	assert.Equal(t, "Nice", pointer.Val(pointer.To("Nice")))
}
