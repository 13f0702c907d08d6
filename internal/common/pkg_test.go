package common

import (
	"github.com/stretchr/testify/assert"
	"reflect"
	"testing"
	"time"
)

type sample struct{}

func TestTypeName(t *testing.T) {
	tests := []struct {
		rtype    reflect.Type
		expected string
	}{
		{nil, "<nil>"},
		{reflect.TypeFor[int](), "int"},
		{reflect.TypeFor[*time.Time](), "*time.Time"},
		{reflect.TypeFor[[]sample](), "[]common.sample"},
		{reflect.TypeFor[[2]*sample](), "[2]*common.sample"},
		{reflect.TypeFor[map[string][]int](), "map[string][]int"},
		{reflect.TypeFor[func()](), "func()"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, TypeName(tt.rtype))
		})
	}
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string(nil))
	assert.False(t, ok)
	assert.True(t, IsEmpty([]int{}))
}
