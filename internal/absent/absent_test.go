package absent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	var (
		nilPtr   *int
		nilMap   map[string]int
		nilSlice []byte
		nilFunc  func()
		nilChan  chan int
		nilErr   error
		n        = 0
	)

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{name: "nil interface", got: Is[any](nil), want: true},
		{name: "nil error", got: Is(nilErr), want: true},
		{name: "nil pointer", got: Is(nilPtr), want: true},
		{name: "nil pointer in interface", got: Is[any](nilPtr), want: true},
		{name: "nil map", got: Is(nilMap), want: true},
		{name: "nil slice", got: Is(nilSlice), want: true},
		{name: "nil func", got: Is(nilFunc), want: true},
		{name: "nil chan", got: Is(nilChan), want: true},
		{name: "zero int", got: Is(0), want: false},
		{name: "empty string", got: Is(""), want: false},
		{name: "false", got: Is(false), want: false},
		{name: "pointer", got: Is(&n), want: false},
		{name: "empty slice", got: Is([]byte{}), want: false},
		{name: "struct", got: Is(struct{}{}), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
