package pagesim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseKind(t *testing.T) {
	cases := map[string]Kind{
		"fifo":    FIFO,
		"FIFO":    FIFO,
		" lru ":   LRU,
		"Optimal": Optimal,
		"opt":     Optimal,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseKind("clock")
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
}

func Test_KindString(t *testing.T) {
	assert.Equal(t, "FIFO", FIFO.String())
	assert.Equal(t, "LRU", LRU.String())
	assert.Equal(t, "Optimal", Optimal.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func Test_NewStartsEmpty(t *testing.T) {
	for _, k := range Kinds() {
		p, err := New(k, 4, TraceOf(1, 2))
		require.NoError(t, err)
		assert.Equal(t, 0, p.Len())
		assert.Empty(t, p.Resident())
	}
	_, err := New(LRU, 0, TraceOf())
	assert.True(t, errors.Is(err, ErrInvalidCapacity))
}

func Test_TraceIsImmutable(t *testing.T) {
	src := []Page{1, 2, 3}
	trace := NewTrace(src...)
	src[0] = 99
	assert.Equal(t, Page(1), trace.At(0))

	pages := trace.Pages()
	pages[1] = 99
	assert.Equal(t, Page(2), trace.At(1))
	assert.Equal(t, 3, trace.Distinct())
}
