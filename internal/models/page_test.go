package models

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	p := NewPage([]int{1, 2, 3}, 0, 3, 7)
	assert.Equal(t, 3, len(p.Content))
	assert.Equal(t, int64(7), p.TotalElements)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)

	last := NewPage([]int{7}, 2, 3, 7)
	assert.False(t, last.HasNext)
}

func TestNewPageEmpty(t *testing.T) {
	p := NewPage[int](nil, 0, 20, 0)
	assert.NotNil(t, p.Content)
	assert.Empty(t, p.Content)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
}

func TestMapPage(t *testing.T) {
	p := NewPage([]int{1, 2}, 1, 2, 5)
	mapped := MapPage(p, strconv.Itoa)
	assert.Equal(t, []string{"1", "2"}, mapped.Content)
	assert.Equal(t, p.Page, mapped.Page)
	assert.Equal(t, p.TotalElements, mapped.TotalElements)
	assert.Equal(t, p.HasNext, mapped.HasNext)
}
