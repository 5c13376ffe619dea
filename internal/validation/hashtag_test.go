package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHashtags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"none", "no tags here", nil},
		{"single", "hello #world", []string{"world"}},
		{"lowercased", "hello #World", []string{"world"}},
		{"deduplicated", "#go #Go #GO", []string{"go"}},
		{"order of first appearance", "#beta then #alpha then #beta", []string{"beta", "alpha"}},
		{"underscores and digits", "#go_2 works", []string{"go_2"}},
		{"mid word boundary", "count#down", []string{"down"}},
		{"bare hash ignored", "just a # sign", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractHashtags(tt.content))
		})
	}
}
