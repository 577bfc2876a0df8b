// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: ""},
		{name: "short", content: "hello", want: "hello"},
		{name: "exactly the limit", content: strings.Repeat("a", 50), want: strings.Repeat("a", 50)},
		{name: "one over the limit", content: strings.Repeat("a", 51), want: strings.Repeat("a", 47) + "..."},
		{name: "line breaks flattened", content: "a\nb\r\nc", want: "a b c"},
		{name: "multibyte counted as characters", content: strings.Repeat("é", 50), want: strings.Repeat("é", 50)},
		{name: "multibyte truncated", content: strings.Repeat("ж", 60), want: strings.Repeat("ж", 47) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preview(tt.content)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{line: "", want: []string{}},
		{line: "one", want: []string{"one"}},
		{line: " a , b,c ", want: []string{"a", "b", "c"}},
		{line: ",, ,", want: []string{}},
		{line: "dup, dup", want: []string{"dup", "dup"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := parseTags(tt.line)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
