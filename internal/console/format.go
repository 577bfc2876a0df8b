// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"strings"
	"unicode/utf8"
)

const (
	previewLimit  = 50
	previewKeep   = previewLimit - len(ellipsis)
	ellipsis      = "..."
	ruleWidth     = 60
	endSentinel   = "END"
	keepSentinel  = "KEEP"
	timeLayout    = "2006-01-02 15:04:05 -07:00"
	tagsSeparator = ","
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ")

// preview puts content on one line and shortens anything longer than
// previewLimit characters to previewKeep characters plus an ellipsis.
func preview(content string) string {
	flat := lineBreaks.Replace(content)
	if utf8.RuneCountInString(flat) <= previewLimit {
		return flat
	}

	runes := []rune(flat)
	return string(runes[:previewKeep]) + ellipsis
}

// parseTags splits a comma-separated line, trimming every tag and dropping
// the empty ones.
func parseTags(line string) []string {
	tags := make([]string, 0)
	for _, tag := range strings.Split(line, tagsSeparator) {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
