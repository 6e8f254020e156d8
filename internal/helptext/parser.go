// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package helptext

import (
	"bytes"
	"strings"
	"unicode"

	bytesx "github.com/sighupio/nukescript/internal/x/bytes"
)

const (
	// Column layout used by gcloud help pages.
	GcloudItemIndent = 5
	GcloudDescIndent = 7

	Groups           = "GROUPS"
	Commands         = "COMMANDS"
	RequiredFlags    = "REQUIRED FLAGS"
	ListCommandFlags = "LIST COMMAND FLAGS"

	tabWidth = 8
)

type state int

const (
	outsideBlock state = iota
	awaitingItem
	awaitingDescription
)

var normalize = bytesx.Chain(bytesx.StripColor, expandTabs) //nolint:gochecknoglobals // stateless transform.

// Parser reads one named block out of help texts.
type Parser struct {
	ItemIndent int
	DescIndent int
}

// NewGcloudParser returns a parser configured for gcloud's help layout.
func NewGcloudParser() Parser {
	return Parser{
		ItemIndent: GcloudItemIndent,
		DescIndent: GcloudDescIndent,
	}
}

// Parse is a shortcut for Parser{itemIndent, descIndent}.Parse.
func Parse(helpText, blockName string, itemIndent, descIndent int) Block {
	return Parser{ItemIndent: itemIndent, DescIndent: descIndent}.Parse(helpText, blockName)
}

// Parse returns the items of blockName. The scan stops at the first fully
// upper-case line after the block header. A missing block yields an empty
// Block.
func (p Parser) Parse(helpText, blockName string) Block {
	block := newBlock()

	text, err := normalize([]byte(helpText))
	if err != nil {
		return block
	}

	st := outsideBlock
	pending := ""

scan:
	for _, line := range strings.Split(string(text), "\n") {
		line = strings.TrimRight(line, " \r")

		switch st {
		case outsideBlock:
			if strings.HasPrefix(line, blockName) {
				st = awaitingItem
			}

			continue

		case awaitingItem, awaitingDescription:
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if isHeader(line) {
			break scan
		}

		indent := indentation(line)

		switch {
		case indent == p.ItemIndent:
			pending = strings.TrimSpace(line)
			block.add(pending)
			st = awaitingDescription

		case st == awaitingDescription && indent >= p.DescIndent:
			block.describe(pending, strings.TrimSpace(line))
			pending = ""
			st = awaitingItem
		}
	}

	return block
}

// isHeader reports whether line is a section header: it has letters and none
// of them is lower-case.
func isHeader(line string) bool {
	hasLetter := false

	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}

		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}

	return hasLetter
}

func indentation(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

func expandTabs(p []byte) ([]byte, error) {
	return bytes.ReplaceAll(p, []byte("\t"), bytes.Repeat([]byte(" "), tabWidth)), nil
}
