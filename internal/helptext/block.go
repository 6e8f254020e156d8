// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package helptext extracts named sections from the man-page style help that
// gcloud prints for every command group.
package helptext

// Item is a single entry of a help block. Description is nil until a
// description line is found for it.
type Item struct {
	Name        string
	Description *string
}

// Block is an ordered mapping of item names to their descriptions.
type Block struct {
	items []Item
	index map[string]int
}

func newBlock() Block {
	return Block{
		items: make([]Item, 0),
		index: make(map[string]int),
	}
}

// add registers name, resetting its description. Names seen twice keep their
// first position.
func (b *Block) add(name string) {
	if i, ok := b.index[name]; ok {
		b.items[i].Description = nil

		return
	}

	b.index[name] = len(b.items)
	b.items = append(b.items, Item{Name: name})
}

func (b *Block) describe(name, desc string) {
	if i, ok := b.index[name]; ok {
		d := desc
		b.items[i].Description = &d
	}
}

func (b Block) Len() int {
	return len(b.items)
}

func (b Block) Items() []Item {
	items := make([]Item, len(b.items))
	copy(items, b.items)

	return items
}

func (b Block) Names() []string {
	names := make([]string, len(b.items))

	for i, item := range b.items {
		names[i] = item.Name
	}

	return names
}

func (b Block) Has(name string) bool {
	_, ok := b.index[name]

	return ok
}

func (b Block) HasAll(names ...string) bool {
	for _, n := range names {
		if !b.Has(n) {
			return false
		}
	}

	return true
}

// Description returns the description of name and whether one was found.
func (b Block) Description(name string) (string, bool) {
	i, ok := b.index[name]
	if !ok || b.items[i].Description == nil {
		return "", false
	}

	return *b.items[i].Description, true
}
