// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planner

import (
	"github.com/sirupsen/logrus"

	"github.com/sighupio/nukescript/internal/command"
)

// Node is a resource path and the enabled groups found below it.
type Node struct {
	Path     command.Path
	Children []Node
}

// Size counts the node and all its descendants.
func (n Node) Size() int {
	size := 1

	for _, c := range n.Children {
		size += c.Size()
	}

	return size
}

// Walk visits n and its descendants depth first, parents before children.
func (n Node) Walk(fn func(n Node, depth int)) {
	n.walk(fn, 0)
}

func (n Node) walk(fn func(n Node, depth int), depth int) {
	fn(n, depth)

	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Tree discovers the resource tree rooted at component/resourceType without
// listing any instance.
func (p *Planner) Tree(component, resourceType string) Node {
	p.visited = make(map[string]struct{})

	root := command.NewPath(component, resourceType)

	logrus.Infof("Discovering %s", root)

	return p.tree(root, 0)
}

func (p *Planner) tree(path command.Path, depth int) Node {
	n := Node{Path: path}

	if !p.enter(path, depth) {
		return n
	}

	children := p.prober.ListEnabledChildren(path, p.req)

	for _, c := range children.Value {
		if depth+1 > p.maxDepth {
			logrus.Warnf("Not expanding %s: deeper than %d levels", c, p.maxDepth)

			continue
		}

		n.Children = append(n.Children, p.tree(c, depth+1))
	}

	return n
}
