// Package xmltree parses an XML document into a navigable element tree
// and provides namespace-tolerant lookups over it.
//
// OOXML parts in the wild are produced by tools that omit, alias, or
// default the standard namespaces. Every query therefore runs a two-tier
// strategy: a namespace-qualified lookup first, then a fallback that
// matches only the local element name. Qualified results take priority;
// the fallback is never consulted when the qualified lookup matched, so
// a query cannot double-count elements.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Node is one element of a parsed XML document.
type Node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Node

	// Text holds the character data directly inside this element,
	// excluding descendant elements.
	Text string
}

// Parse builds an element tree from a raw XML part. The decoder accepts
// documents in legacy encodings via a charset-aware reader.
func Parse(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{
				Name:  t.Name,
				Attrs: append([]xml.Attr(nil), t.Attr...),
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parsing xml: multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("parsing xml: unbalanced end element %s", t.Name.Local)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parsing xml: no root element")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("parsing xml: unclosed element %s", stack[len(stack)-1].Name.Local)
	}
	return root, nil
}

// FindFirst returns the first descendant whose namespace and local name
// match, searching depth-first in document order. When no qualified
// match exists it retries matching the local name alone.
func (n *Node) FindFirst(space, local string) *Node {
	if m := n.findFirst(space, local, true); m != nil {
		return m
	}
	return n.findFirst(space, local, false)
}

// FindAll returns all matching descendants in document order. Qualified
// matches take priority: when at least one exists, the local-name
// fallback is not consulted.
func (n *Node) FindAll(space, local string) []*Node {
	if out := n.findAll(nil, space, local, true); len(out) > 0 {
		return out
	}
	return n.findAll(nil, space, local, false)
}

// FindChild returns the first direct child matching the name, with the
// same qualified-then-local strategy as FindFirst.
func (n *Node) FindChild(space, local string) *Node {
	for _, c := range n.Children {
		if c.matches(space, local, true) {
			return c
		}
	}
	for _, c := range n.Children {
		if c.matches(space, local, false) {
			return c
		}
	}
	return nil
}

// FindChildren returns all direct children matching the name, qualified
// matches taking priority over local-name matches.
func (n *Node) FindChildren(space, local string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.matches(space, local, true) {
			out = append(out, c)
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, c := range n.Children {
		if c.matches(space, local, false) {
			out = append(out, c)
		}
	}
	return out
}

// Attr returns the value of the named attribute. Attribute lookup
// matches on the local name only: producing tools qualify attributes
// inconsistently, and no OOXML element carries two attributes that
// differ only by namespace in a way this library cares about.
func (n *Node) Attr(local string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// InnerText returns the concatenation of all character data in this
// element and its descendants, in document order.
func (n *Node) InnerText() string {
	var sb strings.Builder
	n.innerText(&sb)
	return sb.String()
}

func (n *Node) innerText(sb *strings.Builder) {
	sb.WriteString(n.Text)
	for _, c := range n.Children {
		c.innerText(sb)
	}
}

func (n *Node) matches(space, local string, qualified bool) bool {
	if n.Name.Local != local {
		return false
	}
	if qualified {
		return n.Name.Space == space
	}
	return true
}

func (n *Node) findFirst(space, local string, qualified bool) *Node {
	for _, c := range n.Children {
		if c.matches(space, local, qualified) {
			return c
		}
		if m := c.findFirst(space, local, qualified); m != nil {
			return m
		}
	}
	return nil
}

func (n *Node) findAll(out []*Node, space, local string, qualified bool) []*Node {
	for _, c := range n.Children {
		if c.matches(space, local, qualified) {
			out = append(out, c)
		}
		out = c.findAll(out, space, local, qualified)
	}
	return out
}
