// Package tree provides a generic n-ary node for boolean filter expressions.
//
// A Node joins its children with a connector (AND, OR, ...) and can be
// negated. Nodes of different kinds never compare equal, which lets callers
// define their own node variants without subclassing:
//
//	var Q = &tree.Kind{Name: "Q", DefaultConnector: tree.AND}
//
//	q := Q.New([]any{"price__lt=10"}, "", false)
//	q.Add(Q.New([]any{"stock__gt=0"}, "", false), tree.AND)
//	fmt.Println(q) // (AND: price__lt=10, stock__gt=0)
package tree

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Common connectors.
const (
	AND = "AND"
	OR  = "OR"
)

// Kind identifies a family of nodes and the connector they default to.
type Kind struct {
	Name             string
	DefaultConnector string
}

// Default is the kind used by NewNode.
var Default = &Kind{Name: "Node", DefaultConnector: "DEFAULT"}

// New creates a node of kind k. An empty connector selects the kind's
// default. The children slice is copied.
func (k *Kind) New(children []any, connector string, negated bool) *Node {
	if connector == "" {
		connector = k.DefaultConnector
	}
	return &Node{
		Children:  slices.Clone(children),
		Connector: connector,
		Negated:   negated,
		kind:      k,
	}
}

// Node is a tree node whose children are either other nodes or leaf values.
type Node struct {
	Children  []any
	Connector string
	Negated   bool

	kind *Kind
}

// NewNode creates a node of the Default kind.
func NewNode(children []any, connector string, negated bool) *Node {
	return Default.New(children, connector, negated)
}

// Kind returns the kind the node was created with.
func (n *Node) Kind() *Kind {
	if n.kind == nil {
		return Default
	}
	return n.kind
}

func (n *Node) String() string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = fmt.Sprint(c)
	}
	if n.Negated {
		return fmt.Sprintf("(NOT (%s: %s))", n.Connector, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("(%s: %s)", n.Connector, strings.Join(parts, ", "))
}

// GoString implements fmt.GoStringer.
func (n *Node) GoString() string {
	return fmt.Sprintf("<%s: %s>", n.Kind().Name, n)
}

// Copy returns a shallow copy sharing the children slice with n.
func (n *Node) Copy() *Node {
	return &Node{
		Children:  n.Children,
		Connector: n.Connector,
		Negated:   n.Negated,
		kind:      n.kind,
	}
}

// DeepCopy returns a copy with child nodes copied recursively. Leaf values
// are copied by assignment.
func (n *Node) DeepCopy() *Node {
	out := n.Copy()
	out.Children = make([]any, len(n.Children))
	for i, c := range n.Children {
		if child, ok := c.(*Node); ok {
			out.Children[i] = child.DeepCopy()
			continue
		}
		out.Children[i] = c
	}
	return out
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	return len(n.Children)
}

// IsEmpty reports whether the node has no children.
func (n *Node) IsEmpty() bool {
	return len(n.Children) == 0
}

// Contains reports whether child equals one of the direct children.
func (n *Node) Contains(child any) bool {
	for _, c := range n.Children {
		if equalValues(c, child) {
			return true
		}
	}
	return false
}

// Equal reports whether both nodes have the same kind, connector, negation
// and children.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind() != other.Kind() || n.Connector != other.Connector || n.Negated != other.Negated {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !equalValues(n.Children[i], other.Children[i]) {
			return false
		}
	}
	return true
}

func equalValues(a, b any) bool {
	an, aok := a.(*Node)
	bn, bok := b.(*Node)
	if aok || bok {
		return aok && bok && an.Equal(bn)
	}
	return reflect.DeepEqual(a, b)
}

// Key returns a string that is identical for equal nodes, usable as a map
// key. Map-valued children are keyed by their sorted entries.
func (n *Node) Key() string {
	var b strings.Builder
	writeKey(&b, n)
	return b.String()
}

func writeKey(b *strings.Builder, v any) {
	if n, ok := v.(*Node); ok {
		fmt.Fprintf(b, "%s(%q,%t", n.Kind().Name, n.Connector, n.Negated)
		for _, c := range n.Children {
			b.WriteByte(',')
			writeKey(b, c)
		}
		b.WriteByte(')')
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		entries := make(map[string]string, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			var kb, vb strings.Builder
			writeKey(&kb, iter.Key().Interface())
			writeKey(&vb, iter.Value().Interface())
			keys = append(keys, kb.String())
			entries[kb.String()] = vb.String()
		}
		slices.Sort(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(k)
			b.WriteByte(':')
			b.WriteString(entries[k])
		}
		b.WriteByte('}')
	case reflect.Slice, reflect.Array:
		b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			writeKey(b, rv.Index(i).Interface())
		}
		b.WriteByte(']')
	default:
		fmt.Fprintf(b, "%#v", v)
	}
}

// Add joins data to the node with connType and returns the node that now
// holds data.
//
// If the connector differs, the current node is pushed down as the first
// child and the node switches to connType. A non-negated node with the same
// connector, or with a single child, is squashed: its children are appended
// directly and n is returned. Anything else is appended as one child.
func (n *Node) Add(data any, connType string) any {
	if n.Connector != connType {
		obj := n.Copy()
		n.Connector = connType
		n.Children = []any{obj, data}
		return data
	}

	if d, ok := data.(*Node); ok && !d.Negated && (d.Connector == connType || d.Len() == 1) {
		n.Children = append(n.Children, d.Children...)
		return n
	}

	n.Children = append(n.Children, data)
	return data
}

// Negate flips the negation of the node.
func (n *Node) Negate() {
	n.Negated = !n.Negated
}
