package factorymod

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
)

// YAML tags of the scalars the parsers care about
const (
	tagNull  = "!!null"
	tagStr   = "!!str"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagBool  = "!!bool"
	tagMerge = "!!merge"
)

// Alias expansion limits. A document may expand to expansionRatio times its
// own node count through aliases and merge keys, and always to at least
// minExpansionBudget nodes.
const (
	expansionRatio     = 10
	minExpansionBudget = 100_000
)

// keyValue is one entry of a mapping node.
type keyValue struct {
	Key   *yaml.Node
	Value *yaml.Node
}

// resolve follows document wrappers and aliases to the node they stand for.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		case 0:
			// zero node left by unmarshalling empty input
			return nil
		default:
			return n
		}
	}
	return nil
}

// isNull reports whether a node is absent or an explicit null.
func isNull(n *yaml.Node) bool {
	n = resolve(n)
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == tagNull)
}

func isMapping(n *yaml.Node) bool {
	n = resolve(n)
	return n != nil && n.Kind == yaml.MappingNode
}

func isSequence(n *yaml.Node) bool {
	n = resolve(n)
	return n != nil && n.Kind == yaml.SequenceNode
}

// pairs lists the entries of a mapping node in document order, expanding
// merge keys (`<<: *anchor`). Explicit keys win over merged ones.
func pairs(n *yaml.Node) []keyValue {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	var out []keyValue
	seen := make(map[string]bool)
	var merged []keyValue
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.ShortTag() == tagMerge {
			merged = append(merged, mergeSources(v)...)
			continue
		}
		out = append(out, keyValue{Key: k, Value: v})
		seen[k.Value] = true
	}
	for _, kv := range merged {
		if seen[kv.Key.Value] {
			continue
		}
		seen[kv.Key.Value] = true
		out = append(out, kv)
	}
	return out
}

func mergeSources(v *yaml.Node) []keyValue {
	v = resolve(v)
	if v == nil {
		return nil
	}
	if v.Kind == yaml.SequenceNode {
		var out []keyValue
		for _, item := range v.Content {
			out = append(out, pairs(item)...)
		}
		return out
	}
	return pairs(v)
}

// field returns the value stored under key in a mapping node, or nil.
func field(n *yaml.Node, key string) *yaml.Node {
	for _, kv := range pairs(n) {
		if kv.Key.Value == key {
			return resolve(kv.Value)
		}
	}
	return nil
}

// elements lists the items of a sequence, or the values of a mapping.
func elements(n *yaml.Node) []*yaml.Node {
	n = resolve(n)
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.SequenceNode:
		out := make([]*yaml.Node, 0, len(n.Content))
		for _, c := range n.Content {
			out = append(out, resolve(c))
		}
		return out
	case yaml.MappingNode:
		kvs := pairs(n)
		out := make([]*yaml.Node, 0, len(kvs))
		for _, kv := range kvs {
			out = append(out, resolve(kv.Value))
		}
		return out
	}
	return nil
}

// checkExpansion fails when following every alias in the document would visit
// more nodes than its expansion budget. Everything that walks the tree with
// aliases resolved relies on this having passed.
func checkExpansion(root *yaml.Node) error {
	budget := max(minExpansionBudget, expansionRatio*countNodes(root))
	remaining := budget
	if !walkExpanded(root, &remaining) {
		return fmt.Errorf(ErrFmtTooManyNodes, domain.ErrMalformedValue, budget)
	}
	return nil
}

// countNodes counts the nodes as written, without following aliases.
func countNodes(n *yaml.Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Content {
		total += countNodes(c)
	}
	return total
}

// walkExpanded visits the tree the way toValue does and reports false once
// the budget runs out.
func walkExpanded(n *yaml.Node, remaining *int) bool {
	for n != nil {
		*remaining--
		if *remaining < 0 {
			return false
		}
		if n.Kind != yaml.AliasNode {
			break
		}
		n = n.Alias
	}
	if n == nil {
		return true
	}
	for _, c := range n.Content {
		if !walkExpanded(c, remaining) {
			return false
		}
	}
	return true
}

// toValue converts a node into the generic value tree used for schema
// validation and parse error reports: map[string]any, []any and scalars.
// Numbers become float64, as encoding/json would decode them.
func toValue(n *yaml.Node) any {
	n = resolve(n)
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.MappingNode:
		out := make(map[string]any)
		for _, kv := range pairs(n) {
			out[kv.Key.Value] = toValue(kv.Value)
		}
		return out
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			out = append(out, toValue(c))
		}
		return out
	case yaml.ScalarNode:
		return scalarValue(n)
	}
	return nil
}

func scalarValue(n *yaml.Node) any {
	switch n.ShortTag() {
	case tagNull:
		return nil
	case tagBool:
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
	case tagInt, tagFloat:
		var f float64
		if err := n.Decode(&f); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f
		}
		return n.Value
	case tagStr:
		return n.Value
	}
	var v any
	if err := n.Decode(&v); err == nil {
		if t, ok := v.(time.Time); ok {
			return t.Format(time.RFC3339)
		}
		switch v.(type) {
		case bool, float64, string:
			return v
		}
	}
	return n.Value
}

// describe renders a scalar for error messages.
func describe(n *yaml.Node) string {
	n = resolve(n)
	if n == nil {
		return "<absent>"
	}
	switch n.Kind {
	case yaml.MappingNode:
		return "<mapping>"
	case yaml.SequenceNode:
		return "<sequence>"
	}
	if n.ShortTag() == tagStr {
		return strconv.Quote(n.Value)
	}
	return n.Value
}
