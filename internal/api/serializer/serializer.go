// Package serializer flattens entity graphs into JSON-ready maps.
//
// Each node contributes its own exclusion rules. A rule "-x" drops field or
// relation x at the node where it applies; "-a.b" is handed to relation a as
// "-b". Rules passed by the caller apply at the root and travel down the same
// way. A node already on the current path is never entered again, and
// relations stop at MaxDepth.
package serializer

import "strings"

// DefaultMaxDepth bounds relation nesting below the root.
const DefaultMaxDepth = 3

// Node is implemented by every serializable entity.
type Node interface {
	// SerializeKey identifies the node within a graph.
	SerializeKey() string
	// SerializeRules returns the node's default exclusion rules.
	SerializeRules() []string
	// SerializeFields returns the scalar fields.
	SerializeFields() map[string]any
	// SerializeRelations returns loaded relations: a Node, or []any of Nodes.
	SerializeRelations() map[string]any
}

// Serializer walks Node graphs.
type Serializer struct {
	MaxDepth int
}

// New returns a Serializer with DefaultMaxDepth.
func New() *Serializer {
	return &Serializer{MaxDepth: DefaultMaxDepth}
}

var defaultSerializer = New()

// Serialize serializes one node with the default serializer.
func Serialize(node Node, rules ...string) map[string]any {
	return defaultSerializer.Serialize(node, rules...)
}

// SerializeList serializes each node with the same caller rules. The result
// is never nil.
func SerializeList[T Node](nodes []T, rules ...string) []map[string]any {
	out := make([]map[string]any, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, defaultSerializer.Serialize(node, rules...))
	}
	return out
}

// Serialize converts node and its loaded relations into a map.
func (s *Serializer) Serialize(node Node, rules ...string) map[string]any {
	w := walker{maxDepth: s.MaxDepth, path: make(map[string]struct{})}
	return w.visit(node, rules, 0)
}

type walker struct {
	maxDepth int
	path     map[string]struct{}
}

func (w *walker) visit(node Node, inherited []string, depth int) map[string]any {
	key := node.SerializeKey()
	w.path[key] = struct{}{}
	defer delete(w.path, key)

	rules := append(append([]string{}, node.SerializeRules()...), inherited...)
	excluded, nested := parseRules(rules)

	out := make(map[string]any)
	for name, value := range node.SerializeFields() {
		if _, skip := excluded[name]; !skip {
			out[name] = value
		}
	}
	if depth >= w.maxDepth {
		return out
	}

	for name, relation := range node.SerializeRelations() {
		if _, skip := excluded[name]; skip {
			continue
		}
		switch rel := relation.(type) {
		case Node:
			if w.onPath(rel) {
				continue
			}
			out[name] = w.visit(rel, nested[name], depth+1)
		case []any:
			items := make([]any, 0, len(rel))
			for _, item := range rel {
				child, ok := item.(Node)
				if !ok || w.onPath(child) {
					continue
				}
				items = append(items, w.visit(child, nested[name], depth+1))
			}
			out[name] = items
		}
	}
	return out
}

func (w *walker) onPath(node Node) bool {
	_, ok := w.path[node.SerializeKey()]
	return ok
}

// parseRules splits rules into names excluded at this node and rules to hand
// down to each relation. Rules without a leading "-" are ignored.
func parseRules(rules []string) (map[string]struct{}, map[string][]string) {
	excluded := make(map[string]struct{})
	nested := make(map[string][]string)

	for _, rule := range rules {
		path, ok := strings.CutPrefix(strings.TrimSpace(rule), "-")
		if !ok || path == "" {
			continue
		}
		head, rest, deeper := strings.Cut(path, ".")
		if !deeper {
			excluded[head] = struct{}{}
			continue
		}
		if rest != "" {
			nested[head] = append(nested[head], "-"+rest)
		}
	}
	return excluded, nested
}
