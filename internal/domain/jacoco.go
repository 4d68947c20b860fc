package domain

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	m "covlens.dev/pkg/covlens/internal/model"
)

// ParseReport decodes a JaCoCo XML document into a scope tree. The walk is a
// streaming token scan: named scope elements (report, package, class, method)
// push onto a stack and counter elements attach to the nearest enclosing
// named scope, whatever their nesting depth. Within one scope a later counter
// of a kind replaces an earlier one; JaCoCo emits scope totals after detail
// elements, so the totals win over sourcefile-level duplicates.
//
// A counter with unparsable or negative missed/covered attributes is skipped
// on its own; only malformed XML fails the whole parse.
func ParseReport(data []byte, origin string) (*m.ScopeNode, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var root *m.ScopeNode

	// Stack of element frames. Frames for unnamed elements (sourcefile,
	// line, sessioninfo) carry a nil scope so counters inside them still
	// resolve to the nearest named ancestor.
	type frame struct {
		scope *m.ScopeNode
	}

	var stack []frame

	nearestScope := func() *m.ScopeNode {
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].scope != nil {
				return stack[i].scope
			}
		}

		return nil
	}

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, &MalformedReportError{Path: origin, Err: err}
		}

		switch element := token.(type) {
		case xml.StartElement:
			scope := openScope(element, root, nearestScope())
			if scope != nil && scope.Kind == m.ScopeRoot {
				root = scope
			}

			if element.Name.Local == "counter" {
				if counter, ok := parseCounter(element); ok {
					if parent := nearestScope(); parent != nil {
						parent.SetCounter(counter)
					}
				}
			}

			stack = append(stack, frame{scope: scope})

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if root == nil {
		root = &m.ScopeNode{Kind: m.ScopeRoot}
	}

	return root, nil
}

// openScope returns the scope node for a named scope element, creating and
// linking it under the current scope. Non-scope elements return nil.
func openScope(element xml.StartElement, root, parent *m.ScopeNode) *m.ScopeNode {
	switch element.Name.Local {
	case "report":
		if root != nil {
			return nil
		}

		return &m.ScopeNode{Name: attr(element, "name"), Kind: m.ScopeRoot}

	case "package":
		// Package names arrive slash-separated; reports use dotted form.
		name := strings.ReplaceAll(attr(element, "name"), "/", ".")
		return attachScope(parent, name, m.ScopePackage)

	case "class":
		// Classes keep only the simple name.
		name := attr(element, "name")
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}

		return attachScope(parent, name, m.ScopeClass)

	case "method":
		return attachScope(parent, attr(element, "name"), m.ScopeMethod)
	}

	return nil
}

func attachScope(parent *m.ScopeNode, name string, kind m.ScopeKind) *m.ScopeNode {
	if parent == nil {
		return nil
	}

	scope := &m.ScopeNode{Name: name, Kind: kind}
	parent.Children = append(parent.Children, scope)

	return scope
}

func parseCounter(element xml.StartElement) (m.CoverageCounter, bool) {
	kind := attr(element, "type")
	if kind == "" {
		return m.CoverageCounter{}, false
	}

	missed, err := parseCount(attr(element, "missed"))
	if err != nil {
		return m.CoverageCounter{}, false
	}

	covered, err := parseCount(attr(element, "covered"))
	if err != nil {
		return m.CoverageCounter{}, false
	}

	return m.CoverageCounter{
		Kind:    m.CounterKind(kind),
		Missed:  missed,
		Covered: covered,
	}, true
}

// parseCount reads a non-negative count attribute; an absent attribute
// counts as zero.
func parseCount(value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, strconv.ErrRange
	}

	return n, nil
}

func attr(element xml.StartElement, name string) string {
	for _, a := range element.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}

	return ""
}
