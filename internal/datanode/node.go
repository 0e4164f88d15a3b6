// Package datanode reads the indented plain-text configuration format used
// by interface definitions. Each line is a node: a list of whitespace
// separated tokens, with quoting for tokens that contain spaces. Lines
// indented deeper than the previous node become its children.
//
// Configuration problems are never fatal. Malformed lines are reported
// through Trace, which names the source location, and are otherwise skipped.
package datanode

import (
	"log"
	"strconv"
	"strings"
)

// Node is one line of configuration plus its indented children.
type Node struct {
	Tokens   []string
	Children []Node

	source string
	line   int
}

// Size returns the number of tokens on this line.
func (n *Node) Size() int {
	return len(n.Tokens)
}

// Token returns the i'th token, or "" if the line has no such token.
func (n *Node) Token(i int) string {
	if i < 0 || i >= len(n.Tokens) {
		return ""
	}
	return n.Tokens[i]
}

// Value returns the i'th token parsed as a number. A missing or
// non-numeric token traces a diagnostic and yields 0.
func (n *Node) Value(i int) float64 {
	tok := n.Token(i)
	if tok == "" {
		n.Trace("Expected a numeric value:")
		return 0
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		n.Trace("Cannot convert value to a number:")
		return 0
	}
	return v
}

// Trace logs a non-fatal diagnostic for this node, naming the source
// location and repeating the offending line.
func (n *Node) Trace(msg string) {
	where := n.source
	if where == "" {
		where = "<data>"
	}
	log.Printf("%s:%d: %s %q", where, n.line, msg, strings.Join(n.Tokens, " "))
}
