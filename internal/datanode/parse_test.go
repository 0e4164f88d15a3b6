package datanode

import (
	"strings"
	"testing"
)

func TestParseNesting(t *testing.T) {
	src := strings.Join([]string{
		"interface \"hud\"",
		"\tsprite icon",
		"\t\twidth 64",
		"\tlabel \"Fuel level\"",
		"interface menu",
	}, "\n")

	nodes, err := Parse("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(nodes))
	}
	hud := nodes[0]
	if hud.Token(0) != "interface" || hud.Token(1) != "hud" {
		t.Fatalf("unexpected tokens: %v", hud.Tokens)
	}
	if len(hud.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(hud.Children))
	}
	spriteNode := hud.Children[0]
	if len(spriteNode.Children) != 1 || spriteNode.Children[0].Token(0) != "width" {
		t.Fatalf("nested child lost: %+v", spriteNode.Children)
	}
	if hud.Children[1].Token(1) != "Fuel level" {
		t.Fatalf("quoted token split: %v", hud.Children[1].Tokens)
	}
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	src := strings.Join([]string{
		"# A full-line comment.",
		"",
		"point target  # trailing comment",
		"\tcenter 10 20",
	}, "\n")

	nodes, err := Parse("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	if nodes[0].Size() != 2 {
		t.Fatalf("trailing comment not stripped: %v", nodes[0].Tokens)
	}
	if nodes[0].Children[0].Value(1) != 10 || nodes[0].Children[0].Value(2) != 20 {
		t.Fatalf("numeric values wrong: %v", nodes[0].Children[0].Tokens)
	}
}

func TestValueOnBadTokenReturnsZero(t *testing.T) {
	nodes, err := Parse("test", strings.NewReader("width wide"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := nodes[0].Value(1); got != 0 {
		t.Fatalf("expected 0 for non-numeric token, got %v", got)
	}
	if got := nodes[0].Value(7); got != 0 {
		t.Fatalf("expected 0 for missing token, got %v", got)
	}
}

func TestSuggest(t *testing.T) {
	known := []string{"width", "height", "dimensions", "center", "from", "pad", "align"}

	if got, ok := Suggest("widht", known); !ok || got != "width" {
		t.Fatalf("expected width suggestion, got %q ok=%v", got, ok)
	}
	if got, ok := Suggest("dimnsions", known); !ok || got != "dimensions" {
		t.Fatalf("expected dimensions suggestion, got %q ok=%v", got, ok)
	}
	if _, ok := Suggest("zzzzzzz", known); ok {
		t.Fatalf("expected no suggestion for garbage")
	}
}
