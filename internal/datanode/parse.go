package datanode

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ParseFile reads the named file and parses it into top-level nodes.
func ParseFile(path string) ([]Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Parse(path, f)
}

// Parse reads the indented node format from r. The name is used in
// diagnostics only. Blank lines and comment lines are skipped; a line's
// children are the following lines with deeper indentation.
func Parse(name string, r io.Reader) ([]Node, error) {
	var roots []Node
	// Stack of the indentation level and node slot at each open depth.
	type frame struct {
		indent int
		nodes  *[]Node
	}
	stack := []frame{{indent: -1, nodes: &roots}}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		indent, tokens := splitLine(raw)
		if len(tokens) == 0 {
			continue
		}

		// Pop back to the frame this line belongs under.
		for len(stack) > 1 && indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].nodes
		*parent = append(*parent, Node{
			Tokens: tokens,
			source: name,
			line:   lineNo,
		})
		child := &(*parent)[len(*parent)-1]
		stack = append(stack, frame{indent: indent, nodes: &child.Children})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", name, err)
	}
	return roots, nil
}

// splitLine returns a line's indentation depth (count of leading
// whitespace characters) and its tokens. Tokens are separated by spaces
// or tabs; double or back quotes keep embedded whitespace; an unquoted
// '#' starts a comment running to the end of the line.
func splitLine(line string) (int, []string) {
	indent := 0
	for indent < len(line) && (line[indent] == ' ' || line[indent] == '\t') {
		indent++
	}

	var tokens []string
	i := indent
	for i < len(line) {
		c := line[i]
		if c == ' ' || c == '\t' {
			i++
			continue
		}
		if c == '#' {
			break
		}
		if c == '"' || c == '`' {
			quote := c
			i++
			start := i
			for i < len(line) && line[i] != quote {
				i++
			}
			tokens = append(tokens, line[start:i])
			if i < len(line) {
				i++
			}
			continue
		}
		start := i
		for i < len(line) && line[i] != ' ' && line[i] != '\t' {
			i++
		}
		tokens = append(tokens, line[start:i])
	}
	return indent, tokens
}
