package hud

import (
	"fmt"

	"github.com/appengine-ltd/hudkit/internal/datanode"
	"github.com/appengine-ltd/hudkit/internal/geom"
)

var alignKeywords = []string{"left", "top", "right", "bottom"}

// parseAlign scans node tokens from index start onward and folds the
// recognized alignment keywords into the vector: -1 pins to the left/top
// edge, +1 to the right/bottom edge, and an axis no keyword names stays
// centered. A later keyword on the same axis overrides an earlier one.
func parseAlign(node *datanode.Node, start int, alignment *geom.Pt) {
	for i := start; i < node.Size(); i++ {
		switch tok := node.Token(i); tok {
		case "left":
			alignment.X = -1
		case "top":
			alignment.Y = -1
		case "right":
			alignment.X = 1
		case "bottom":
			alignment.Y = 1
		default:
			msg := fmt.Sprintf("Unrecognized alignment %q", tok)
			if hint, ok := datanode.Suggest(tok, alignKeywords); ok {
				msg += fmt.Sprintf(" (did you mean %q?)", hint)
			}
			node.Trace(msg + ":")
		}
	}
}
