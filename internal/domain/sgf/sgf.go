package sgf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"gomoku_exe/internal/domain/gomoku"
)

// GameTree is one SGF tree: the main line of nodes plus variations.
type GameTree struct {
	Nodes    []Node
	Children []*GameTree
}

// Node holds SGF properties such as B[hh] or C[...]; a property may repeat.
type Node struct {
	Properties map[string][]string
}

type SGF struct {
	Root *GameTree
}

const gameGomoku = "4"

// fixed property order, so equal games serialize identically
var propertyOrder = []string{"FF", "GM", "SZ", "PB", "PW", "DT", "RE", "C", "B", "W"}

// FromBoard records the board's history as a gomoku game, Player1 playing black.
func FromBoard(b *gomoku.Board, props map[string]string) SGF {
	root := Node{Properties: map[string][]string{
		"FF": {"4"},
		"GM": {gameGomoku},
		"SZ": {strconv.Itoa(gomoku.Rows)},
	}}
	for k, v := range props {
		root.Properties[k] = []string{v}
	}

	tree := &GameTree{Nodes: []Node{root}}
	p1, p2 := b.Occupied()
	for i := 0; i < len(p1); i++ {
		tree.Nodes = append(tree.Nodes, moveNode("B", p1[i]))
		if i < len(p2) {
			tree.Nodes = append(tree.Nodes, moveNode("W", p2[i]))
		}
	}
	return SGF{Root: tree}
}

func moveNode(color string, cell int) Node {
	return Node{Properties: map[string][]string{color: {Coordinate(cell)}}}
}

// Coordinate converts a cell index to SGF letters, column first.
func Coordinate(cell int) string {
	row, col := gomoku.RowCol(cell)
	return string([]byte{byte('a' + col), byte('a' + row)})
}

// ParseCoordinate is the inverse of Coordinate.
func ParseCoordinate(coord string) (int, error) {
	if len(coord) != 2 {
		return gomoku.NoCell, fmt.Errorf("invalid SGF coordinate %q", coord)
	}
	col, row := int(coord[0]-'a'), int(coord[1]-'a')
	if !gomoku.Inside(row, col) {
		return gomoku.NoCell, fmt.Errorf("SGF coordinate %q is outside the board", coord)
	}
	return gomoku.Pos(row, col), nil
}

func (s SGF) String() string {
	var builder strings.Builder
	builder.WriteString("(")
	serializeGameTree(&builder, s.Root)
	builder.WriteString(")")
	return builder.String()
}

func serializeGameTree(builder *strings.Builder, tree *GameTree) {
	for _, node := range tree.Nodes {
		builder.WriteString(";")

		for _, key := range propertyOrder {
			if values, ok := node.Properties[key]; ok {
				writeProperty(builder, key, values)
			}
		}
		extra := lo.Without(lo.Keys(node.Properties), propertyOrder...)
		sort.Strings(extra)
		for _, key := range extra {
			writeProperty(builder, key, node.Properties[key])
		}
	}

	for _, child := range tree.Children {
		builder.WriteString("(")
		serializeGameTree(builder, child)
		builder.WriteString(")")
	}
}

func writeProperty(builder *strings.Builder, key string, values []string) {
	builder.WriteString(key)
	for _, v := range values {
		builder.WriteString("[")
		builder.WriteString(strings.NewReplacer(`\`, `\\`, "]", `\]`).Replace(v))
		builder.WriteString("]")
	}
}
