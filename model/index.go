package model

import (
	"fmt"
	"strconv"
	"strings"
)

// AlignLabels pads each row label with trailing blank lines so that, rendered
// side by side, the label panel's row boundaries coincide with the main
// table's. withSeparators reflects whether the consuming renderer draws a
// separator line per row: with separators the label line plus padding covers
// height lines; without, the label must also cover the missing boundary line.
func AlignLabels(labels []string, heights []int, withSeparators bool) ([]string, error) {
	if len(labels) != len(heights) {
		return nil, ErrShapeMismatch
	}

	padded := make([]string, len(labels))
	for i, label := range labels {
		extra := heights[i]
		if withSeparators {
			extra--
		}
		if extra < 0 {
			extra = 0
		}
		padded[i] = label + strings.Repeat("\n", extra)
	}
	return padded, nil
}

// HierarchicalIndex is a multi-level grouping of N flat positions into nested
// contiguous ranges. Levels hold the synthesized group tags, coarsest first;
// each level partitions all positions, and a coarser level never splits a
// finer level's group.
type HierarchicalIndex struct {
	Levels  [][]int
	NumRows int
}

// BuildHierarchicalIndex synthesizes a balanced depth-level index over n flat
// positions. depth-1 levels are generated (the finest level is the flat
// positions themselves); each level toward the leaves has roughly twice as
// many groups as its parent, and leftover positions join the last group. When
// depth-1 exceeds log2(n) the coarsest levels collapse to a single group.
func BuildHierarchicalIndex(n, depth int) (HierarchicalIndex, error) {
	if depth < 2 {
		return HierarchicalIndex{}, ErrInvalidDepth
	}
	if n < 1 {
		return HierarchicalIndex{}, fmt.Errorf("cannot index %d positions", n)
	}

	levels := make([][]int, depth-1)
	for level := 1; level <= depth-1; level++ {
		levelLen := n >> (depth - 1 - level)
		if levelLen < 1 {
			levelLen = 1
		}
		multiplier := n / levelLen
		remainder := n % levelLen

		tags := make([]int, 0, n)
		for group := 0; group < levelLen; group++ {
			for k := 0; k < multiplier; k++ {
				tags = append(tags, group)
			}
		}
		for k := 0; k < remainder; k++ {
			tags = append(tags, levelLen-1)
		}
		levels[level-1] = tags
	}

	return HierarchicalIndex{Levels: levels, NumRows: n}, nil
}

// TagsAt returns the group id of position i at every level, coarsest first.
func (hi HierarchicalIndex) TagsAt(i int) []int {
	tags := make([]int, len(hi.Levels))
	for level, tagsAtLevel := range hi.Levels {
		tags[level] = tagsAtLevel[i]
	}
	return tags
}

// LabelAt renders the tag tuple of position i joined with its flat label,
// e.g. "0.1.row42".
func (hi HierarchicalIndex) LabelAt(i int, flat string) string {
	var b strings.Builder
	for _, tag := range hi.TagsAt(i) {
		b.WriteString(strconv.Itoa(tag))
		b.WriteByte('.')
	}
	b.WriteString(flat)
	return b.String()
}

// Labels renders all positions against the given flat labels.
func (hi HierarchicalIndex) Labels(flat []string) ([]string, error) {
	if len(flat) != hi.NumRows {
		return nil, ErrShapeMismatch
	}
	labels := make([]string, hi.NumRows)
	for i := range labels {
		labels[i] = hi.LabelAt(i, flat[i])
	}
	return labels, nil
}
