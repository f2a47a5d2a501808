// Package pool provides sync.Pool backed allocations for the render path,
// which rebuilds every window layer on each frame.
package pool

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

var stringBuilderPool = sync.Pool{
	New: func() any {
		return &strings.Builder{}
	},
}

// GetStringBuilder returns a reset string builder from the pool.
func GetStringBuilder() *strings.Builder {
	return stringBuilderPool.Get().(*strings.Builder)
}

// PutStringBuilder resets the builder and returns it to the pool.
func PutStringBuilder(sb *strings.Builder) {
	sb.Reset()
	stringBuilderPool.Put(sb)
}

var layerSlicePool = sync.Pool{
	New: func() any {
		s := make([]*lipgloss.Layer, 0, 16)
		return &s
	},
}

// GetLayerSlice returns an empty layer slice with preallocated capacity.
func GetLayerSlice() *[]*lipgloss.Layer {
	return layerSlicePool.Get().(*[]*lipgloss.Layer)
}

// PutLayerSlice clears the slice and returns it to the pool. The layers
// themselves are owned by the canvas and must not be reused.
func PutLayerSlice(s *[]*lipgloss.Layer) {
	*s = (*s)[:0]
	layerSlicePool.Put(s)
}

var stylePool = sync.Pool{
	New: func() any {
		style := lipgloss.NewStyle()
		return &style
	},
}

// GetStyle returns a zero-value style from the pool.
func GetStyle() *lipgloss.Style {
	return stylePool.Get().(*lipgloss.Style)
}

// PutStyle returns a style to the pool after resetting it.
func PutStyle(style *lipgloss.Style) {
	*style = lipgloss.NewStyle()
	stylePool.Put(style)
}
