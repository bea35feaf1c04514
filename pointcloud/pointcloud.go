// Package pointcloud defines the point payloads stored in an octree and the metadata summary
// that describes a set of them.
package pointcloud

import (
	"image/color"

	"github.com/golang/geo/r3"
)

// NewVector convenience method for creating a vector.
func NewVector(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

// Data is what a point carries besides its position: optionally a color and optionally an
// integer value, e.g. a label or an intensity. The zero Data carries neither.
type Data struct {
	Color color.NRGBA
	Value int

	hasColor bool
	hasValue bool
}

// NewBasicData returns data for a point that is solely positionally based.
func NewBasicData() Data {
	return Data{}
}

// NewColoredData returns data carrying a color.
func NewColoredData(c color.NRGBA) Data {
	return Data{Color: c, hasColor: true}
}

// NewValueData returns data carrying a value.
func NewValueData(v int) Data {
	return Data{Value: v, hasValue: true}
}

// HasColor reports whether Color is set.
func (d Data) HasColor() bool {
	return d.hasColor
}

// HasValue reports whether Value is set.
func (d Data) HasValue() bool {
	return d.hasValue
}

// PointAndData is a tiny struct to facilitate storing points and their data together in an
// octree leaf.
type PointAndData struct {
	P r3.Vector
	D Data
}

// NewPointAndData returns a point with the given position and data.
func NewPointAndData(p r3.Vector, d Data) PointAndData {
	return PointAndData{P: p, D: d}
}
