package pointcloud

import (
	"math"

	"github.com/golang/geo/r3"
)

// MetaData is data about what's stored in a set of points.
type MetaData struct {
	HasColor bool
	HasValue bool

	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64

	TotalX, TotalY, TotalZ float64

	// Size is the number of points merged.
	Size int
}

// NewMetaData creates a new MetaData that contains no points.
func NewMetaData() MetaData {
	return MetaData{
		MinX: math.MaxFloat64,
		MinY: math.MaxFloat64,
		MinZ: math.MaxFloat64,
		MaxX: -math.MaxFloat64,
		MaxY: -math.MaxFloat64,
		MaxZ: -math.MaxFloat64,
	}
}

// Merge updates the meta data with the new point and its data.
func (meta *MetaData) Merge(v r3.Vector, data Data) {
	if data.HasColor() {
		meta.HasColor = true
	}
	if data.HasValue() {
		meta.HasValue = true
	}

	meta.MaxX = math.Max(meta.MaxX, v.X)
	meta.MaxY = math.Max(meta.MaxY, v.Y)
	meta.MaxZ = math.Max(meta.MaxZ, v.Z)

	meta.MinX = math.Min(meta.MinX, v.X)
	meta.MinY = math.Min(meta.MinY, v.Y)
	meta.MinZ = math.Min(meta.MinZ, v.Z)

	meta.TotalX += v.X
	meta.TotalY += v.Y
	meta.TotalZ += v.Z

	meta.Size++
}

// MergeMetaData folds another meta data, e.g. that of a sibling region, into this one. Meta data
// with no points is ignored.
func (meta *MetaData) MergeMetaData(other MetaData) {
	if other.Size == 0 {
		return
	}
	meta.HasColor = meta.HasColor || other.HasColor
	meta.HasValue = meta.HasValue || other.HasValue

	meta.MaxX = math.Max(meta.MaxX, other.MaxX)
	meta.MaxY = math.Max(meta.MaxY, other.MaxY)
	meta.MaxZ = math.Max(meta.MaxZ, other.MaxZ)

	meta.MinX = math.Min(meta.MinX, other.MinX)
	meta.MinY = math.Min(meta.MinY, other.MinY)
	meta.MinZ = math.Min(meta.MinZ, other.MinZ)

	meta.TotalX += other.TotalX
	meta.TotalY += other.TotalY
	meta.TotalZ += other.TotalZ

	meta.Size += other.Size
}

// Center returns the center of mass of the points merged so far.
func (meta *MetaData) Center() r3.Vector {
	if meta.Size == 0 {
		return r3.Vector{}
	}
	return r3.Vector{
		X: meta.TotalX / float64(meta.Size),
		Y: meta.TotalY / float64(meta.Size),
		Z: meta.TotalZ / float64(meta.Size),
	}
}

// Bounds returns the corners of the axis aligned box holding every merged point.
func (meta *MetaData) Bounds() (r3.Vector, r3.Vector) {
	return r3.Vector{X: meta.MinX, Y: meta.MinY, Z: meta.MinZ}, r3.Vector{X: meta.MaxX, Y: meta.MaxY, Z: meta.MaxZ}
}
