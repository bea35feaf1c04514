package aggregate

import (
	"iter"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/stat"

	"go.viam.com/linearoctree/octree"
	"go.viam.com/linearoctree/pointcloud"
)

// MetaData returns strategies that describe the points under each region with
// pointcloud.MetaData: their bounds, whether any carry color or values, and their count.
func MetaData[C octree.Code[C]]() (octree.Gatherer[C, pointcloud.PointAndData, pointcloud.MetaData],
	octree.Folder[pointcloud.MetaData],
) {
	gather := octree.GathererFunc[C, pointcloud.PointAndData, pointcloud.MetaData](
		func(leaves iter.Seq2[C, pointcloud.PointAndData]) pointcloud.MetaData {
			meta := pointcloud.NewMetaData()
			for _, pd := range leaves {
				meta.Merge(pd.P, pd.D)
			}
			return meta
		})
	fold := octree.FolderFunc[pointcloud.MetaData](func(sums []pointcloud.MetaData) (pointcloud.MetaData, bool) {
		if len(sums) == 0 {
			return pointcloud.MetaData{}, false
		}
		meta := pointcloud.NewMetaData()
		for _, s := range sums {
			meta.MergeMetaData(s)
		}
		return meta, true
	})
	return gather, fold
}

// WeightedCenter is a center of mass and the total weight behind it.
type WeightedCenter struct {
	Center r3.Vector
	Weight float64
}

// Centroid returns strategies that compute the center of mass of the points under each region.
// weight gives the mass of a single point; a nil weight counts every point once. Internal regions
// whose points weigh nothing get no summary.
func Centroid[C octree.Code[C]](
	weight func(pointcloud.PointAndData) float64,
) (octree.Gatherer[C, pointcloud.PointAndData, WeightedCenter], octree.Folder[WeightedCenter]) {
	if weight == nil {
		weight = func(pointcloud.PointAndData) float64 { return 1 }
	}
	gather := octree.GathererFunc[C, pointcloud.PointAndData, WeightedCenter](
		func(leaves iter.Seq2[C, pointcloud.PointAndData]) WeightedCenter {
			var wc WeightedCenter
			for _, pd := range leaves {
				w := weight(pd)
				wc.Center = wc.Center.Mul(wc.Weight).Add(pd.P.Mul(w))
				wc.Weight += w
				if wc.Weight != 0 {
					wc.Center = wc.Center.Mul(1 / wc.Weight)
				}
			}
			return wc
		})
	fold := octree.FolderFunc[WeightedCenter](foldCenters)
	return gather, fold
}

func foldCenters(sums []WeightedCenter) (WeightedCenter, bool) {
	xs := make([]float64, 0, len(sums))
	ys := make([]float64, 0, len(sums))
	zs := make([]float64, 0, len(sums))
	weights := make([]float64, 0, len(sums))
	total := 0.
	for _, s := range sums {
		if s.Weight <= 0 {
			continue
		}
		xs = append(xs, s.Center.X)
		ys = append(ys, s.Center.Y)
		zs = append(zs, s.Center.Z)
		weights = append(weights, s.Weight)
		total += s.Weight
	}
	if total == 0 {
		return WeightedCenter{}, false
	}
	return WeightedCenter{
		Center: r3.Vector{
			X: stat.Mean(xs, weights),
			Y: stat.Mean(ys, weights),
			Z: stat.Mean(zs, weights),
		},
		Weight: total,
	}, true
}
