package hausdorff

import (
	"fmt"

	"github.com/katalvlaran/geodist/geodesic"
	"github.com/katalvlaran/geodist/geom"
)

// Directed3D returns the directed Hausdorff distance from a to b using the
// 3D chord metric, so altitude differences contribute.
func Directed3D(a, b []geom.Point3D) (DirectedWitness, error) {
	return directed(a, b, geodesic.Distance3D)
}

// Distance3D returns the symmetric Hausdorff distance between a and b under
// the 3D chord metric.
func Distance3D(a, b []geom.Point3D) (Witness, error) {
	return symmetric(a, b, geodesic.Distance3D)
}

// DirectedClipped3D restricts both sets to box before the directed scan.
// Clipping is horizontal only; altitude never excludes a point. Witness
// indices refer to the original input sets.
func DirectedClipped3D(a, b []geom.Point3D, box geom.BoundingBox) (DirectedWitness, error) {
	ca, ia, err := clip3D(a, box, "a")
	if err != nil {
		return DirectedWitness{}, err
	}
	cb, ib, err := clip3D(b, box, "b")
	if err != nil {
		return DirectedWitness{}, err
	}

	w, err := Directed3D(ca, cb)
	if err != nil {
		return DirectedWitness{}, err
	}

	return remapWitness(w, ia, ib), nil
}

// DistanceClipped3D restricts both sets to box before the symmetric scan.
// Witness indices refer to the original input sets.
func DistanceClipped3D(a, b []geom.Point3D, box geom.BoundingBox) (Witness, error) {
	ca, ia, err := clip3D(a, box, "a")
	if err != nil {
		return Witness{}, err
	}
	cb, ib, err := clip3D(b, box, "b")
	if err != nil {
		return Witness{}, err
	}

	w, err := Distance3D(ca, cb)
	if err != nil {
		return Witness{}, err
	}
	w.AToB = remapWitness(w.AToB, ia, ib)
	w.BToA = remapWitness(w.BToA, ib, ia)

	return w, nil
}

func clip3D(set []geom.Point3D, box geom.BoundingBox, label string) ([]geom.Point3D, []int, error) {
	kept := make([]geom.Point3D, 0, len(set))
	keptIdx := make([]int, 0, len(set))
	for i, p := range set {
		if box.Contains3D(p) {
			kept = append(kept, p)
			keptIdx = append(keptIdx, i)
		}
	}
	if len(kept) == 0 {
		return nil, nil, fmt.Errorf("bounding box removed every point of set %s: %w", label, ErrEmptyPointSet)
	}

	return kept, keptIdx, nil
}
