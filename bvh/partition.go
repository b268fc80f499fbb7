package bvh

import "github.com/TUS-OSK/go-bvhtrace/geom"

// partitionByCenter performs a Lomuto-scheme quickselect so that, after
// the call, every element of items[lo:k] has a center[axis] value no
// greater than any element of items[k:hi]. This is the partial ordering
// the BVH builder needs at the median split point — it does not fully
// sort the range, only guarantees an O(n) expected-time split.
func partitionByCenter(items []geom.Triangle, lo, hi, k, axis int) {
	for lo < hi {
		p := lomutoPartition(items, lo, hi, axis)
		switch {
		case p == k:
			return
		case k < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
}

func lomutoPartition(items []geom.Triangle, lo, hi, axis int) int {
	pivot := items[hi].Center()[axis]
	i := lo
	for j := lo; j < hi; j++ {
		if items[j].Center()[axis] < pivot {
			items[i], items[j] = items[j], items[i]
			i++
		}
	}
	items[i], items[hi] = items[hi], items[i]
	return i
}
