package distance

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/veminovici/aabel-go/multiset"
)

// Jaccard is the ratio behind the multiset Jaccard index. Common counts
// the occurrences shared by both sides, the minimum count per key, and
// Total the occurrences of both sides combined.
//
// The denominator is the sum of both totals, not the size of the union,
// so two identical non-empty bags score 0.5 rather than 1.
type Jaccard struct {
	Common uint32
	Total  uint32
}

// Value returns Common/Total, or 0 when Total is 0.
func (j Jaccard) Value() float32 {
	if j.Total == 0 {
		return 0
	}
	return float32(j.Common) / float32(j.Total)
}

// String returns the ratio as "Common/Total".
func (j Jaccard) String() string {
	return fmt.Sprintf("%d/%d", j.Common, j.Total)
}

// JaccardMultisets returns the Jaccard ratio of two multisets.
func JaccardMultisets[K comparable](x, y *multiset.Multiset[K]) Jaccard {
	return Jaccard{
		Common: x.Intersect(y).Total(),
		Total:  x.Total() + y.Total(),
	}
}

// JaccardKeys builds a multiset from each key sequence and returns
// their Jaccard ratio.
func JaccardKeys[K comparable](xs, ys iter.Seq[K]) Jaccard {
	return JaccardMultisets(multiset.Collect(xs), multiset.Collect(ys))
}

// JaccardCounts builds a multiset from each (key, count) sequence and
// returns their Jaccard ratio.
func JaccardCounts[K comparable](xs, ys iter.Seq2[K, uint32]) Jaccard {
	return JaccardMultisets(multiset.CollectCounts(xs), multiset.CollectCounts(ys))
}

// JaccardBitmaps returns the classic set Jaccard index of two roaring
// bitmaps, intersection cardinality over union cardinality. An empty
// union yields 0.
func JaccardBitmaps(a, b *roaring.Bitmap) float32 {
	union := roaring.Or(a, b).GetCardinality()
	if union == 0 {
		return 0
	}
	inter := roaring.And(a, b).GetCardinality()
	return float32(inter) / float32(union)
}
