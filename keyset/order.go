package keyset

import "cmp"

// SortKey is the totally ordered index value a KeyOrder derives from a
// key size. Both shipped orders are permutations of the size pair, so a
// sort key identifies a size exactly under a fixed order.
type SortKey struct {
	Primary   int `json:"primary"`
	Secondary int `json:"secondary"`
}

// Compare orders sort keys lexicographically, primary axis first.
func (k SortKey) Compare(other SortKey) int {
	if c := cmp.Compare(k.Primary, other.Primary); c != 0 {
		return c
	}
	return cmp.Compare(k.Secondary, other.Secondary)
}

// KeyOrder maps a key size to its SortKey. Implementations must be
// stateless and injective on sizes; the order is fixed per KeySet via its
// type argument, never chosen per call.
type KeyOrder interface {
	SortKey(numInputs, numOutputs int) SortKey
}

// OrderByInputs sorts keys by input count first, then output count.
type OrderByInputs struct{}

func (OrderByInputs) SortKey(numInputs, numOutputs int) SortKey {
	return SortKey{Primary: numInputs, Secondary: numOutputs}
}

// OrderByOutputs sorts keys by output count first, then input count.
type OrderByOutputs struct{}

func (OrderByOutputs) SortKey(numInputs, numOutputs int) SortKey {
	return SortKey{Primary: numOutputs, Secondary: numInputs}
}
