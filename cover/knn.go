// Package cover: KNN, KNNInsert and Find — the query-side algorithms built
// on the same cover-set sweep Insert uses.
package cover

// KNN returns the min(k, tree size) points closest to p, ordered ascending
// by distance. Returns ErrInvalidK if k < 1. On an empty tree, returns an
// empty, nil-error result unless the tree was built with WithStrictEmpty,
// in which case it returns ErrEmptyTree.
func (t *Tree[T]) KNN(k int, p T) ([]Result[T], error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if t.root == nil {
		if t.strictEmpty {
			return nil, ErrEmptyTree
		}

		return nil, nil
	}

	q := []candidate[T]{{node: t.root, dist: t.distance(p, t.root.Point)}}
	for i := t.maxLevel; i >= t.minLevel; i-- {
		q = t.sweep(p, q, i)
		dK := kthSmallest(q, k)
		q = filterByRadius(q, dK+t.radius(i))
	}

	return topK(q, k), nil
}

// KNNInsert behaves like calling KNN(k, p) followed by Insert(p), but
// reuses the distances computed during the shared descent instead of
// performing the two operations independently. If the tree is empty, p
// becomes the root and an empty result is returned; if p is already
// present (distance 0 observed), the insert is skipped and the current
// kNN result is returned.
func (t *Tree[T]) KNNInsert(k int, p T) ([]Result[T], error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if t.root == nil {
		t.root = newNode(p)
		t.minLevel = t.maxLevel

		return nil, nil
	}

	q := []candidate[T]{{node: t.root, dist: t.distance(p, t.root.Point)}}
	i := t.maxLevel
	foundParent := false
	alreadyThere := false
	var parent *Node[T]
	var parentLevel int

	for (!alreadyThere && !foundParent) || i >= t.minLevel {
		qStar := t.sweep(p, q, i)
		dHigh := kthSmallest(qStar, k)
		dLow := minDist(qStar)

		switch {
		case dLow == 0:
			alreadyThere = true
		case !alreadyThere && !foundParent && dLow > t.radius(i-1):
			foundParent = true
		}

		// Remember the latest qualifying (parent, level) pair using the
		// pre-sweep cover set, exactly as Insert does one level up.
		if minDist(q) <= t.radius(i) {
			candidates := filterByRadius(q, t.radius(i))
			parent = candidates[t.rng.Intn(len(candidates))].node
			parentLevel = i
		}

		q = filterByRadius(qStar, dHigh+t.radius(i))
		i--
	}

	if !alreadyThere && foundParent && parent != nil {
		parent.addChildAtLevel(newNode(p), parentLevel)
		if parentLevel-1 < t.minLevel {
			t.minLevel = parentLevel - 1
		}
	}

	return topK(q, k), nil
}

// Find reports whether p is present in the tree (some stored point is at
// distance exactly 0 from p).
func (t *Tree[T]) Find(p T) (bool, error) {
	res, err := t.KNN(1, p)
	if err != nil {
		return false, err
	}
	if len(res) == 0 {
		return false, nil
	}

	return res[0].Distance == 0, nil
}
