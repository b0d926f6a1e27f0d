// Package cover: Insert, the single-point incremental construction
// algorithm. See sweep.go for the shared descent kernel this builds on.
package cover

// Insert adds p to the tree. Inserting a point already present (distance
// exactly 0 from an existing point) is a silent no-op. Insert is not safe
// for concurrent use — see the Tree doc comment.
func (t *Tree[T]) Insert(p T) {
	if t.root == nil {
		t.root = newNode(p)
		t.minLevel = t.maxLevel

		return
	}

	q := []candidate[T]{{node: t.root, dist: t.distance(p, t.root.Point)}}
	var parents []candidate[T]
	parentLevel := 0
	for i := t.maxLevel; ; i-- {
		qStar := t.sweep(p, q, i)
		dMin := minDist(qStar)

		if dMin == 0 {
			return // already present
		}
		if dMin > t.radius(i) {
			// Attach p under the latest qualifying (parents, level) pair
			// recorded on the way down. If the very first level already
			// fails, fall back to the root set at level i+1.
			if len(parents) == 0 {
				parents, parentLevel = filterByRadius(q, t.radius(i+1)), i+1
			}
			parent := parents[t.rng.Intn(len(parents))].node
			parent.addChildAtLevel(newNode(p), parentLevel)
			if parentLevel-1 < t.minLevel {
				t.minLevel = parentLevel - 1
			}

			return
		}

		// Remember the pre-sweep cover members within radius(i): they are
		// present at level i, so p can become their level-i child.
		if minDist(q) <= t.radius(i) {
			parents, parentLevel = filterByRadius(q, t.radius(i)), i
		}
		q = filterByRadius(qStar, t.radius(i))
	}
}
