package boxdist

// Box is an axis-aligned box. In geodetic use Min and Max hold
// {longitude, latitude} in degrees.
type Box struct {
	Min, Max [2]float64
}

// Contains returns true when the point is on or inside the box.
func (b Box) Contains(x, y float64) bool {
	return x >= b.Min[0] && x <= b.Max[0] && y >= b.Min[1] && y <= b.Max[1]
}

// PlanarAlgo returns a distance algo for Nearby that measures the squared
// planar distance from the point x,y to each box.
func PlanarAlgo(x, y float64) (
	algo func(min, max [2]float64) (dist float64),
) {
	return func(min, max [2]float64) float64 {
		return PlanarBoxDist(x, y, min[0], min[1], max[0], max[1])
	}
}

// GeodeticAlgo returns a distance algo for Nearby that measures the
// great-circle distance in meters from the point lon,lat to each box.
func GeodeticAlgo(lon, lat float64) (
	algo func(min, max [2]float64) (dist float64),
) {
	return func(min, max [2]float64) float64 {
		return GeodeticBoxDist(lon, lat, min[0], min[1], max[0], max[1])
	}
}

// Nearby ranks the boxes by distance. The caller provides the `algo`
// function, which calculates the distance from a box to a target that only
// the caller knows about. The iter will return all boxes from the smallest
// dist to the largest dist, along with their position in the boxes slice.
// Return false from iter to stop early.
func Nearby(
	boxes []Box,
	algo func(min, max [2]float64) (dist float64),
	iter func(index int, dist float64) bool,
) {
	q := make(queue, 0, len(boxes))
	for i := range boxes {
		q.push(qnode{
			dist:  algo(boxes[i].Min, boxes[i].Max),
			index: i,
		})
	}
	for {
		node, ok := q.pop()
		if !ok {
			return
		}
		if !iter(node.index, node.dist) {
			return
		}
	}
}

// Within is like Nearby but only returns boxes that are no farther than
// maxDist. The boxes come in the same order as Nearby.
func Within(
	boxes []Box,
	algo func(min, max [2]float64) (dist float64),
	maxDist float64,
	iter func(index int, dist float64) bool,
) {
	Nearby(boxes, algo, func(index int, dist float64) bool {
		if dist > maxDist {
			return false
		}
		return iter(index, dist)
	})
}

// Priority Queue ordered by dist (smallest to largest)

type qnode struct {
	dist  float64
	index int
}

type queue []qnode

func (q *queue) push(node qnode) {
	*q = append(*q, node)
	nodes := *q
	i := len(nodes) - 1
	for i > 0 {
		j := (i - 1) / 2
		if nodes[j].dist <= node.dist {
			break
		}
		nodes[i] = nodes[j]
		i = j
	}
	nodes[i] = node
}

func (q *queue) pop() (qnode, bool) {
	nodes := *q
	if len(nodes) == 0 {
		return qnode{}, false
	}
	n := nodes[0]
	last := nodes[len(nodes)-1]
	nodes = nodes[:len(nodes)-1]
	*q = nodes
	if len(nodes) == 0 {
		return n, true
	}
	i := 0
	for {
		k := 2*i + 1
		if k >= len(nodes) {
			break
		}
		if k+1 < len(nodes) && nodes[k+1].dist < nodes[k].dist {
			k++
		}
		if last.dist <= nodes[k].dist {
			break
		}
		nodes[i] = nodes[k]
		i = k
	}
	nodes[i] = last
	return n, true
}
