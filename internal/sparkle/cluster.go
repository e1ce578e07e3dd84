package sparkle

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Cluster is a connected component of the final validated_mask.
type Cluster struct {
	ID           string
	CentroidY    int
	CentroidX    int
	Members      []int // pixel indices, row-major
}

// neighborOffsets8 is the full 3x3 structuring element (8-connectivity),
// excluding the center.
var neighborOffsets8 = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// LabelClusters performs 8-connected component labeling over validated,
// using a breadth-first flood fill over each unvisited true pixel. Cluster
// ids are "<frame_start_time:2006-01-02T150405Z>_<uuid4>"; centroids are
// the element-wise floor of the mean of member indices.
func LabelClusters(height, width int, validated []bool, frameStart time.Time) []Cluster {
	visited := make([]bool, len(validated))
	var clusters []Cluster

	idx := func(y, x int) int { return y*width + x }

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			start := idx(y, x)
			if !validated[start] || visited[start] {
				continue
			}

			queue := []int{start}
			visited[start] = true
			members := []int{start}

			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				cy, cx := cur/width, cur%width

				for _, off := range neighborOffsets8 {
					ny, nx := cy+off[0], cx+off[1]
					if ny < 0 || ny >= height || nx < 0 || nx >= width {
						continue
					}
					ni := idx(ny, nx)
					if validated[ni] && !visited[ni] {
						visited[ni] = true
						queue = append(queue, ni)
						members = append(members, ni)
					}
				}
			}

			sumY, sumX := 0, 0
			for _, m := range members {
				sumY += m / width
				sumX += m % width
			}
			centroidY := sumY / len(members)
			centroidX := sumX / len(members)

			id := fmt.Sprintf("%s_%s", frameStart.UTC().Format("2006-01-02T150405Z"), uuid.New().String())

			clusters = append(clusters, Cluster{
				ID:        id,
				CentroidY: centroidY,
				CentroidX: centroidX,
				Members:   members,
			})
		}
	}

	return clusters
}
