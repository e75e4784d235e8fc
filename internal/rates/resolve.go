package rates

import "github.com/pkordes/freight-rates/backend/internal/domain"

// Closure is the result of expanding a region into itself and all of its
// descendants.
type Closure struct {
	// Slugs lists the root first, then descendants in breadth-first order.
	Slugs []string

	// Revisits lists slugs that were reached a second time during the walk.
	// A non-empty value means the parent chain in the data is cyclic; the walk
	// still terminates because visited regions are never expanded twice.
	Revisits []string
}

// RegionClosure walks the region forest breadth-first from root and returns
// root together with every region beneath it, at any depth.
//
// The walk is iterative and tracks visited slugs, so a corrupted, cyclic
// parent chain cannot make it loop or recurse without bound.
func RegionClosure(root string, regions []domain.Region) Closure {
	children := make(map[string][]string, len(regions))
	for _, r := range regions {
		if r.ParentSlug == "" {
			continue
		}
		children[r.ParentSlug] = append(children[r.ParentSlug], r.Slug)
	}

	var c Closure
	visited := map[string]bool{root: true}
	queue := []string{root}
	for len(queue) > 0 {
		slug := queue[0]
		queue = queue[1:]
		c.Slugs = append(c.Slugs, slug)

		for _, child := range children[slug] {
			if visited[child] {
				c.Revisits = append(c.Revisits, child)
				continue
			}
			visited[child] = true
			queue = append(queue, child)
		}
	}
	return c
}
