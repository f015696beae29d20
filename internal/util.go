package internal

// NoParent marks the root of a parent chain.
const NoParent = -1

// ReconstructPath rebuilds the start-to-terminal sequence of indices by
// following parent links. The walk stops after limit links, so a corrupt chain
// cannot loop forever.
func ReconstructPath(parentOf func(index int) int, terminal int, limit int) []int {
	path := []int{terminal}
	current := terminal
	for steps := 0; steps < limit; steps++ {
		previous := parentOf(current)
		if previous == NoParent {
			break
		}
		path = append(path, previous)
		current = previous
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
