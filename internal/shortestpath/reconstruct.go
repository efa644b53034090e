package shortestpath

import "github.com/vanshika/finnet/internal/network"

// ReconstructPath walks predecessor links back from target until it reaches a
// vertex without a predecessor, then reverses the walk.
//
// The walk must end at source. If it does not (target unreachable, target not
// in the map, or a malformed map containing a cycle) the result is nil, so a
// bare [target] is never mistaken for a valid path. For target == source the
// result is [source].
func ReconstructPath(pred PredecessorMap, source, target string) network.Path {
	if _, ok := pred[target]; !ok {
		return nil
	}

	var reversed network.Path
	current := target
	for steps := 0; current != ""; steps++ {
		if steps > len(pred) {
			return nil
		}
		reversed = append(reversed, current)
		current = pred[current]
	}
	if reversed[len(reversed)-1] != source {
		return nil
	}

	path := make(network.Path, len(reversed))
	for i, label := range reversed {
		path[len(reversed)-1-i] = label
	}
	return path
}
