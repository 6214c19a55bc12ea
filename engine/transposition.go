package engine

import "unsafe"

const (
	// Bound flags. AlphaFlag marks an upper bound (search failed low),
	// BetaFlag a lower bound (failed high), ExactFlag a score from a
	// fully resolved window.
	AlphaFlag int8 = iota
	BetaFlag
	ExactFlag

	// In MB
	ttSizeMB    = 64
	clusterSize = 4
)

// TTEntry is one cached search result, tagged with the depth it was
// computed at and the bound type so it is only reused when sound.
type TTEntry struct {
	Hash  uint64
	Score int32
	Depth int8
	Flag  int8
}

// TransTable is a fixed-size clustered transposition table. Memory stays
// bounded for arbitrarily long sessions: within a cluster the shallowest
// entry is evicted when no better slot exists.
type TransTable struct {
	isInitialized bool
	entries       []TTEntry
	clusterCount  uint64
}

// TT is the single table driving the search. It is read and written only
// from the search goroutine.
var TT TransTable

func (tt *TransTable) init() {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	totalBytes := uint64(ttSizeMB) * 1024 * 1024
	clusterBytes := entrySize * clusterSize
	clusterCount := totalBytes / clusterBytes
	if clusterCount == 0 {
		clusterCount = 1
	}
	tt.clusterCount = clusterCount
	tt.entries = make([]TTEntry, tt.clusterCount*clusterSize)
	tt.isInitialized = true
}

// Clear drops all cached entries. Called at the start of a new game.
func (tt *TransTable) Clear() {
	tt.entries = nil
	tt.isInitialized = false
	tt.clusterCount = 0
}

// ProbeEntry looks up the entry for a position hash.
func (tt *TransTable) ProbeEntry(hash uint64) (*TTEntry, bool) {
	if tt.clusterCount == 0 {
		return nil, false
	}

	clusterIndex := hash % tt.clusterCount
	start := int(clusterIndex * clusterSize)
	for i := 0; i < clusterSize; i++ {
		next := &tt.entries[start+i]
		if next.Hash == hash {
			return next, true
		}
	}
	return nil, false
}

// UseEntry decides whether a probed entry settles the current search. The
// stored depth must cover the requested depth, and a bound is only
// conclusive when it already fails the window: an upper bound at or below
// alpha, a lower bound at or above beta, or an exact score.
func (tt *TransTable) UseEntry(entry *TTEntry, depth int, alpha, beta int32) (usable bool, score int32) {
	if entry == nil || entry.Depth < int8(depth) {
		return false, 0
	}
	switch entry.Flag {
	case ExactFlag:
		return true, entry.Score
	case AlphaFlag:
		if entry.Score <= alpha {
			return true, alpha
		}
	case BetaFlag:
		if entry.Score >= beta {
			return true, beta
		}
	}
	return false, 0
}

/*
Always-replace-shallowest within the cluster: prefer updating the same
hash, then an empty slot, then evict the entry with the least depth.
*/
func (tt *TransTable) StoreEntry(hash uint64, depth int8, score int32, flag int8) {
	if tt.clusterCount == 0 {
		return
	}

	clusterIndex := hash % tt.clusterCount
	base := int(clusterIndex * clusterSize)
	targetIdx := -1

	// Prefer updating an existing entry for the same position
	for i := 0; i < clusterSize; i++ {
		idx := base + i
		if tt.entries[idx].Hash == hash {
			targetIdx = idx
			break
		}
	}

	// Next look for an empty slot
	if targetIdx == -1 {
		for i := 0; i < clusterSize; i++ {
			idx := base + i
			if tt.entries[idx].Hash == 0 {
				targetIdx = idx
				break
			}
		}
	}

	// Otherwise replace the shallowest entry in the cluster
	if targetIdx == -1 {
		targetIdx = base
		minDepth := tt.entries[base].Depth
		for i := 1; i < clusterSize; i++ {
			idx := base + i
			if tt.entries[idx].Depth < minDepth {
				minDepth = tt.entries[idx].Depth
				targetIdx = idx
			}
		}
	}

	entry := &tt.entries[targetIdx]
	entry.Hash = hash
	entry.Depth = depth
	entry.Score = score
	entry.Flag = flag
}
