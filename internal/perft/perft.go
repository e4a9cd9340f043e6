// Package perft counts leaf nodes of the legal move tree, the standard
// correctness check for a move generator.
package perft

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/hashing"
	"github.com/lgbarn/chesscore/internal/worker"
)

// MoveCount is the number of leaves below one root move.
type MoveCount struct {
	Move  chess.Move
	Nodes uint64
}

// Options configures ParallelDivide.
type Options struct {
	Workers int                // Goroutines; values below one mean one
	Cache   *hashing.NodeCache // Optional, shared by all workers
}

// Perft returns the number of legal move sequences of exactly depth plies.
// The position is restored before returning.
func Perft(p *engine.Position, depth int) uint64 {
	return count(p, depth, nil)
}

// PerftCached is Perft with subtree counts memoised in cache.
//
// Entries are keyed on the position hash, which leaves out the clocks and
// the repetition history, so results are exact only while no fifty-move or
// repetition draw falls inside the searched horizon.
func PerftCached(p *engine.Position, depth int, cache *hashing.NodeCache) uint64 {
	return count(p, depth, cache)
}

func count(p *engine.Position, depth int, cache *hashing.NodeCache) uint64 {
	if depth == 0 {
		return 1
	}
	moves := p.AllLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	if cache != nil {
		if nodes, ok := cache.Get(p.Key(), depth); ok {
			return nodes
		}
	}

	var nodes uint64
	for _, m := range moves {
		if !p.MakeMove(m) {
			continue
		}
		nodes += count(p, depth-1, cache)
		p.UndoMove()
	}

	if cache != nil {
		cache.Put(p.Key(), depth, nodes)
	}
	return nodes
}

// Divide returns the leaf count below every root move, sorted by move string.
func Divide(p *engine.Position, depth int) []MoveCount {
	if depth < 1 {
		return nil
	}
	var out []MoveCount
	for _, m := range p.AllLegalMoves() {
		if !p.MakeMove(m) {
			continue
		}
		out = append(out, MoveCount{Move: m, Nodes: Perft(p, depth-1)})
		p.UndoMove()
	}
	sortCounts(out)
	return out
}

// ParallelDivide is Divide with the root moves fanned out over a worker pool.
// Each worker receives its own clone of p; p itself is never touched.
func ParallelDivide(p *engine.Position, depth int, opts Options) ([]MoveCount, error) {
	if depth < 1 {
		return nil, nil
	}
	moves := p.AllLegalMoves()
	if len(moves) == 0 {
		return nil, nil
	}

	process := func(item worker.WorkItem) worker.ProcessResult {
		res := worker.ProcessResult{Index: item.Index, Move: item.Move}
		if !item.Position.MakeMove(item.Move) {
			res.Error = errors.Wrapf(errors.ErrIllegalMove, "root move %s", item.Move.UCI())
			return res
		}
		res.Nodes = count(item.Position, item.Depth, opts.Cache)
		return res
	}

	pool := worker.NewPool(process,
		worker.WithWorkers(opts.Workers),
		worker.WithBufferSize(len(moves)))
	pool.Start()

	for i, m := range moves {
		pool.Submit(worker.WorkItem{Index: i, Position: p.Clone(), Move: m, Depth: depth - 1})
	}
	go pool.Close()

	out := make([]MoveCount, len(moves))
	var firstErr error
	for res := range pool.Results() {
		if res.Error != nil {
			if firstErr == nil {
				firstErr = res.Error
				pool.Stop()
			}
			continue
		}
		out[res.Index] = MoveCount{Move: res.Move, Nodes: res.Nodes}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	sortCounts(out)
	return out, nil
}

// Total sums the node counts of a divide.
func Total(counts []MoveCount) uint64 {
	var total uint64
	for _, c := range counts {
		total += c.Nodes
	}
	return total
}

// String renders one divide line the way perft tools print it.
func (c MoveCount) String() string {
	return fmt.Sprintf("%s: %d", c.Move.UCI(), c.Nodes)
}

func sortCounts(counts []MoveCount) {
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Move.UCI() < counts[j].Move.UCI()
	})
}
