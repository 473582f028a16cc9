// Package statespace enumerates every configuration reachable from an initial
// puzzle configuration by breadth-first search, and answers reachability,
// shortest-path and best-score queries over the result.
//
// The puzzle itself is opaque: anything implementing Configuration can be
// explored. Two preconditions are the caller's responsibility and are not
// detected here:
//   - Key must be consistent with equality (equal configurations produce
//     equal keys, distinct ones distinct keys), otherwise deduplication breaks.
//   - The reachable space must be finite, otherwise construction never returns.
//
// A Space is owned by a single goroutine. Queries during Rebuild are undefined.
package statespace

import (
	"errors"
	"iter"
	"slices"
	"time"

	"github.com/charmbracelet/log"
)

// Sentinel errors.
var (
	// ErrUnreachable is returned when a state is not in the explored space.
	ErrUnreachable = errors.New("statespace: state not reachable")

	// ErrBadMove is returned when a move string cannot be parsed.
	ErrBadMove = errors.New("statespace: invalid move")
)

// Configuration is the capability set the search needs from a puzzle.
// Shift methods mutate the receiver and must be deterministic.
type Configuration[C any] interface {
	Copy() C
	ShiftUp()
	ShiftDown()
	ShiftLeft()
	ShiftRight()
	Score() int
	Key() string
}

// record is the visited-map entry for one configuration.
// The initial configuration has root set and no predecessor.
type record[C any] struct {
	state  C
	root   bool
	parent string // key of the predecessor
	move   Move   // move applied to the predecessor
	depth  int
}

// Space is the fully enumerated state space of one initial configuration.
type Space[C Configuration[C]] struct {
	opts options

	visited   map[string]*record[C]
	initial   C
	count     int
	bestScore int
	bestKey   string
	maxDepth  int
	elapsed   time.Duration
}

// Summary is a snapshot of the headline results of a build.
type Summary struct {
	States    int
	BestScore int
	BestMoves []Move
	MaxDepth  int
	Elapsed   time.Duration
}

// New builds the state space reachable from initial.
// initial is copied; later changes to it do not affect the Space.
func New[C Configuration[C]](initial C, opts ...Option) *Space[C] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Space[C]{opts: o}
	s.Rebuild(initial)
	return s
}

// Rebuild discards everything and enumerates the space of a new initial
// configuration. The result is the same as calling New.
func (s *Space[C]) Rebuild(initial C) {
	s.visited = make(map[string]*record[C])
	s.initial = initial.Copy()
	s.count = 0
	s.bestScore = 0
	s.bestKey = s.initial.Key()
	s.maxDepth = 0

	start := time.Now()
	s.logDebug("building state space", "initial", s.bestKey)

	s.search()

	s.elapsed = time.Since(start)
	s.logDebug("state space built",
		"states", s.count,
		"best_score", s.bestScore,
		"max_depth", s.maxDepth,
		"elapsed", s.elapsed,
	)
}

// search runs the BFS from s.initial.
func (s *Space[C]) search() {
	var frontier Queue[*record[C]]

	root := &record[C]{state: s.initial.Copy(), root: true}
	s.visited[s.initial.Key()] = root
	s.count = 1
	frontier.Enqueue(root)

	for {
		cur, ok := frontier.Dequeue()
		if !ok {
			break
		}

		// Strict > keeps the earliest (shallowest) state on ties
		if score := cur.state.Score(); score > s.bestScore {
			s.bestScore = score
			s.bestKey = cur.state.Key()
		}

		curKey := cur.state.Key()
		for _, m := range Moves {
			next := Apply(cur.state, m)
			key := next.Key()
			if _, seen := s.visited[key]; seen {
				continue
			}

			rec := &record[C]{
				state:  next,
				parent: curKey,
				move:   m,
				depth:  cur.depth + 1,
			}
			s.visited[key] = rec
			s.count++
			if rec.depth > s.maxDepth {
				s.maxDepth = rec.depth
			}
			s.opts.onDiscover(rec.depth, s.count)
			frontier.Enqueue(rec)
		}
	}
}

// Reachable reports whether state is in the space.
func (s *Space[C]) Reachable(state C) bool {
	_, ok := s.visited[state.Key()]
	return ok
}

// MovesToReach returns the shortest move sequence from the initial
// configuration to target, in play order. The initial configuration yields
// an empty, non-nil slice. Unknown targets yield ErrUnreachable.
func (s *Space[C]) MovesToReach(target C) ([]Move, error) {
	return s.pathTo(target.Key())
}

func (s *Space[C]) pathTo(key string) ([]Move, error) {
	rec, ok := s.visited[key]
	if !ok {
		return nil, ErrUnreachable
	}

	moves := make([]Move, 0, rec.depth)
	for !rec.root {
		moves = append(moves, rec.move)
		rec = s.visited[rec.parent]
	}
	slices.Reverse(moves)
	return moves, nil
}

// BestScore returns the highest score of any reachable configuration,
// or 0 if none scores above 0.
func (s *Space[C]) BestScore() int {
	return s.bestScore
}

// BestState returns a copy of the first configuration, in BFS order,
// that reached BestScore.
func (s *Space[C]) BestState() C {
	return s.visited[s.bestKey].state.Copy()
}

// BestMoves returns the shortest move sequence reaching BestState.
func (s *Space[C]) BestMoves() []Move {
	moves, _ := s.pathTo(s.bestKey)
	return moves
}

// StateCount returns the number of distinct configurations, initial included.
func (s *Space[C]) StateCount() int {
	return s.count
}

// Initial returns a copy of the configuration the space was built from.
func (s *Space[C]) Initial() C {
	return s.initial.Copy()
}

// Depth returns the BFS distance of state from the initial configuration.
func (s *Space[C]) Depth(state C) (int, bool) {
	rec, ok := s.visited[state.Key()]
	if !ok {
		return 0, false
	}
	return rec.depth, true
}

// MaxDepth returns the largest BFS distance of any configuration.
func (s *Space[C]) MaxDepth() int {
	return s.maxDepth
}

// States yields a copy of every configuration in the space, in no
// particular order. The sequence can be ranged over repeatedly.
func (s *Space[C]) States() iter.Seq[C] {
	return func(yield func(C) bool) {
		for _, rec := range s.visited {
			if !yield(rec.state.Copy()) {
				return
			}
		}
	}
}

// Summary returns the headline results of the last build.
func (s *Space[C]) Summary() Summary {
	return Summary{
		States:    s.count,
		BestScore: s.bestScore,
		BestMoves: s.BestMoves(),
		MaxDepth:  s.maxDepth,
		Elapsed:   s.elapsed,
	}
}

func (s *Space[C]) logDebug(msg string, kv ...any) {
	if s.opts.logger != nil {
		s.opts.logger.Debug(msg, kv...)
	}
}

// options holds the tunables set by Option functions.
type options struct {
	logger     *log.Logger
	onDiscover func(depth, count int)
}

func defaultOptions() options {
	return options{
		onDiscover: func(int, int) {},
	}
}

// Option configures a Space.
type Option func(*options)

// WithLogger enables debug logging of each build.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithOnDiscover registers a hook called for every newly discovered
// configuration with its depth and the running state count.
func WithOnDiscover(fn func(depth, count int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onDiscover = fn
		}
	}
}
