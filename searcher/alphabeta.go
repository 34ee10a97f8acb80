package searcher

import (
	"math"
	"sort"
	"time"

	"hex/experiments/metrics"
	"hex/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(ab *AlphaBeta)

// AlphaBeta is the reference Backend: depth-limited minimax with alpha-beta
// pruning over copy-on-write child boards. It keeps a random source and a
// metrics collector, so one instance must not be searched from two goroutines
// at once.
type AlphaBeta struct {
	connected game.Connectivity
	evaluate  game.Evaluate
	random    Random
	opening   *Opening
	tactical  bool
	adaptive  bool
	metrics   metrics.Collector
}

// WithConnectivity selects the win-check implementation. Unless an evaluation
// function is also given, the default evaluator is rebuilt on top of it.
func WithConnectivity(connected game.Connectivity) Option {
	return func(ab *AlphaBeta) {
		if connected != nil {
			ab.connected = connected
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

// WithRandom pins the tie-break source, e.g. to a seeded generator in tests.
func WithRandom(random Random) Option {
	return func(ab *AlphaBeta) {
		if random != nil {
			ab.random = random
		}
	}
}

// WithOpening replaces the opening policy; nil disables it and an empty board
// is searched like any other.
func WithOpening(opening *Opening) Option {
	return func(ab *AlphaBeta) {
		ab.opening = opening
	}
}

// WithoutTacticalChecks skips the immediate win and block scan at the root.
func WithoutTacticalChecks() Option {
	return func(ab *AlphaBeta) {
		ab.tactical = false
	}
}

// WithFixedDepth searches exactly the requested depth regardless of board size.
func WithFixedDepth() Option {
	return func(ab *AlphaBeta) {
		ab.adaptive = false
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		connected: game.HasConnection,
		opening:   DefaultOpening(),
		tactical:  true,
		adaptive:  true,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	if ab.random == nil {
		ab.random = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if ab.evaluate == nil {
		ab.evaluate = game.Evaluator(ab.connected, game.PositionScore)
	}
	return ab
}

func (ab *AlphaBeta) CheckWin(b *game.Board, player game.CellState) bool {
	return ab.connected(b, player)
}

func (ab *AlphaBeta) Evaluate(b *game.Board, player game.CellState) int {
	return ab.evaluate(b, player)
}

// FindBestMove returns the chosen move for player, or game.NoMove when the
// board is full or already decided.
func (ab *AlphaBeta) FindBestMove(b *game.Board, player game.CellState, depth int) game.Move {
	move, _ := ab.Search(b, player, depth)
	return move
}

// Search is FindBestMove that also reports how the move was found.
func (ab *AlphaBeta) Search(b *game.Board, player game.CellState, depth int) (game.Move, metrics.SearchMetric) {
	ab.metrics.Start()
	move, source := ab.search(b, player, depth)
	metric := ab.metrics.Complete()
	metric.Source = source
	return move, metric
}

func (ab *AlphaBeta) search(b *game.Board, player game.CellState, depth int) (game.Move, string) {
	if b == nil || (player != game.PlayerA && player != game.PlayerB) {
		return game.NoMove, metrics.SourceNone
	}
	if b.IsFull() || ab.connected(b, game.PlayerA) || ab.connected(b, game.PlayerB) {
		log.Debug().Str("player", player.String()).Msg("no move: board is full or decided")
		return game.NoMove, metrics.SourceNone
	}
	if ab.opening != nil && b.IsEmpty() {
		return ab.opening.FirstMove(b.Size()), metrics.SourceOpening
	}

	order := ab.moveOrder(b.Size())

	if ab.tactical {
		if m, ok := ab.winningMove(b, order, player); ok {
			return m, metrics.SourceWin
		}
		if m, ok := ab.winningMove(b, order, game.Opponent(player)); ok {
			return m, metrics.SourceBlock
		}
	}

	if ab.adaptive {
		depth = AdaptDepth(b.Size(), depth)
	} else {
		depth = max(1, depth)
	}
	ab.metrics.SetDepth(depth)

	best := math.MinInt
	alpha, beta := math.MinInt, math.MaxInt
	var bestMoves []game.Move
	for _, m := range order {
		if !b.IsLegal(m) {
			continue
		}
		value := ab.alphaBeta(b.With(m, player), order, depth-1, alpha, beta, false, player)
		switch {
		case value > best:
			best = value
			bestMoves = []game.Move{m}
			// One below best keeps later equal scores exact, so ties are real ties.
			alpha = max(alpha, best-1)
		case value == best:
			bestMoves = append(bestMoves, m)
		}
	}

	choice := bestMoves[ab.random.Intn(len(bestMoves))]
	log.Debug().
		Str("player", player.String()).
		Int("depth", depth).
		Int("score", best).
		Int("ties", len(bestMoves)).
		Str("move", game.FormatMove(choice)).
		Msg("search complete")
	return choice, metrics.SourceSearch
}

// alphaBeta returns the fail-soft minimax value of b from root's perspective.
// order is the root's move ordering, reused at every node.
func (ab *AlphaBeta) alphaBeta(b *game.Board, order []game.Move, depth, alpha, beta int, maximizing bool, root game.CellState) int {
	ab.metrics.AddNode()

	if depth == 0 {
		return ab.leaf(b, root, depth)
	}
	if ab.connected(b, root) || ab.connected(b, game.Opponent(root)) {
		return ab.leaf(b, root, depth)
	}
	mover := root
	if !maximizing {
		mover = game.Opponent(root)
	}

	value := math.MaxInt
	if maximizing {
		value = math.MinInt
	}
	expanded := false
	for _, m := range order {
		if !b.IsLegal(m) {
			continue
		}
		expanded = true
		score := ab.alphaBeta(b.With(m, mover), order, depth-1, alpha, beta, !maximizing, root)
		if maximizing {
			value = max(value, score)
			alpha = max(alpha, value)
		} else {
			value = min(value, score)
			beta = min(beta, value)
		}
		if beta <= alpha {
			ab.metrics.AddCutoff()
			break
		}
	}
	if !expanded { // Full board
		return ab.leaf(b, root, depth)
	}
	return value
}

// leaf evaluates a terminal node. Decided positions are shifted by the
// remaining depth so that quicker wins and slower losses score higher.
func (ab *AlphaBeta) leaf(b *game.Board, root game.CellState, depth int) int {
	ab.metrics.AddLeaf()
	score := ab.evaluate(b, root)
	switch {
	case score >= game.WinScore:
		return score + depth
	case score <= -game.WinScore:
		return score - depth
	default:
		return score
	}
}

// winningMove finds a cell that completes player's connection.
func (ab *AlphaBeta) winningMove(b *game.Board, order []game.Move, player game.CellState) (game.Move, bool) {
	for _, m := range order {
		if b.IsLegal(m) && ab.connected(b.With(m, player), player) {
			return m, true
		}
	}
	return game.NoMove, false
}

// moveOrder shuffles every cell, then stable-sorts by distance to the center,
// so equally central cells are tried in random order.
func (ab *AlphaBeta) moveOrder(size int) []game.Move {
	moves := allCells(size)
	ab.random.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
	sortByCenter(size, moves)
	return moves
}

func allCells(size int) []game.Move {
	moves := make([]game.Move, 0, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			moves = append(moves, game.Move{Row: r, Col: c})
		}
	}
	return moves
}

func sortByCenter(size int, moves []game.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return game.CenterDistance(size, moves[i]) < game.CenterDistance(size, moves[j])
	})
}
