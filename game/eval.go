package game

import "hex/utils"

// WinScore is returned for a connected board. Heuristic scores stay within
// ±HeuristicLimit so a won position always outranks any unfinished one.
const WinScore = 1000
const HeuristicLimit = WinScore / 2

// Per-stone weights of the positional heuristic.
const (
	MaterialWeight   = 1
	EdgeWeight       = 2
	ConnectionWeight = 1
)

// Heuristic scores one player's stones with no regard to the opponent.
type Heuristic func(b *Board, player CellState) int

// Evaluator combines a connectivity analyzer with a heuristic. The terminal
// check always runs first.
func Evaluator(connected Connectivity, heuristic Heuristic) Evaluate {
	return func(b *Board, player CellState) int {
		if connected(b, player) {
			return WinScore
		}
		opponent := Opponent(player)
		if connected(b, opponent) {
			return -WinScore
		}
		score := heuristic(b, player) - heuristic(b, opponent)
		return max(-HeuristicLimit, min(HeuristicLimit, score))
	}
}

// EvaluatePosition is the default evaluator: material, edge affinity,
// centrality and adjacency between own stones.
var EvaluatePosition = Evaluator(HasConnection, PositionScore)

// EvaluateMaterial only counts stones beyond the terminal check.
var EvaluateMaterial = Evaluator(HasConnection, MaterialScore)

func MaterialScore(b *Board, player CellState) int {
	return MaterialWeight * b.Count(player)
}

// PositionScore awards each stone of player:
//   - MaterialWeight for existing,
//   - EdgeWeight when it sits on one of player's two target edges,
//   - (N - manhattan distance to center) / 2 for centrality,
//   - ConnectionWeight per adjacent stone of the same player.
func PositionScore(b *Board, player CellState) int {
	n := b.size
	center := n / 2
	score := 0
	for idx, state := range b.cells {
		if state != player {
			continue
		}
		row, col := idx/n, idx%n
		score += MaterialWeight
		if onStartEdge(player, row, col) || onGoalEdge(player, n, row, col) {
			score += EdgeWeight
		}
		score += (n - utils.Abs(row-center) - utils.Abs(col-center)) / 2
		for _, d := range Directions {
			if b.Get(row+d[0], col+d[1]) == player {
				score += ConnectionWeight
			}
		}
	}
	return score
}

// CenterDistance is the manhattan distance of m from the center cell.
func CenterDistance(size int, m Move) int {
	center := size / 2
	return utils.Abs(m.Row-center) + utils.Abs(m.Col-center)
}

// ChebyshevDistance is the king-move distance of m from the center cell.
func ChebyshevDistance(size int, m Move) int {
	center := size / 2
	return max(utils.Abs(m.Row-center), utils.Abs(m.Col-center))
}
