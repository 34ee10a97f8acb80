package searcher

import (
	"errors"
	"fmt"

	"hex/game"
)

// Backend names accepted by NewBackend.
const (
	BFSBackend       = "bfs"
	UnionFindBackend = "unionfind"
)

var ErrUnknownBackend = errors.New("unknown backend")

// NewBackend builds an AlphaBeta whose win check is the named implementation.
// Every backend produces the same moves for the same random source.
func NewBackend(name string, options ...Option) (*AlphaBeta, error) {
	var connected game.Connectivity
	switch name {
	case BFSBackend, "":
		connected = game.HasConnection
	case UnionFindBackend:
		connected = game.UnionFindConnection
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownBackend)
	}
	return NewAlphaBeta(append([]Option{WithConnectivity(connected)}, options...)...), nil
}
