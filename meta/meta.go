// meta/meta.go
package meta

// DEFAULT_BOARD_SIZE is the side length of a standard Hex board.
const DEFAULT_BOARD_SIZE = 11

// MIN_BOARD_SIZE and MAX_BOARD_SIZE bound the supported side lengths.
// Columns are labelled with single letters, hence 26.
const MIN_BOARD_SIZE = 2
const MAX_BOARD_SIZE = 26

// Search depths per difficulty level.
const EASY_DEPTH = 1
const MEDIUM_DEPTH = 2
const HARD_DEPTH = 3

// DEFAULT_GOROUTINES defines the number of concurrent tournament games.
const DEFAULT_GOROUTINES = 4
