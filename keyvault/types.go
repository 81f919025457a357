package keyvault

import (
	"errors"

	"github.com/katalvlaran/lvpuzzle/gridgraph"
)

// MaxRobots is the largest number of entrances a vault may have.
const MaxRobots = 8

// Sentinel errors for vault parsing and search.
var (
	// ErrNoEntrance indicates a vault without any '@' cell.
	ErrNoEntrance = errors.New("keyvault: vault has no entrance")
	// ErrTooManyRobots indicates more than MaxRobots entrances.
	ErrTooManyRobots = errors.New("keyvault: too many entrances")
	// ErrDuplicateKey indicates the same key letter in two cells.
	ErrDuplicateKey = errors.New("keyvault: duplicate key")
	// ErrInvalidCell indicates a byte outside the vault alphabet.
	ErrInvalidCell = errors.New("keyvault: invalid cell")
	// ErrSplitEntrance indicates a vault that cannot be split into four.
	ErrSplitEntrance = errors.New("keyvault: entrance cannot be split")
	// ErrUnreachableKey indicates a key walled off from every entrance.
	ErrUnreachableKey = errors.New("keyvault: key is unreachable from every entrance")
	// ErrNoPath indicates that doors deadlock every collection order.
	ErrNoPath = errors.New("keyvault: no order of moves collects every key")
)

// Vault is a parsed maze. It is immutable after Parse or Split.
type Vault struct {
	grid      *gridgraph.GridGraph
	entrances []int
	keys      [26]int // cell of key 'a'+i, or -1
	all       uint32  // bit i set for every key 'a'+i present
}

// Plan is the outcome of a collection search.
type Plan struct {
	// Steps is the total number of moves across all robots.
	Steps int
	// Order lists the keys in the order they are collected.
	Order string
}

// state is one outer-search node. Unused robot slots hold -1.
type state struct {
	robots [MaxRobots]int32
	held   uint32
}

// hop is one reachable uncollected key.
type hop struct {
	cell int
	key  int
	dist int
}

// scanKey memoizes reachability by starting cell and held keys.
type scanKey struct {
	cell int32
	held uint32
}
