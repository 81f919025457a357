package keyvault_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/gridgraph"
	"github.com/katalvlaran/lvpuzzle/keyvault"
)

var singleRobot = []struct {
	name  string
	maze  string
	steps int
}{
	{"Corridor", `
#########
#b.A.@.a#
#########`, 8},
	{"DoorChain", `
########################
#f.D.E.e.C.b.A.@.a.B.c.#
######################.#
#d.....................#
########################`, 86},
	{"Detour", `
########################
#...............b.C.D.f#
#.######################
#.....@.a.B.c.d.A.e.F.g#
########################`, 132},
	{"ManyOrders", `
#################
#i.G..c...e..H.p#
########.########
#j.A..b...f..D.o#
########@########
#k.E..a...g..B.n#
########.########
#l.F..d...h..C.m#
#################`, 136},
	{"Pockets", `
########################
#@..............ac.GI.b#
###d#e#f################
###A#B#C################
###g#h#i################
########################`, 81},
}

var fourRobots = []struct {
	name  string
	maze  string
	steps int
}{
	{"Quadrants", `
###############
#d.ABC.#.....a#
######@#@######
###############
######@#@######
#b.....#.....c#
###############`, 24},
	{"CrossDoors", `
#############
#DcBa.#.GhKl#
#.###@#@#I###
#e#d#####j#k#
###C#@#@###J#
#fEbA.#.FgHi#
#############`, 32},
	{"Waiting", `
#############
#g#f.D#..h#l#
#F###e#E###.#
#dCba@#@BcIJ#
#############
#nK.L@#@G...#
#M###N#H###.#
#o#m..#i#jk.#
#############`, 72},
}

// TestShortestCollection_SingleRobot covers one-entrance vaults.
func TestShortestCollection_SingleRobot(t *testing.T) {
	for _, tc := range singleRobot {
		t.Run(tc.name, func(t *testing.T) {
			v, err := keyvault.Parse(tc.maze)
			require.NoError(t, err)
			assert.Equal(t, 1, v.Robots())

			got, err := v.ShortestCollection(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.steps, got)
		})
	}
}

// TestShortestCollection_FourRobots covers vaults that already have four entrances.
func TestShortestCollection_FourRobots(t *testing.T) {
	for _, tc := range fourRobots {
		t.Run(tc.name, func(t *testing.T) {
			v, err := keyvault.Parse(tc.maze)
			require.NoError(t, err)
			assert.Equal(t, 4, v.Robots())

			got, err := v.ShortestCollection(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.steps, got)
		})
	}
}

// TestSplit rewrites the 3x3 block around the entrance and solves the result.
func TestSplit(t *testing.T) {
	v, err := keyvault.Parse(`
#######
#a.#Cd#
##...##
##.@.##
##...##
#cB#Ab#
#######`)
	require.NoError(t, err)

	split, err := v.Split()
	require.NoError(t, err)
	assert.Equal(t, 4, split.Robots())
	assert.Equal(t, 1, v.Robots(), "receiver must not change")
	assert.Equal(t, "#######\n#a.#Cd#\n##@#@##\n#######\n##@#@##\n#cB#Ab#\n#######\n", split.String())

	got, err := split.ShortestCollection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

// TestSplit_Errors rejects vaults whose entrance cannot be split.
func TestSplit_Errors(t *testing.T) {
	cases := map[string]string{
		"TwoEntrances": "#####\n#@.@#\n#####",
		"Border":       "@..\n...\n...",
		"Walled":       "#########\n#b.A.@.a#\n#########",
	}
	for name, maze := range cases {
		t.Run(name, func(t *testing.T) {
			v, err := keyvault.Parse(maze)
			require.NoError(t, err)
			_, err = v.Split()
			assert.ErrorIs(t, err, keyvault.ErrSplitEntrance)
		})
	}
}

// TestPlan reports the collection order along with the cost.
func TestPlan(t *testing.T) {
	v, err := keyvault.Parse(singleRobot[1].maze)
	require.NoError(t, err)

	p, err := v.Plan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &keyvault.Plan{Steps: 86, Order: "abcdef"}, p)
	assert.Equal(t, "abcdef", v.Keys())
}

// TestShortestCollection_NoKeys is already complete.
func TestShortestCollection_NoKeys(t *testing.T) {
	v, err := keyvault.Parse("#####\n#@..#\n#####")
	require.NoError(t, err)

	got, err := v.ShortestCollection(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got)
}

// TestShortestCollection_Unreachable separates walled-off keys from door deadlocks.
func TestShortestCollection_Unreachable(t *testing.T) {
	v, err := keyvault.Parse("#####\n#@#a#\n#####")
	require.NoError(t, err)
	_, err = v.ShortestCollection(context.Background())
	assert.ErrorIs(t, err, keyvault.ErrUnreachableKey)

	v, err = keyvault.Parse("#######\n#@.A.a#\n#######")
	require.NoError(t, err)
	_, err = v.ShortestCollection(context.Background())
	assert.ErrorIs(t, err, keyvault.ErrNoPath)
}

// TestShortestCollection_DoorWithoutKey walks through doors whose key is
// not in the vault.
func TestShortestCollection_DoorWithoutKey(t *testing.T) {
	v, err := keyvault.Parse("#####\n#@Ba#\n#####")
	require.NoError(t, err)

	p, err := v.Plan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, p.Steps)
	assert.Equal(t, "a", p.Order)
}

// TestShortestCollection_Cancelled stops on a done context.
func TestShortestCollection_Cancelled(t *testing.T) {
	v, err := keyvault.Parse(singleRobot[3].maze)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = v.ShortestCollection(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestParse_Errors rejects malformed vaults.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		maze string
		err  error
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid},
		{"Ragged", "#@#\n##", gridgraph.ErrNonRectangular},
		{"NoEntrance", "#..#", keyvault.ErrNoEntrance},
		{"InvalidCell", "#@?#", keyvault.ErrInvalidCell},
		{"DuplicateKey", "#a@a#", keyvault.ErrDuplicateKey},
		{"TooManyRobots", "#@@@@@@@@@#", keyvault.ErrTooManyRobots},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := keyvault.Parse(tc.maze)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
