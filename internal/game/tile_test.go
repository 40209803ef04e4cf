package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTile(t *testing.T) {
	t.Run("resource counts come from the fixed set", func(t *testing.T) {
		rng := seeded(42)
		seen := map[int]bool{}
		for i := 0; i < 5000; i++ {
			tile := NewTile(rng)
			require.Contains(t, resourceCounts, tile.resourceCount)
			require.Contains(t, weatherNames, tile.weather)
			require.False(t, tile.hasMine)
			require.False(t, tile.isRevealed)
			require.False(t, tile.isVisited)
			seen[tile.resourceCount] = true
		}
		require.Len(t, seen, len(resourceCounts), "every bucket should turn up in 5000 rolls")
	})

	t.Run("zero is the most common count", func(t *testing.T) {
		rng := seeded(7)
		counts := map[int]int{}
		for i := 0; i < 5000; i++ {
			counts[NewTile(rng).resourceCount]++
		}
		require.Greater(t, counts[0], counts[-8])
		require.Greater(t, counts[0], counts[8])
		require.Greater(t, counts[-1], counts[-8])
	})
}

func TestResourceCountFor(t *testing.T) {
	cases := map[int]int{1: -8, 2: -8, 3: -3, 8: -3, 9: -1, 15: -1, 16: 0, 40: 0, 41: 1, 70: 1, 71: 3, 94: 3, 95: 8, 100: 8}
	for roll, want := range cases {
		require.Equal(t, want, resourceCountFor(roll), "roll %d", roll)
	}
}

func TestWeatherFor(t *testing.T) {
	require.Equal(t, Nothing, weatherFor(1, true))
	require.Equal(t, Nothing, weatherFor(45, false))
	require.Equal(t, Tailwind, weatherFor(46, true))
	require.Equal(t, Headwind, weatherFor(55, false))
	require.Equal(t, FeedingFrenzy, weatherFor(92, true))
	require.Equal(t, Famine, weatherFor(92, false))
	require.Equal(t, FullMoon, weatherFor(98, true))
	require.Equal(t, NewMoon, weatherFor(96, false))
	require.Equal(t, ScaryMonsters, weatherFor(100, false))
}

func TestMoveOverTile(t *testing.T) {
	tile := &Tile{resourceType: Food, resourceCount: 3, weather: Tailwind, hasMine: true}

	first := tile.MoveOverTile()
	require.Equal(t, 3, first.ResourceCount)
	require.True(t, first.HasMine)
	require.False(t, first.IsVisited)
	require.Equal(t, Tailwind, first.Weather)

	require.Equal(t, 0, tile.resourceCount)
	require.False(t, tile.hasMine)
	require.True(t, tile.isVisited)

	second := tile.MoveOverTile()
	require.Equal(t, 0, second.ResourceCount)
	require.False(t, second.HasMine)
	require.Equal(t, Tailwind, second.Weather, "weather is never consumed")
}

func TestVisibleWeather(t *testing.T) {
	for _, w := range []Weather{Famine, FeedingFrenzy, FullMoon, NewMoon} {
		t.Run(w.String()+" waits for a visit", func(t *testing.T) {
			tile := &Tile{weather: w}
			require.Equal(t, Nothing, tile.VisibleWeather())

			tile.Reveal()
			require.Equal(t, Nothing, tile.VisibleWeather(), "revealing is not enough")

			tile.MoveOverTile()
			require.Equal(t, w, tile.VisibleWeather())
		})
	}

	t.Run("visited but unrevealed", func(t *testing.T) {
		tile := &Tile{weather: FullMoon}
		tile.MoveOverTile()
		require.Equal(t, FullMoon, tile.VisibleWeather())
	})

	t.Run("other weather waits for a reveal", func(t *testing.T) {
		tile := &Tile{weather: Headwind}
		require.Equal(t, Nothing, tile.VisibleWeather())
		tile.MoveOverTile()
		require.Equal(t, Nothing, tile.VisibleWeather())
		tile.Reveal()
		require.Equal(t, Headwind, tile.VisibleWeather())
	})
}
