package game

import "golang.org/x/exp/rand"

var resourceCounts = []int{-8, -3, -1, 0, 1, 3, 8}

// resourceBands are cumulative percentile ceilings, one per entry of resourceCounts.
var resourceBands = []int{2, 8, 15, 40, 70, 94, 100}

type weatherBand struct {
	ceiling  int
	positive Weather
	negative Weather
}

var weatherBands = []weatherBand{
	{45, Nothing, Nothing},
	{55, Tailwind, Headwind},
	{65, TuckedAway, WideOpen},
	{75, ClearSkies, DenseFog},
	{85, CalmWaters, RoughSeas},
	{90, AmpleTime, RushJob},
	{94, FeedingFrenzy, Famine},
	{98, FullMoon, NewMoon},
	{100, NiceSprites, ScaryMonsters},
}

// Weather that stays hidden until a ship has sailed through it.
var visitedOnly = map[Weather]bool{
	Famine:        true,
	FeedingFrenzy: true,
	FullMoon:      true,
	NewMoon:       true,
}

type TileSummary struct {
	IsRevealed    bool         `json:"isRevealed"`
	IsVisited     bool         `json:"isVisited"`
	HasMine       bool         `json:"hasMine"`
	Weather       Weather      `json:"weather"`
	ResourceType  ResourceType `json:"resourceType"`
	ResourceCount int          `json:"resourceCount"`
}

type Tile struct {
	resourceType  ResourceType
	resourceCount int
	weather       Weather
	hasMine       bool
	isRevealed    bool
	isVisited     bool
}

func percent(rng *rand.Rand) int {
	return rng.Intn(100) + 1
}

func NewTile(rng *rand.Rand) *Tile {
	resourceType := ResourceType(rng.Intn(2))
	resourceRoll := percent(rng)
	positive := rng.Intn(2) == 1
	weatherRoll := percent(rng)

	return &Tile{
		resourceType:  resourceType,
		resourceCount: resourceCountFor(resourceRoll),
		weather:       weatherFor(weatherRoll, positive),
	}
}

func resourceCountFor(roll int) int {
	for i, ceiling := range resourceBands {
		if roll <= ceiling {
			return resourceCounts[i]
		}
	}
	return resourceCounts[len(resourceCounts)-1]
}

func weatherFor(roll int, positive bool) Weather {
	band := weatherBands[len(weatherBands)-1]
	for _, b := range weatherBands {
		if roll <= b.ceiling {
			band = b
			break
		}
	}
	if positive {
		return band.positive
	}
	return band.negative
}

func (t *Tile) IsRevealed() bool { return t.isRevealed }
func (t *Tile) IsVisited() bool  { return t.isVisited }
func (t *Tile) HasMine() bool    { return t.hasMine }

func (t *Tile) Reveal() {
	t.isRevealed = true
}

func (t *Tile) PlaceMine() {
	t.hasMine = true
}

// VisibleWeather is the weather an observer is allowed to see on this tile.
func (t *Tile) VisibleWeather() Weather {
	if visitedOnly[t.weather] {
		if t.isVisited {
			return t.weather
		}
		return Nothing
	}
	if t.isRevealed {
		return t.weather
	}
	return Nothing
}

func (t *Tile) Summary() TileSummary {
	return TileSummary{
		IsRevealed:    t.isRevealed,
		IsVisited:     t.isVisited,
		HasMine:       t.hasMine,
		Weather:       t.weather,
		ResourceType:  t.resourceType,
		ResourceCount: t.resourceCount,
	}
}

// MoveOverTile consumes the tile's payload and returns what it held before the crossing.
func (t *Tile) MoveOverTile() TileSummary {
	before := t.Summary()
	t.resourceCount = 0
	t.hasMine = false
	t.isVisited = true
	return before
}
