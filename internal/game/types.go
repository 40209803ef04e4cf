package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMineOffPath   = errors.New("mines may only be laid on tiles the ship just crossed")
	ErrEmptyPath     = errors.New("no coordinates given")
	ErrUnknownAction = errors.New("unknown action")
)

type Coordinate struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type ResourceType int

const (
	Food ResourceType = iota
	Pellets
)

func (r ResourceType) String() string {
	if r == Pellets {
		return "Pellets"
	}
	return "Food"
}

type Weather int

const (
	Nothing Weather = iota + 1
	Tailwind
	Headwind
	TuckedAway
	WideOpen
	ClearSkies
	DenseFog
	CalmWaters
	RoughSeas
	AmpleTime
	RushJob
	FeedingFrenzy
	Famine
	FullMoon
	NewMoon
	NiceSprites
	ScaryMonsters
)

var weatherNames = map[Weather]string{
	Nothing:       "Nothing",
	Tailwind:      "Tailwind",
	Headwind:      "Headwind",
	TuckedAway:    "TuckedAway",
	WideOpen:      "WideOpen",
	ClearSkies:    "ClearSkies",
	DenseFog:      "DenseFog",
	CalmWaters:    "CalmWaters",
	RoughSeas:     "RoughSeas",
	AmpleTime:     "AmpleTime",
	RushJob:       "RushJob",
	FeedingFrenzy: "FeedingFrenzy",
	Famine:        "Famine",
	FullMoon:      "FullMoon",
	NewMoon:       "NewMoon",
	NiceSprites:   "NiceSprites",
	ScaryMonsters: "ScaryMonsters",
}

func (w Weather) String() string {
	if name, ok := weatherNames[w]; ok {
		return name
	}
	return "Unknown"
}

// Rules holds the tunable numbers of a match.
type Rules struct {
	Rows         int `json:"rows" yaml:"rows"`
	Columns      int `json:"columns" yaml:"columns"`
	StartHP      int `json:"startHp" yaml:"start_hp"`
	StartFood    int `json:"startFood" yaml:"start_food"`
	StartPellets int `json:"startPellets" yaml:"start_pellets"`
	CannonDamage int `json:"cannonDamage" yaml:"cannon_damage"`
	MineDamage   int `json:"mineDamage" yaml:"mine_damage"`
}

func DefaultRules() Rules {
	return Rules{
		Rows:         7,
		Columns:      14,
		StartHP:      50,
		StartFood:    10,
		StartPellets: 10,
		CannonDamage: 10,
		MineDamage:   10,
	}
}

func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	// Two ships need distinct rows and columns.
	if r.Rows < 2 {
		r.Rows = d.Rows
	}
	if r.Columns < 2 {
		r.Columns = d.Columns
	}
	if r.StartHP <= 0 {
		r.StartHP = d.StartHP
	}
	if r.StartFood < 0 {
		r.StartFood = d.StartFood
	}
	if r.StartPellets < 0 {
		r.StartPellets = d.StartPellets
	}
	if r.CannonDamage < 0 {
		r.CannonDamage = d.CannonDamage
	}
	if r.MineDamage < 0 {
		r.MineDamage = d.MineDamage
	}
	return r
}

func (r ResourceType) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (w Weather) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (r *ResourceType) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "food":
		*r = Food
	case "pellets":
		*r = Pellets
	default:
		return fmt.Errorf("unknown resource %q", b)
	}
	return nil
}

func (w *Weather) UnmarshalText(b []byte) error {
	for k, name := range weatherNames {
		if strings.EqualFold(name, string(b)) {
			*w = k
			return nil
		}
	}
	return fmt.Errorf("unknown weather %q", b)
}
