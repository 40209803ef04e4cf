package game

// Sunk reports which ship, if any, has run out of hit points. The player ship
// is checked first.
func (m *Match) Sunk() (Side, bool) {
	for _, ship := range []*Ship{m.player, m.ai} {
		if ship.IsSunk() {
			return ship.Side(), true
		}
	}
	return SidePlayer, false
}

// Snapshot is everything about a match an observer is allowed to see.
type Snapshot struct {
	ID               string          `json:"id"`
	Rows             int             `json:"rows"`
	Columns          int             `json:"columns"`
	Board            [][]*TileView   `json:"board"`
	PlayerShip       ShipSummary     `json:"playerShip"`
	AIShip           ShipSummary     `json:"aiShip"`
	CurrentTurn      Role            `json:"currentTurn"`
	TurnRotation     []Role          `json:"turnRotation"`
	Classes          map[Role]string `json:"classes"`
	ClassToBuff      Role            `json:"classToBuff"`
	ResourceToReduce Reduction       `json:"resourceToReduce"`
	TilesRevealed    []Coordinate    `json:"tilesRevealed"`
	LastTilesMoved   []Coordinate    `json:"lastTilesMoved"`
	LastDetection    string          `json:"lastDetection,omitempty"`
}

func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		ID:               m.id,
		Rows:             m.board.Rows(),
		Columns:          m.board.Columns(),
		Board:            m.board.GetRevealedBoard(m.player.Location(), m.ai.Location()),
		PlayerShip:       m.player.Summary(),
		AIShip:           m.ai.Summary(),
		CurrentTurn:      m.currentTurn,
		TurnRotation:     m.TurnRotation(),
		Classes:          m.GiveClassesForGame(),
		ClassToBuff:      m.classToBuff,
		ResourceToReduce: m.resourceToReduce,
		TilesRevealed:    append([]Coordinate{}, m.tilesRevealed...),
		LastTilesMoved:   append([]Coordinate{}, m.lastTilesMoved...),
		LastDetection:    m.lastDetection,
	}
}

// Survey is the bosun's read on where resources are richest right now.
type Survey struct {
	MostFood    Line `json:"mostFood"`
	MostPellets Line `json:"mostPellets"`
}

func (m *Match) Survey() Survey {
	return Survey{
		MostFood:    m.board.MostFood(),
		MostPellets: m.board.MostPellets(),
	}
}
