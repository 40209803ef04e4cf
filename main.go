package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/rand"

	"yonkadingo/internal/config"
	"yonkadingo/internal/game"
)

func main() {
	app := &cli.App{
		Name:  "yonkadingo",
		Usage: "play one match at the terminal, all five classes on one keyboard",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "rows", Value: game.DefaultRules().Rows, Usage: "board rows"},
			&cli.IntFlag{Name: "columns", Value: game.DefaultRules().Columns, Usage: "board columns"},
			&cli.Uint64Flag{Name: "seed", Usage: "board seed, 0 picks one from the clock"},
			&cli.StringFlag{Name: "log-level", Value: "warn"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	config.SetupLogger(config.Config{LogLevel: c.String("log-level"), LogFormat: "pretty"}, c.App.ErrWriter)

	rules := game.DefaultRules()
	rules.Rows = c.Int("rows")
	rules.Columns = c.Int("columns")
	seed := c.Uint64("seed")
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Uint64("seed", seed).Msg("new match")

	m := game.NewMatch("local", rules, rand.New(rand.NewSource(seed)))
	for _, r := range game.Roles {
		m.SetClass(r.String(), r)
	}
	return play(m, c.App.Reader, c.App.Writer)
}

// play reads one order per line until a ship sinks or input ends.
func play(m *game.Match, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		printMatch(out, m)
		if side, sunk := m.Sunk(); sunk {
			fmt.Fprintf(out, "\nThe %s ship has sunk.\n", side)
			return nil
		}

		fmt.Fprintf(out, "%s> ", m.CurrentTurn())
		if !sc.Scan() {
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return nil
		}

		a, err := parseOrder(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if required, ok := a.Type.Role(); ok && required != game.RoleNone && required != m.CurrentTurn() {
			fmt.Fprintf(out, "%s cannot %s\n", m.CurrentTurn(), a.Type)
			continue
		}
		res, err := m.Apply(a)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if res.Detection != "" {
			fmt.Fprintln(out, res.Detection)
		}
		if len(res.Hits) > 0 {
			fmt.Fprintf(out, "hit: %v\n", res.Hits)
		}
	}
}

// parseOrder reads "<action> [row,col ...] [class|player|ai]", for example
// "move 1,2 1,3", "buff gunner" or "dodge ai".
func parseOrder(line string) (game.Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return game.Action{}, fmt.Errorf("empty order")
	}
	a := game.Action{Type: game.ActionType(strings.ToLower(fields[0]))}
	if _, ok := a.Type.Role(); !ok {
		return a, fmt.Errorf("unknown action %q", fields[0])
	}

	for _, f := range fields[1:] {
		if row, col, ok := strings.Cut(f, ","); ok {
			r, err1 := strconv.Atoi(row)
			c, err2 := strconv.Atoi(col)
			if err1 != nil || err2 != nil {
				return a, fmt.Errorf("bad coordinate %q", f)
			}
			a.Coordinates = append(a.Coordinates, game.Coordinate{Row: r, Column: c})
			continue
		}
		if a.Type == game.ActionBuff {
			role, err := game.ParseRole(f)
			if err != nil {
				return a, err
			}
			a.Class = role
			continue
		}
		if err := a.Ship.UnmarshalText([]byte(f)); err != nil {
			return a, fmt.Errorf("unexpected %q", f)
		}
	}
	return a, nil
}

func printMatch(out io.Writer, m *game.Match) {
	snap := m.Snapshot()
	fmt.Fprintln(out)
	for r, row := range snap.Board {
		for c, cell := range row {
			fmt.Fprint(out, cellGlyph(cell, snap, game.Coordinate{Row: r, Column: c}), " ")
		}
		fmt.Fprintln(out)
	}
	for _, s := range []game.ShipSummary{snap.PlayerShip, snap.AIShip} {
		fmt.Fprintf(out, "%-6s at %d,%d  hp %d  food %d  pellets %d  extra %d  dodging %v\n",
			s.Side, s.Location.Row, s.Location.Column, s.HP, s.Food, s.Pellets, s.ExtraMoves, s.IsDodging)
	}
	if snap.ClassToBuff != game.RoleNone {
		fmt.Fprintf(out, "buffing %s\n", snap.ClassToBuff)
	}
}

func cellGlyph(cell *game.TileView, snap game.Snapshot, at game.Coordinate) string {
	switch {
	case at == snap.PlayerShip.Location:
		return "P"
	case cell == nil:
		return "~"
	case cell.HasAIShip:
		return "A"
	case cell.HasMine:
		return "*"
	case cell.ResourceCount != nil && *cell.ResourceCount != 0:
		if *cell.ResourceType == game.Food {
			return "f"
		}
		return "p"
	case cell.IsVisited:
		return "."
	}
	return " "
}
