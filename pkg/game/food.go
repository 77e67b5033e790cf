package game

import (
	"errors"

	"github.com/arshith183/snake-io-game/pkg/config"
)

// ErrBoardFull is returned when no free cell is left for food.
// It means the grid is too small for the snake, which normal play never reaches.
var ErrBoardFull = errors.New("game: no free cell left for food")

// placeFood picks a uniformly random cell not rejected by occupied.
// Random sampling is tried first; when it keeps hitting occupied cells the
// free cells are enumerated so a nearly full board still terminates.
func (g *Game) placeFood(occupied func(Point) bool) (Point, error) {
	for attempts := 0; attempts < config.MaxFoodAttempts; attempts++ {
		pos := Point{
			X: g.rng.Intn(g.tileCount),
			Y: g.rng.Intn(g.tileCount),
		}
		if !occupied(pos) {
			return pos, nil
		}
	}

	free := make([]Point, 0)
	for y := 0; y < g.tileCount; y++ {
		for x := 0; x < g.tileCount; x++ {
			p := Point{X: x, Y: y}
			if !occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, ErrBoardFull
	}
	return free[g.rng.Intn(len(free))], nil
}

// generateFood places regular food away from the snake
func (g *Game) generateFood() (Point, error) {
	return g.placeFood(g.onSnake)
}

// generateGoldenFood places golden food away from the snake and the regular food
func (g *Game) generateGoldenFood() (Point, error) {
	return g.placeFood(func(p Point) bool {
		return p == g.food || g.onSnake(p)
	})
}

// maybeSpawnGolden rolls for a golden food after regular food was eaten
func (g *Game) maybeSpawnGolden() {
	roll := g.rng.Float64()
	if roll >= config.GoldenFoodChance || g.golden != nil {
		return
	}
	pos, err := g.generateGoldenFood()
	if err != nil {
		// Optional item; a crowded board just skips it
		return
	}
	g.golden = &pos
}

func (g *Game) onSnake(p Point) bool {
	for _, s := range g.snake {
		if s == p {
			return true
		}
	}
	return false
}
