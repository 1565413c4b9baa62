package crossy

import (
	"errors"
	"fmt"
	"math/rand"
)

// maxPlacementAttempts bounds rejection sampling. With the densities the
// config validator allows, a lane fills in a handful of draws.
const maxPlacementAttempts = 10_000

var (
	// ErrNotEnoughSlots is returned when more obstacles are requested than
	// distinct slots exist.
	ErrNotEnoughSlots = errors.New("crossy: more obstacles than slots")
	// ErrPlacementExhausted is returned when sampling hits the attempt cap.
	ErrPlacementExhausted = errors.New("crossy: obstacle placement did not converge")
)

// PlaceObstacles picks count distinct slots in [0, slots) by rejection
// sampling: draw uniformly, keep the slot only if it is still free.
// The returned order is the draw order.
func PlaceObstacles(rng *rand.Rand, slots, count int) ([]int, error) {
	if count < 0 || slots < 0 || count > slots {
		return nil, fmt.Errorf("%w: %d obstacles in %d slots", ErrNotEnoughSlots, count, slots)
	}

	occupied := make(map[int]bool, count)
	placed := make([]int, 0, count)
	attempts := 0
	for len(placed) < count {
		if attempts >= maxPlacementAttempts {
			return placed, fmt.Errorf("%w after %d attempts", ErrPlacementExhausted, attempts)
		}
		attempts++

		slot := rng.Intn(slots)
		if occupied[slot] {
			continue
		}
		occupied[slot] = true
		placed = append(placed, slot)
	}
	return placed, nil
}
