package picker

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/totpal/internal/picker Picker

// Picker selects one entry uniformly at random from a set of n entries.
// The reveal announcement depends on this being the single call site for
// randomness, so tests can inject a deterministic implementation.
type Picker interface {
	// PickIndex returns a value in [0, n)
	PickIndex(n int) int
}

// RandPicker implements Picker using a seeded rand.Rand
type RandPicker struct {
	random *rand.Rand
}

// Config for the picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new random picker
func New(cfg *Config) *RandPicker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandPicker{
		random: random,
	}
}

// PickIndex returns a uniformly random index in [0, n)
func (p *RandPicker) PickIndex(n int) int {
	if n < 1 {
		return 0
	}
	return p.random.Intn(n)
}
