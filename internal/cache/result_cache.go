// Package cache provides an in-memory LRU for completed simulation results.
// A run is fully determined by its patient profile and scenario, so repeated
// requests with identical inputs can skip the integrator entirely.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
)

const DefaultSize = 256

// ResultCache stores completed simulation results keyed by input hash.
type ResultCache interface {
	Get(key string) (*domain.SimulationResult, bool)
	Add(key string, result *domain.SimulationResult)
	Len() int
	Cap() int
	Purge()
}

type resultCache struct {
	lru  *lru.Cache[string, *domain.SimulationResult]
	size int
}

// New creates a result cache holding up to size entries. Non-positive sizes
// fall back to DefaultSize.
func New(size int) (ResultCache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New[string, *domain.SimulationResult](size)
	if err != nil {
		return nil, err
	}
	return &resultCache{lru: c, size: size}, nil
}

func (c *resultCache) Get(key string) (*domain.SimulationResult, bool) {
	return c.lru.Get(key)
}

func (c *resultCache) Add(key string, result *domain.SimulationResult) {
	c.lru.Add(key, result)
}

func (c *resultCache) Len() int {
	return c.lru.Len()
}

func (c *resultCache) Cap() int {
	return c.size
}

func (c *resultCache) Purge() {
	c.lru.Purge()
}

// Key derives the cache key for a profile/scenario pair. JSON encoding of the
// two structs is deterministic (fixed field order), so equal inputs always
// hash to the same key.
func Key(profile *domain.PatientProfile, cfg domain.ScenarioConfig) string {
	// Marshal cannot fail here: both structs hold only numbers, strings,
	// bools, and slices of them, with no custom marshalers
	profileJSON, _ := json.Marshal(profile)
	cfgJSON, _ := json.Marshal(cfg)

	h := sha256.New()
	h.Write(profileJSON)
	h.Write(cfgJSON)
	return hex.EncodeToString(h.Sum(nil))
}
