package service

import (
	"context"
	"sync"

	"github.com/Kotlang/opsGo/logger"
	"github.com/Kotlang/opsGo/models"
	"github.com/Kotlang/opsGo/restclient"
	"go.uber.org/zap"
)

type CascadeLevel int

const (
	LevelState CascadeLevel = iota
	LevelDistrict
	LevelTaluk
	LevelVillage
)

var levelNames = [4]string{"state", "district", "taluk", "village"}

type cascadeLevelState struct {
	selection string
	options   []string
	loading   bool
	// epoch moves forward every time the level is cleared or repopulated;
	// a fetch that returns after its captured epoch has moved on is dropped.
	epoch uint64
}

// Cascade is the state/district/taluk/village selector. Four ordered levels,
// each dependent on all levels above it: selecting a level clears everything
// below it, and a child option list is only fetched when every ancestor has a
// non-empty selection.
type Cascade struct {
	mu        sync.Mutex
	locations restclient.LocationFetcher
	levels    [4]cascadeLevelState
}

func NewCascade(locations restclient.LocationFetcher) *Cascade {
	return &Cascade{locations: locations}
}

// LoadStates populates the top-level option list. A failed load leaves the
// list empty; the selector degrades to "no options" rather than erroring.
func (c *Cascade) LoadStates(ctx context.Context) {
	c.mu.Lock()
	epoch := c.prepareFetch(LevelState)
	c.mu.Unlock()

	options, err := c.locations.States(ctx)
	c.applyOptions(LevelState, epoch, options, err)
}

func (c *Cascade) SelectState(ctx context.Context, state string) {
	c.mu.Lock()
	c.levels[LevelState].selection = state
	c.clearBelow(LevelState)

	if state == "" {
		c.mu.Unlock()
		return
	}

	epoch := c.prepareFetch(LevelDistrict)
	c.mu.Unlock()

	options, err := c.locations.Districts(ctx, state)
	c.applyOptions(LevelDistrict, epoch, options, err)
}

func (c *Cascade) SelectDistrict(ctx context.Context, district string) {
	c.mu.Lock()
	state := c.levels[LevelState].selection
	c.levels[LevelDistrict].selection = district
	c.clearBelow(LevelDistrict)

	// an empty parent never triggers a child fetch
	if state == "" || district == "" {
		c.mu.Unlock()
		return
	}

	epoch := c.prepareFetch(LevelTaluk)
	c.mu.Unlock()

	options, err := c.locations.Taluks(ctx, state, district)
	c.applyOptions(LevelTaluk, epoch, options, err)
}

func (c *Cascade) SelectTaluk(ctx context.Context, taluk string) {
	c.mu.Lock()
	state := c.levels[LevelState].selection
	district := c.levels[LevelDistrict].selection
	c.levels[LevelTaluk].selection = taluk
	c.clearBelow(LevelTaluk)

	if state == "" || district == "" || taluk == "" {
		c.mu.Unlock()
		return
	}

	epoch := c.prepareFetch(LevelVillage)
	c.mu.Unlock()

	options, err := c.locations.Villages(ctx, state, district, taluk)
	c.applyOptions(LevelVillage, epoch, options, err)
}

// SelectVillage has nothing below it; it only records the value.
func (c *Cascade) SelectVillage(village string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.levels[LevelVillage].selection = village
}

// Prefill seeds all four selections from a looked-up user's stored address
// and refetches the three dependent option lists without clearing the
// pre-filled leaf values.
func (c *Cascade) Prefill(ctx context.Context, address models.Address) {
	c.mu.Lock()
	c.levels[LevelState].selection = address.State
	c.levels[LevelDistrict].selection = address.District
	c.levels[LevelTaluk].selection = address.Taluk
	c.levels[LevelVillage].selection = address.Village

	type pendingFetch struct {
		level CascadeLevel
		epoch uint64
		fetch func(context.Context) ([]string, error)
	}

	var pending []pendingFetch
	if address.State != "" {
		pending = append(pending, pendingFetch{LevelDistrict, c.prepareFetch(LevelDistrict), func(ctx context.Context) ([]string, error) {
			return c.locations.Districts(ctx, address.State)
		}})
	}
	if address.State != "" && address.District != "" {
		pending = append(pending, pendingFetch{LevelTaluk, c.prepareFetch(LevelTaluk), func(ctx context.Context) ([]string, error) {
			return c.locations.Taluks(ctx, address.State, address.District)
		}})
	}
	if address.State != "" && address.District != "" && address.Taluk != "" {
		pending = append(pending, pendingFetch{LevelVillage, c.prepareFetch(LevelVillage), func(ctx context.Context) ([]string, error) {
			return c.locations.Villages(ctx, address.State, address.District, address.Taluk)
		}})
	}
	c.mu.Unlock()

	for _, p := range pending {
		options, err := p.fetch(ctx)
		c.applyOptions(p.level, p.epoch, options, err)
	}
}

func (c *Cascade) Selection() models.Address {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.Address{
		State:    c.levels[LevelState].selection,
		District: c.levels[LevelDistrict].selection,
		Taluk:    c.levels[LevelTaluk].selection,
		Village:  c.levels[LevelVillage].selection,
	}
}

func (c *Cascade) Options(level CascadeLevel) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{}, c.levels[level].options...)
}

func (c *Cascade) Loading(level CascadeLevel) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.levels[level].loading
}

type CascadeLevelView struct {
	Selection string   `json:"selection"`
	Options   []string `json:"options"`
	Loading   bool     `json:"loading"`
}

type CascadeView struct {
	State    CascadeLevelView `json:"state"`
	District CascadeLevelView `json:"district"`
	Taluk    CascadeLevelView `json:"taluk"`
	Village  CascadeLevelView `json:"village"`
}

func (c *Cascade) View() CascadeView {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := func(level CascadeLevel) CascadeLevelView {
		return CascadeLevelView{
			Selection: c.levels[level].selection,
			Options:   append([]string{}, c.levels[level].options...),
			Loading:   c.levels[level].loading,
		}
	}

	return CascadeView{
		State:    view(LevelState),
		District: view(LevelDistrict),
		Taluk:    view(LevelTaluk),
		Village:  view(LevelVillage),
	}
}

// clearBelow resets every level under the given one. Bumping the epoch here
// invalidates any fetch still in flight for those levels. Caller holds mu.
func (c *Cascade) clearBelow(level CascadeLevel) {
	for l := level + 1; l <= LevelVillage; l++ {
		c.levels[l].selection = ""
		c.levels[l].options = nil
		c.levels[l].loading = false
		c.levels[l].epoch++
	}
}

// prepareFetch flags the level as loading and returns the epoch the caller
// must present when applying the result. Caller holds mu.
func (c *Cascade) prepareFetch(level CascadeLevel) uint64 {
	c.levels[level].epoch++
	c.levels[level].loading = true
	return c.levels[level].epoch
}

func (c *Cascade) applyOptions(level CascadeLevel, epoch uint64, options []string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.levels[level].epoch != epoch {
		// a newer selection superseded this fetch
		return
	}

	c.levels[level].loading = false
	if err != nil {
		logger.Error("Failed loading location options", zap.String("level", levelNames[level]), zap.Error(err))
		c.levels[level].options = nil
		return
	}
	c.levels[level].options = options
}
