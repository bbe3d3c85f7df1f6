package mocks

import (
	"context"
	"errors"
	"sync"
)

// LocationFetcher serves scripted option lists and counts calls. The On*
// hooks let tests hold a fetch in flight to exercise stale-response handling.
type LocationFetcher struct {
	mu sync.Mutex

	StatesList       []string
	DistrictsByState map[string][]string
	TaluksByDistrict map[string][]string
	VillagesByTaluk  map[string][]string

	StateCalls    int
	DistrictCalls int
	TalukCalls    int
	VillageCalls  int

	OnDistricts func(state string)

	Err error
}

func (f *LocationFetcher) States(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	f.StateCalls++
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	return f.StatesList, nil
}

func (f *LocationFetcher) Districts(ctx context.Context, state string) ([]string, error) {
	f.mu.Lock()
	f.DistrictCalls++
	f.mu.Unlock()

	if f.OnDistricts != nil {
		f.OnDistricts(state)
	}
	if f.Err != nil {
		return nil, f.Err
	}

	districts, ok := f.DistrictsByState[state]
	if !ok {
		return nil, errors.New("unknown state")
	}
	return districts, nil
}

func (f *LocationFetcher) Taluks(ctx context.Context, state, district string) ([]string, error) {
	f.mu.Lock()
	f.TalukCalls++
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	taluks, ok := f.TaluksByDistrict[state+"|"+district]
	if !ok {
		return nil, errors.New("unknown district")
	}
	return taluks, nil
}

func (f *LocationFetcher) Villages(ctx context.Context, state, district, taluk string) ([]string, error) {
	f.mu.Lock()
	f.VillageCalls++
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	villages, ok := f.VillagesByTaluk[state+"|"+district+"|"+taluk]
	if !ok {
		return nil, errors.New("unknown taluk")
	}
	return villages, nil
}
