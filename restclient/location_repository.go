package restclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// LocationFetcher is what the cascading location resolver depends on.
type LocationFetcher interface {
	States(ctx context.Context) ([]string, error)
	Districts(ctx context.Context, state string) ([]string, error)
	Taluks(ctx context.Context, state, district string) ([]string, error)
	Villages(ctx context.Context, state, district, taluk string) ([]string, error)
}

// LocationRepository serves option lists from /newlocations/* with a short
// TTL cache in front; the location hierarchy changes rarely.
type LocationRepository struct {
	client *Client
	cache  *cache.Cache
}

func NewLocationRepository(client *Client) *LocationRepository {
	return &LocationRepository{
		client: client,
		cache:  cache.New(10*time.Minute, 15*time.Minute),
	}
}

func (r *LocationRepository) States(ctx context.Context) ([]string, error) {
	return r.fetch(ctx, "/newlocations/states", "states", nil)
}

func (r *LocationRepository) Districts(ctx context.Context, state string) ([]string, error) {
	query := url.Values{}
	query.Set("state", state)
	return r.fetch(ctx, "/newlocations/districts", "districts", query)
}

func (r *LocationRepository) Taluks(ctx context.Context, state, district string) ([]string, error) {
	query := url.Values{}
	query.Set("state", state)
	query.Set("district", district)
	return r.fetch(ctx, "/newlocations/taluks", "taluks", query)
}

func (r *LocationRepository) Villages(ctx context.Context, state, district, taluk string) ([]string, error) {
	query := url.Values{}
	query.Set("state", state)
	query.Set("district", district)
	query.Set("taluk", taluk)
	return r.fetch(ctx, "/newlocations/villages", "villages", query)
}

func (r *LocationRepository) fetch(ctx context.Context, path, field string, query url.Values) ([]string, error) {
	cacheKey := path + "?" + query.Encode()
	if cached, found := r.cache.Get(cacheKey); found {
		return cached.([]string), nil
	}

	result, err := Call[map[string][]string](ctx, r.client, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	options := (*result)[field]
	for i, option := range options {
		options[i] = strings.TrimSpace(option)
	}

	r.cache.Set(cacheKey, options, cache.DefaultExpiration)
	return options, nil
}
