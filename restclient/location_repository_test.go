package restclient

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistrictsAreCachedPerState(t *testing.T) {
	client := newTestClient(t)
	repo := NewLocationRepository(client)

	httpmock.RegisterResponder(http.MethodGet, testBaseUrl+"/newlocations/districts",
		httpmock.NewStringResponder(http.StatusOK, `{"districts":["Mysuru"," Mandya "]}`))

	ctx := sessionContext("t")

	first, err := repo.Districts(ctx, "Karnataka")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mysuru", "Mandya"}, first)

	second, err := repo.Districts(ctx, "Karnataka")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// the second read must come from the cache
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestDistrictsForDifferentStatesAreCachedSeparately(t *testing.T) {
	client := newTestClient(t)
	repo := NewLocationRepository(client)

	httpmock.RegisterResponder(http.MethodGet, testBaseUrl+"/newlocations/districts",
		func(req *http.Request) (*http.Response, error) {
			if req.URL.Query().Get("state") == "Karnataka" {
				return httpmock.NewStringResponse(http.StatusOK, `{"districts":["Mysuru"]}`), nil
			}
			return httpmock.NewStringResponse(http.StatusOK, `{"districts":["Pune"]}`), nil
		})

	ctx := sessionContext("t")

	karnataka, err := repo.Districts(ctx, "Karnataka")
	require.NoError(t, err)
	maharashtra, err := repo.Districts(ctx, "Maharashtra")
	require.NoError(t, err)

	assert.Equal(t, []string{"Mysuru"}, karnataka)
	assert.Equal(t, []string{"Pune"}, maharashtra)
	assert.Equal(t, 2, httpmock.GetTotalCallCount())
}

func TestVillagesPassFullPath(t *testing.T) {
	client := newTestClient(t)
	repo := NewLocationRepository(client)

	var gotState, gotDistrict, gotTaluk string
	httpmock.RegisterResponder(http.MethodGet, testBaseUrl+"/newlocations/villages",
		func(req *http.Request) (*http.Response, error) {
			query := req.URL.Query()
			gotState = query.Get("state")
			gotDistrict = query.Get("district")
			gotTaluk = query.Get("taluk")
			return httpmock.NewStringResponse(http.StatusOK, `{"villages":["V1","V2"]}`), nil
		})

	villages, err := repo.Villages(sessionContext("t"), "Karnataka", "Mysuru", "T1")
	require.NoError(t, err)

	assert.Equal(t, "Karnataka", gotState)
	assert.Equal(t, "Mysuru", gotDistrict)
	assert.Equal(t, "T1", gotTaluk)
	assert.Equal(t, []string{"V1", "V2"}, villages)
}

func TestFetchErrorIsNotCached(t *testing.T) {
	client := newTestClient(t)
	repo := NewLocationRepository(client)

	httpmock.RegisterResponder(http.MethodGet, testBaseUrl+"/newlocations/states",
		httpmock.NewStringResponder(http.StatusBadGateway, `{"message":"upstream down"}`))

	ctx := sessionContext("t")

	_, err := repo.States(ctx)
	require.Error(t, err)

	httpmock.RegisterResponder(http.MethodGet, testBaseUrl+"/newlocations/states",
		httpmock.NewStringResponder(http.StatusOK, `{"states":["Karnataka"]}`))

	states, err := repo.States(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Karnataka"}, states)
}
