package restclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/Kotlang/opsGo/auth"
	"github.com/Kotlang/opsGo/models"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseUrl = "http://backend.test"

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client := NewClient(testBaseUrl)
	httpmock.ActivateNonDefault(client.HTTPClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func sessionContext(token string) context.Context {
	return auth.WithSession(context.TODO(), &auth.Session{Token: token, UserId: "operator-1"})
}

func TestCallAttachesBearerToken(t *testing.T) {
	client := newTestClient(t)

	var gotAuth string
	httpmock.RegisterResponder(http.MethodGet, testBaseUrl+"/aggregator-leads",
		func(req *http.Request) (*http.Response, error) {
			gotAuth = req.Header.Get("Authorization")
			return httpmock.NewStringResponse(http.StatusOK, `{"data":[],"total":0}`), nil
		})

	_, err := Call[Page[models.LeadModel]](sessionContext("token-123"), client, http.MethodGet, "/aggregator-leads", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "bearer token-123", gotAuth)
}

func TestCallExtractsMessageField(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseUrl+"/aggregator-leads",
		httpmock.NewStringResponder(http.StatusBadRequest, `{"message":"Invalid crop name"}`))

	_, err := Call[Page[models.LeadModel]](sessionContext("t"), client, http.MethodGet, "/aggregator-leads", nil, nil)

	require.Error(t, err)
	apiErr, ok := err.(*ApiError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid crop name", apiErr.Message)
	assert.Contains(t, apiErr.Body, "Invalid crop name")
}

func TestCallExtractsErrorField(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseUrl+"/users",
		httpmock.NewStringResponder(http.StatusForbidden, `{"error":"Not allowed"}`))

	_, err := Call[Page[models.UserModel]](sessionContext("t"), client, http.MethodGet, "/users", nil, nil)

	require.Error(t, err)
	apiErr, ok := err.(*ApiError)
	require.True(t, ok)
	assert.Equal(t, "Not allowed", apiErr.Message)
}

func TestCallFallsBackToStatusText(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseUrl+"/users",
		httpmock.NewStringResponder(http.StatusInternalServerError, `backend exploded`))

	_, err := Call[Page[models.UserModel]](sessionContext("t"), client, http.MethodGet, "/users", nil, nil)

	require.Error(t, err)
	apiErr, ok := err.(*ApiError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
	assert.Equal(t, "backend exploded", apiErr.Body)
}
