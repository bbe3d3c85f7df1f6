package extensions

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCloudinaryClient(t *testing.T) *CloudinaryClient {
	t.Helper()

	client := NewCloudinaryClient("demo-cloud", "ops-preset")
	httpmock.ActivateNonDefault(client.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func TestUploadSendsPresetAndReturnsHostedUrl(t *testing.T) {
	client := newTestCloudinaryClient(t)

	httpmock.RegisterResponder(http.MethodPost, client.baseUrl+"/demo-cloud/image/upload",
		func(req *http.Request) (*http.Response, error) {
			require.NoError(t, req.ParseMultipartForm(1<<20))
			assert.Equal(t, "ops-preset", req.FormValue("upload_preset"))

			_, header, err := req.FormFile("file")
			require.NoError(t, err)
			assert.Equal(t, "field.jpg", header.Filename)

			return httpmock.NewStringResponse(http.StatusOK,
				`{"secure_url":"https://res.cloudinary.com/demo-cloud/image/upload/field.jpg","public_id":"field"}`), nil
		})

	url, err := client.Upload(context.TODO(), "field.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo-cloud/image/upload/field.jpg", url)
}

func TestUploadRoutesNonImagesToRaw(t *testing.T) {
	client := newTestCloudinaryClient(t)

	httpmock.RegisterResponder(http.MethodPost, client.baseUrl+"/demo-cloud/raw/upload",
		httpmock.NewStringResponder(http.StatusOK, `{"secure_url":"https://res.cloudinary.com/demo-cloud/raw/upload/report.pdf"}`))

	url, err := client.Upload(context.TODO(), "report.pdf", "application/pdf", strings.NewReader("pdf-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo-cloud/raw/upload/report.pdf", url)
}

func TestUploadSurfacesRejection(t *testing.T) {
	client := newTestCloudinaryClient(t)

	httpmock.RegisterResponder(http.MethodPost, client.baseUrl+"/demo-cloud/image/upload",
		httpmock.NewStringResponder(http.StatusBadRequest, `{"error":{"message":"Invalid preset"}}`))

	_, err := client.Upload(context.TODO(), "field.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
