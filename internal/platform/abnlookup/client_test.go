package abnlookup_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invomate/invomate_app/internal/platform/abnlookup"
)

func TestFetchABNDetails_JSONPResponse(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`callback({"Abn":"51824753556","AbnStatus":"Active","EntityName":"EXAMPLE PTY LTD","BusinessName":["Example Trading"],"Message":""})`))
	}))
	defer srv.Close()

	c := abnlookup.NewClient(srv.URL, "test-guid", srv.Client())
	details, err := c.FetchABNDetails(context.Background(), "51824753556")
	require.NoError(t, err)

	assert.Equal(t, "51824753556", details.Abn)
	assert.Equal(t, "EXAMPLE PTY LTD", details.EntityName)
	assert.Contains(t, gotQuery, "abn=51824753556")
	assert.Contains(t, gotQuery, "guid=test-guid")
	assert.Contains(t, gotQuery, "format=json")
}

func TestFetchABNDetails_PlainJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Abn":"51824753556","AbnStatus":"Active","Message":""}`))
	}))
	defer srv.Close()

	c := abnlookup.NewClient(srv.URL, "g", srv.Client())
	details, err := c.FetchABNDetails(context.Background(), "51824753556")
	require.NoError(t, err)
	assert.Equal(t, "Active", details.AbnStatus)
}

func TestFetchABNDetails_UpstreamMessageIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`callback({"Abn":"","Message":"Search text is not a valid ABN or ACN"})`))
	}))
	defer srv.Close()

	c := abnlookup.NewClient(srv.URL, "g", srv.Client())
	_, err := c.FetchABNDetails(context.Background(), "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid ABN")
}

func TestFetchABNDetails_UpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := abnlookup.NewClient(srv.URL, "g", srv.Client())
	_, err := c.FetchABNDetails(context.Background(), "51824753556")
	assert.Error(t, err)
}
