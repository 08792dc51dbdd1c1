package nucleo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-bridge/core/soap"
	"catalog-bridge/core/storage/mocks"
	"catalog-bridge/feature/nucleo"
	"catalog-bridge/feature/nucleo/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, u *upstream) *fiber.App {
	t.Helper()

	srv := httptest.NewServer(u.handler())
	t.Cleanup(srv.Close)

	client := soap.NewClient(soap.Config{BaseURL: srv.URL, StorageGroup: "9"}, zap.NewNop())
	feature := nucleo.NewFeature(client, new(mocks.Client), "catalog", zap.NewNop(), nil)

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func TestHandler_Login(t *testing.T) {
	app := newTestApp(t, &upstream{})

	req := httptest.NewRequest(http.MethodPost, "/nucleo/login", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, sessionToken, body["token"])
}

func TestHandler_Brands(t *testing.T) {
	app := newTestApp(t, &upstream{
		brands: `<NewDataSet><Table><bra_id>10</bra_id><bra_desc>ACME</bra_desc></Table></NewDataSet>`,
	})

	req := httptest.NewRequest(http.MethodGet, "/nucleo/brands", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var brands []models.Brand
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&brands))
	require.Len(t, brands, 1)
	assert.Equal(t, "ACME", brands[0].Name)
	assert.Equal(t, "10", brands[0].ExternalID)
}

func TestHandler_ProductsCombined_LimitParam(t *testing.T) {
	app := newTestApp(t, &upstream{
		products: "<NewDataSet>" +
			productRowXML("1", "p1", "5") +
			productRowXML("2", "p2", "5") +
			productRowXML("3", "p3", "5") +
			"</NewDataSet>",
		storageProducts: "Not data found.",
	})

	req := httptest.NewRequest(http.MethodGet, "/nucleo/products/combined?limit=2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var products []models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	assert.Len(t, products, 2)
}

func TestHandler_ProductsBase_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := soap.NewClient(soap.Config{BaseURL: srv.URL}, zap.NewNop())
	feature := nucleo.NewFeature(client, new(mocks.Client), "catalog", zap.NewNop(), nil)

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	req := httptest.NewRequest(http.MethodGet, "/nucleo/products/base", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["error"])
}

func TestHandler_ImagesByProduct_BadID(t *testing.T) {
	app := newTestApp(t, &upstream{})

	req := httptest.NewRequest(http.MethodGet, "/nucleo/product/images/load/notanint", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
