package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The generated servers package is produced from api/openapi.yml; this test
// keeps the contract itself valid and pins the routes the service exposes.
func TestOpenAPIContract(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("../../../../api/openapi.yml")
	require.NoError(t, err)

	err = doc.Validate(context.Background())
	require.NoError(t, err)

	t.Run("exposes all service routes", func(t *testing.T) {
		expected := map[string][]string{
			"/health":                   {http.MethodGet},
			"/api/v1/orders":            {http.MethodGet, http.MethodPost},
			"/api/v1/orders/{orderId}":  {http.MethodGet},
			"/api/v1/payments/initiate": {http.MethodPost},
			"/api/v1/payments/confirm":  {http.MethodPost},
			"/webhook":                  {http.MethodPost},
		}

		for path, methods := range expected {
			item := doc.Paths.Find(path)
			require.NotNil(t, item, "path %s missing from contract", path)
			for _, method := range methods {
				assert.NotNil(t, item.GetOperation(method), "%s %s missing from contract", method, path)
			}
		}
	})

	t.Run("order status enum matches the lifecycle", func(t *testing.T) {
		orderSchema := doc.Components.Schemas["Order"]
		require.NotNil(t, orderSchema)

		status := orderSchema.Value.Properties["status"]
		require.NotNil(t, status)
		assert.ElementsMatch(t,
			[]any{"pending", "payment_initiated", "processing", "completed"},
			status.Value.Enum)
	})

	t.Run("webhook is the only secured operation", func(t *testing.T) {
		webhook := doc.Paths.Find("/webhook").GetOperation(http.MethodPost)
		require.NotNil(t, webhook)
		require.NotNil(t, webhook.Security)
		assert.NotEmpty(t, *webhook.Security)
	})
}
