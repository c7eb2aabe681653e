package docs

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocument_MatchesRouterAnnotations(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		BasePath    string                               `json:"basePath"`
		Paths       map[string]map[string]map[string]any `json:"paths"`
		Definitions map[string]any                       `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "/api", doc.BasePath)

	want := map[string]string{
		"/products/orders":                              "post",
		"/products/orders/{orderID}/address":            "put",
		"/daycare/bookings":                             "post",
		"/daycare/bookings/{bookingID}":                 "put",
		"/vendor/daycare/bookings":                      "get",
		"/vendor/daycare/centers":                       "post",
		"/adoption/applications":                        "post",
		"/adoption/applications/{applicationID}/revoke": "patch",
	}
	assert.Len(t, doc.Paths, len(want))
	for path, method := range want {
		require.Contains(t, doc.Paths, path)
		assert.Contains(t, doc.Paths[path], method, path)
	}

	// Cada $ref apunta a una definición existente.
	for _, m := range regexp.MustCompile(`"\$ref": "#/definitions/([^"]+)"`).FindAllStringSubmatch(raw, -1) {
		assert.Contains(t, doc.Definitions, m[1])
	}
	assert.False(t, strings.Contains(raw, "{{"), "plantilla sin resolver")
}
