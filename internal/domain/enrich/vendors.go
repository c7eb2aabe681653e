package enrich

import (
	"context"
	"strings"
)

// ProductVendorLookup resuelve el vendor dueño de un producto del catálogo.
type ProductVendorLookup interface {
	VendorOf(ctx context.Context, productID string) (string, error)
}

type LookupFailure struct {
	ProductID string
	Err       error
}

// ResolveVendors devuelve, en el mismo orden que productIDs, el vendor de cada línea.
// Las líneas sin productId o cuyo lookup falla quedan con "" y el pedido sigue adelante;
// los fallos se devuelven para que el caller los loguee.
func ResolveVendors(ctx context.Context, lookup ProductVendorLookup, productIDs []string) ([]string, []LookupFailure) {
	vendors := make([]string, len(productIDs))
	if lookup == nil {
		return vendors, nil
	}

	var failures []LookupFailure
	seen := map[string]string{}
	for i, id := range productIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if v, ok := seen[id]; ok {
			vendors[i] = v
			continue
		}

		v, err := lookup.VendorOf(ctx, id)
		if err != nil {
			failures = append(failures, LookupFailure{ProductID: id, Err: err})
			v = ""
		}
		seen[id] = v
		vendors[i] = v
	}
	return vendors, failures
}

// OrDefault se usa al capturar snapshots con campos opcionales.
func OrDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}
