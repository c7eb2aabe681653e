// Package vendorscope reconcilia las tres formas en que un registro puede
// pertenecer a un vendor: campo vendor, id de catálogo y (para datos viejos)
// coincidencia por nombre desnormalizado.
package vendorscope

import (
	"sort"
	"strings"
	"time"
)

// Strategy ordena la precedencia: un valor menor gana ante ids duplicados.
type Strategy int

const (
	ByVendorField Strategy = iota
	ByCatalogID
	ByLegacyName
)

func (s Strategy) String() string {
	switch s {
	case ByVendorField:
		return "vendor_field"
	case ByCatalogID:
		return "catalog_id"
	case ByLegacyName:
		return "legacy_name"
	default:
		return "unknown"
	}
}

type Result[T any] struct {
	Strategy Strategy
	Items    []T
}

type Keys[T any] struct {
	ID        func(T) string
	CreatedAt func(T) time.Time
}

// Union une los resultados por id. Si el mismo id aparece en varias estrategias
// se conserva la copia de la estrategia de mayor precedencia, sin importar el
// orden de los argumentos. Salida: más reciente primero, empate por id.
func Union[T any](keys Keys[T], results ...Result[T]) []T {
	type pick struct {
		item     T
		strategy Strategy
	}

	byID := map[string]pick{}
	for _, res := range results {
		for _, it := range res.Items {
			id := keys.ID(it)
			if id == "" {
				continue
			}
			if cur, ok := byID[id]; ok && cur.strategy <= res.Strategy {
				continue
			}
			byID[id] = pick{item: it, strategy: res.Strategy}
		}
	}

	out := make([]T, 0, len(byID))
	for _, p := range byID {
		out = append(out, p.item)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := keys.CreatedAt(out[i]), keys.CreatedAt(out[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return keys.ID(out[i]) < keys.ID(out[j])
	})
	return out
}

// NameKey normaliza los campos desnormalizados (nombre, ubicación, refugio)
// para comparar registros viejos contra el catálogo actual.
func NameKey(parts ...string) string {
	norm := make([]string, len(parts))
	for i, p := range parts {
		norm[i] = strings.ToLower(strings.Join(strings.Fields(p), " "))
	}
	return strings.Join(norm, "|")
}

// NameSet arma el set de NameKey a partir de una proyección del catálogo.
func NameSet[C any](catalog []C, key func(C) string) map[string]struct{} {
	set := make(map[string]struct{}, len(catalog))
	for _, c := range catalog {
		if k := key(c); strings.Trim(k, "|") != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

// IDs proyecta ids de catálogo para la estrategia ByCatalogID.
func IDs[C any](catalog []C, id func(C) string) []string {
	out := make([]string, 0, len(catalog))
	for _, c := range catalog {
		if v := id(c); v != "" {
			out = append(out, v)
		}
	}
	return out
}
