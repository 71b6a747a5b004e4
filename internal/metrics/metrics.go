// Package metrics defines the custom Prometheus metrics of the hotel
// management API. It is the single source of truth for metric names, labels
// and help strings.
//
// Collectors are created unregistered; call Register once with the registry
// the /metrics endpoint serves from.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hotel"

// ── Entity metrics ────────────────────────────────────────────────────────────

// EntitiesCreatedTotal counts successfully persisted new entities.
// Label:
//   - entity: "room", "user" or "reservation"
var EntitiesCreatedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of entities created, by entity kind.",
	},
	[]string{"entity"},
)

// EntitiesDeletedTotal counts successful deletions.
// Label:
//   - entity: "room", "user" or "reservation"
var EntitiesDeletedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_deleted_total",
		Help:      "Total number of entities deleted, by entity kind.",
	},
	[]string{"entity"},
)

// ConflictsTotal counts create requests rejected because a unique field was
// already taken.
// Label:
//   - entity: "room" or "user"
var ConflictsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conflicts_total",
		Help:      "Total number of create requests rejected for a duplicate unique field.",
	},
	[]string{"entity"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheLookupsTotal counts room cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheLookupsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of room cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// Entity label values.
const (
	EntityRoom        = "room"
	EntityUser        = "user"
	EntityReservation = "reservation"
)

var collectors = []prometheus.Collector{
	EntitiesCreatedTotal,
	EntitiesDeletedTotal,
	ConflictsTotal,
	CacheLookupsTotal,
}

// Register adds every collector to reg. Collectors already present in reg are
// skipped, so calling it twice with the same registry is harmless.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
