package app

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/ianto3/projectboard/internal/domain/project"
	"github.com/ianto3/projectboard/internal/platform/telemetry"
	"github.com/ianto3/projectboard/internal/ports"
)

// Mutation kinds recorded on ProjectMutationTotal.
const (
	mutationAdd  = "add"
	mutationMove = "move"
)

// TrackProjects watches the store and records the per-status project gauge
// and the mutation counter. The replayed first snapshot only sets the gauge
// and the baseline. The store only notifies on real changes, so a grown
// snapshot is an add and anything else is a move. Safe to call with nil
// metrics, in which case nothing is subscribed.
func TrackProjects(store ports.ProjectStore, metrics *telemetry.Metrics) (unsubscribe func()) {
	if metrics == nil {
		return func() {}
	}

	ctx := context.Background()
	last := -1

	record := func(snapshot []project.Project) {
		for _, st := range project.Statuses() {
			n := len(project.FilterByStatus(snapshot, st))
			metrics.ProjectsCurrent.Record(ctx, int64(n),
				metric.WithAttributes(telemetry.AttrStatus.String(st.String())))
		}
	}

	// Calls are serialized by the store, so last needs no lock.
	return store.Watch(func(snapshot []project.Project) {
		if last < 0 {
			last = len(snapshot)
			record(snapshot)
			return
		}

		op := mutationMove
		if len(snapshot) > last {
			op = mutationAdd
		}
		last = len(snapshot)

		metrics.ProjectMutationTotal.Add(ctx, 1,
			metric.WithAttributes(telemetry.AttrOperation.String(op)))
		record(snapshot)
	})
}
