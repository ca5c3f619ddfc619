// Package tracer provides distributed tracing with OpenTelemetry.
//
// NewClient installs a global TracerProvider (optionally exporting over
// OTLP/HTTP) and returns a *Tracer with helpers to start spans, record errors,
// set attributes and move trace context across process boundaries:
//
//	t, _ := tracer.NewClient(tracer.Config{ServiceName: "indexer", AppEnv: "dev"})
//	ctx, span := t.StartSpan(ctx, "vreedb.search")
//	defer span.End()
//	if err != nil {
//	    t.RecordErrorOnSpan(span, err)
//	}
//
// *Tracer satisfies vreedb.Tracer, so it can be handed to the vreedb client to
// get one span per remote operation.
package tracer
