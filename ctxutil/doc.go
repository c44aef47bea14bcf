// Package ctxutil carries request-scoped values, such as the trace ID,
// through both context.Context and *gin.Context.
//
//	ctx, traceID := ctxutil.EnsureTraceID(ctx)
//	logger.Infof(ctx, "serving page %d", page) // entry carries trace_id
package ctxutil
