// Package store provides Redis-backed collections that can be paginated.
//
// A List keeps JSON-encoded elements in a single Redis list:
//
// - RPUSH for appends (optionally refreshing a TTL on the key)
// - LLEN for counts
// - LRANGE for half-open [start, end) slices
// - Prometheus metrics for every operation
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//
//	items := store.NewList[Item](redisClient, store.ListKey{
//		Namespace: "demo",
//		Name:      "items",
//	})
//	if err := items.Push(ctx, Item{ID: 1}); err != nil {
//		return err
//	}
//
// # Pagination
//
// Bind ties the list to a context so it satisfies paginator.Collection,
// paginator.Counter and paginator.Orderer. Errors are collected instead of
// returned; check Err after building pages:
//
//	bound := items.Bind(ctx)
//	p, err := paginator.New[Item](bound, 20)
//	page, err := p.GetPage(r.URL.Query().Get("page"))
//	if err == nil {
//		err = bound.Err()
//	}
//	if err != nil {
//		return err
//	}
//
// # Metrics
//
//   - webkit_store_ops_total{op} - List operations (push, len, range, delete)
//   - webkit_store_errors_total{op} - Failed list operations
package store
