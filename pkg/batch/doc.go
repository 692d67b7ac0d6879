// Package batch validates many records concurrently on a bounded worker pool.
//
// Results come back in input order, one per record:
//
//	pool := batch.New(8)
//	defer pool.Close()
//
//	results, err := batch.Validate(ctx, pool, catalog.ProductSchema, products)
//	for _, r := range batch.Failed(results) {
//		fmt.Println(r.Index, r.Violations())
//	}
//
// Cancelling ctx stops records that have not started yet; their Result
// carries the context error.
package batch
