// Package metrics summarises a finished availability run.
//
// A Summary counts targets by outcome, totals the GET attempts made and keeps
// the distribution of final status codes. Response times of successful
// targets are reduced to an average and P50/P95 percentiles:
//
//	results := c.Run(ctx, targets)
//	summary := metrics.Summarize(results)
//	fmt.Println(summary)
package metrics
