// Package dataprocessing implements the load/transform pipeline and the
// per-render aggregation pass for the movie dataset.
//
// The Loader reads the movies and credits CSV files, inner-joins them on the
// film ID, applies the financial floor and completeness filters, decodes the
// string-encoded list fields, and derives release year, director, primary
// country, profit and ROI. The result is one immutable clean table built
// once per process.
//
// File-level problems (missing file, unreadable content, missing columns)
// fail the whole load; a malformed encoded field in a single row degrades
// that row's derived fields to an empty list or the "Unknown" sentinel and
// keeps the row.
//
// The analytics functions compute the dashboard aggregates over a filtered
// subset: headline KPIs, per-genre metrics, a Pearson correlation matrix,
// yearly financial trends, the top-director ranking and the production
// country breakdowns. Every aggregate is recomputed from scratch per call;
// the dataset is small enough that this is cheaper than caching invalidation.
package dataprocessing
