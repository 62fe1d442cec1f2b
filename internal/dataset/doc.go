// Package dataset holds the yearly anomaly series and the sources it is
// fetched from.
//
//   - [DataPoint]: one year and its mean anomaly
//   - [Dataset]: year-ascending series with filtering and extents
//   - [Source]: fetches a dataset once (HTTP endpoint or local file)
//
// # Wire Format
//
// Both the HTTP endpoint and JSON files carry an array of objects:
//
//	[{"Year": 1880, "Mean": -0.16}, {"Year": 1881, "Mean": -0.08}]
//
// CSV files need a header row naming the Year and Mean columns.
package dataset
