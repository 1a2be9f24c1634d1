// Package dataset decodes the raw CSV row sources a road-network graph is
// built from: one file of cities, one file of roads.
//
// Decoding is typed via github.com/gocarina/gocsv against the row structs
// declared in core. Before decoding, the header is checked against the
// canonical required column sets; a missing column aborts immediately with
// ErrMissingColumn naming it, so a malformed export never yields a
// half-built graph. Extra columns are ignored.
//
// Required columns:
//
//	cities: id, name_en, latitude, longitude
//	roads:  source_id, target_id, distance_km, travel_time_min
package dataset
