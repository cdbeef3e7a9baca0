// Package plantfill enriches plant fact-sheet records for a rain-garden guide.
// It fetches the source pages linked from each record, parses site-specific
// HTML into a common field set, and folds the results back into the record
// using per-field merge rules.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gnparser/).
package plantfill
