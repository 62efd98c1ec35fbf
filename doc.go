// Package memotori is the composition root of the memo-tori note engine.
//
// It wires the domain Service (pkg/core) to the SQLite storage adapter
// (pkg/adapters/sqlite) using functional options, the same way a desktop
// capture panel or the memotori command line would.
//
// The engine stores short notes with free-form tags in a single local
// database file, keeps a full-text index in sync with note content, and
// answers library searches combining text relevance, tag filters and recency.
//
// Usage:
//
//	svc, err := memotori.Open("", memotori.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	defer svc.Close()
//
//	id, err := svc.InsertNote(ctx, "Buy milk", []string{"home"})
//	hits, err := svc.SearchNotes(ctx, "milk", []string{"home"}, memotori.DefaultSearchLimit)
package memotori
