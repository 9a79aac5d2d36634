// Package paginator splits an ordered collection into fixed-size pages and
// exposes per-page navigation metadata.
//
// A Paginator wraps any Collection (something with a length and integer
// slicing). Collections backed by a database or a remote store can implement
// Counter to provide a cheap item count instead of a full Len.
//
// Example usage:
//
//	p, err := paginator.New(paginator.FromSlice(items), 25, paginator.WithOrphans(3))
//	if err != nil {
//		return err
//	}
//	page, err := p.GetPage(r.URL.Query().Get("page"))
//	if err != nil {
//		return err // only when the paginator has zero pages
//	}
//	links, _ := p.ElidedPageRange(page.Number(), paginator.DefaultOnEachSide, paginator.DefaultOnEnds)
//
// Page numbers are validated by ValidateNumber, which accepts integers,
// integral floats and decimal strings:
//   - ErrPageNotAnInteger for input that is not a whole number
//   - ErrEmptyPage for numbers outside [1, NumPages]
//
// Both kinds also match ErrInvalidPage with errors.Is.
//
// Orphans: when the last page would hold no more than Orphans items, those
// items are merged into the previous page.
//
// Count and NumPages are computed once and cached. A Paginator is not safe
// for concurrent use and caches go stale if the collection changes after the
// first access.
package paginator
