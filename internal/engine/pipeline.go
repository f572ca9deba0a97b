package engine

// calculateEntries runs the shared per-entry pipeline every category
// calculator follows: resolve the canonical quantity, resolve classification
// keys, look up the factor, multiply. All of that lives in the category's
// resolve function; this helper owns the error policy.
//
// Entries that fail to resolve are excluded from the results and reported in
// the error list, so callers can tell "zero emissions" apart from "entry
// skipped". On success, accumulate is invoked with the entry and its result
// so the calculator can fold its category totals.
func calculateEntries[E any](
	category Category,
	entries []E,
	entryID func(E) string,
	resolve func(E) (Result, error),
	accumulate func(E, Result),
) ([]Result, []*EntryError) {
	results := make([]Result, 0, len(entries))
	var errs []*EntryError

	for _, entry := range entries {
		result, err := resolve(entry)
		if err != nil {
			errs = append(errs, newEntryError(category, entryID(entry), err))
			continue
		}
		results = append(results, result)
		accumulate(entry, result)
	}

	return results, errs
}
