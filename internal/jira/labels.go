package jira

// MergeLabels computes the write-back label set for an addLabel request:
// current labels first, in tracker order, then each requested label not
// already present, in request order. A label repeated within one request is
// appended once. The returned added slice is never nil so an empty result
// serializes as [] rather than null.
func MergeLabels(current, requested []string) (all, added []string) {
	seen := make(map[string]bool, len(current)+len(requested))

	all = make([]string, 0, len(current)+len(requested))
	for _, label := range current {
		all = append(all, label)
		seen[label] = true
	}

	added = []string{}
	for _, label := range requested {
		if seen[label] {
			continue
		}
		seen[label] = true
		all = append(all, label)
		added = append(added, label)
	}

	return all, added
}
