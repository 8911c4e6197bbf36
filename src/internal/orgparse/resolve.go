package orgparse

import "slices"

// Resolve picks the single candidate that applies to target. ok is false when
// no candidate matches. Candidates without a restriction match any value of
// that field; among several matches the ones with tags win over the rest,
// then the ones with a release, then the ones with a platform.
func Resolve(candidates []Candidate, target Target) (selected Candidate, ok bool, err error) {
	kept := matching(candidates, target)
	if len(kept) == 0 {
		return Candidate{}, false, nil
	}

	kept = narrow(kept, func(c Candidate) bool { return c.Tagged })
	kept = narrow(kept, func(c Candidate) bool { return c.Release != "" })
	kept = narrow(kept, func(c Candidate) bool { return c.Platform != "" })

	if len(kept) > 1 {
		names := make([]string, len(kept))
		for i, c := range kept {
			names[i] = c.Name
		}
		return Candidate{}, false, &AmbiguousSelectionError{Names: names}
	}
	return kept[0], true, nil
}

// matching drops the candidates that cannot apply to target and removes
// duplicates, keeping the first occurrence.
func matching(candidates []Candidate, target Target) []Candidate {
	var kept []Candidate
	for _, c := range candidates {
		if c.Platform != "" && c.Platform != target.Platform {
			continue
		}
		if c.Release != "" && c.Release != target.Release {
			continue
		}
		if c.Tagged && !slices.ContainsFunc(c.Tags, target.hasTag) {
			continue
		}
		if slices.ContainsFunc(kept, c.Equal) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// narrow keeps only the candidates satisfying specific, unless there is at
// most one candidate left or none of them is specific.
func narrow(candidates []Candidate, specific func(Candidate) bool) []Candidate {
	if len(candidates) < 2 || !slices.ContainsFunc(candidates, specific) {
		return candidates
	}
	return slices.DeleteFunc(slices.Clone(candidates), func(c Candidate) bool { return !specific(c) })
}
