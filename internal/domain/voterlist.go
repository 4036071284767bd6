package domain

import "strings"

// VoterList is the ordered set of display names allowed to vote in a session.
// Names are unique case-insensitively; the first spelling wins. The list is
// fixed at session creation and never mutated afterwards.
type VoterList []string

// NewVoterList trims whitespace, drops blank entries, and de-duplicates
// case-insensitively while preserving the original order and spelling.
func NewVoterList(names []string) VoterList {
	seen := make(map[string]struct{}, len(names))
	list := make(VoterList, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		list = append(list, name)
	}

	return list
}

// Contains reports whether name matches an entry case-insensitively.
func (l VoterList) Contains(name string) bool {
	name = strings.TrimSpace(name)
	for _, v := range l {
		if strings.EqualFold(v, name) {
			return true
		}
	}
	return false
}

// NormalizeVoterName lowercases and trims a voter name. It is the key the
// vote ledger enforces uniqueness on.
func NormalizeVoterName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
