package deleteindex

// GenerateDeletes computes the closure of all distinct strings obtainable
// from word by 1..maxEditDistance single-character deletions (a BFS bounded
// by depth maxEditDistance), including word itself. The closure runs over
// runes rather than bytes so multi-byte UTF-8 terms are deleted
// character-wise.
func GenerateDeletes(word string, maxEditDistance int) []string {
	seen := map[string]bool{word: true}
	frontier := []string{word}

	for depth := 0; depth < maxEditDistance; depth++ {
		var next []string
		for _, w := range frontier {
			runes := []rune(w)
			if len(runes) <= 1 {
				continue
			}
			for i := range runes {
				deleted := string(append(append([]rune{}, runes[:i]...), runes[i+1:]...))
				if !seen[deleted] {
					seen[deleted] = true
					next = append(next, deleted)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}

	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	return out
}

// BuildEntriesForWord returns the deletes.bin entries contributed by a
// single dictionary word at ordinal index: take the
// first prefixLength characters (or the whole word if shorter), compute its
// delete closure, and, if the word itself is short enough to be within
// maxEditDistance of empty, also associate index with the empty key.
func BuildEntriesForWord(word string, index uint32, maxEditDistance, prefixLength int) []Entry {
	runes := []rune(word)
	prefix := word
	if len(runes) > prefixLength {
		prefix = string(runes[:prefixLength])
	}

	keys := GenerateDeletes(prefix, maxEditDistance)

	entries := make([]Entry, 0, len(keys)+1)
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Indices: []uint32{index}})
	}

	if len(runes) <= maxEditDistance {
		entries = append(entries, Entry{Key: "", Indices: []uint32{index}})
	}

	return entries
}

// BuildEntries computes the full set of deletes.bin entries for a dictionary
// of words (indexed by their position in the sorted word store).
func BuildEntries(words []string, maxEditDistance, prefixLength int) []Entry {
	var all []Entry
	for i, w := range words {
		all = append(all, BuildEntriesForWord(w, uint32(i), maxEditDistance, prefixLength)...)
	}
	return all
}
