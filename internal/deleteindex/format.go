// Package deleteindex implements the on-disk, memory-mapped symmetric-delete
// index (deletes.bin): a sorted map from delete-key to the list of
// dictionary-word ordinals it was derived from.
//
//	u32  num_entries
//	u32  offset[num_entries]
//	record[num_entries]:
//	    u8   key_len                // may be 0 (empty key)
//	    u8   key_bytes[key_len]
//	    u16  num_suggestions
//	    u32  word_index[num_suggestions]
//
// Records are sorted ascending by key; no key table is held in memory once
// open, every lookup re-reads keys from the mmap region.
package deleteindex

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"
)

const (
	headerCountSize  = 4
	offsetEntrySize  = 4
	keyLenSize       = 1
	numSuggSize      = 2
	wordIndexSize    = 4
	maxKeyLen        = 255
	maxSuggestions   = 65535
)

// Entry is a single (delete-key -> word ordinals) pair as seen by the
// builder.
type Entry struct {
	Key     string
	Indices []uint32
}

func encodeRecord(buf []byte, key string, indices []uint32) ([]byte, error) {
	if len(key) > maxKeyLen {
		return nil, fmt.Errorf("deleteindex: key %q exceeds max length", key)
	}
	if len(indices) > maxSuggestions {
		return nil, fmt.Errorf("deleteindex: key %q has too many suggestions (%d)", key, len(indices))
	}

	buf = append(buf, byte(len(key)))
	buf = append(buf, key...)

	var countBuf [numSuggSize]byte
	binary.LittleEndian.PutUint16(countBuf[:], uint16(len(indices)))
	buf = append(buf, countBuf[:]...)

	var idxBuf [wordIndexSize]byte
	for _, idx := range indices {
		binary.LittleEndian.PutUint32(idxBuf[:], idx)
		buf = append(buf, idxBuf[:]...)
	}
	return buf, nil
}

func writeFile(w io.Writer, entries []Entry) error {
	offsets := make([]uint32, len(entries))
	var records []byte
	for i, e := range entries {
		offsets[i] = uint32(len(records))
		var err error
		records, err = encodeRecord(records, e.Key, e.Indices)
		if err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)

	var numBuf [headerCountSize]byte
	binary.LittleEndian.PutUint32(numBuf[:], uint32(len(entries)))
	if _, err := bw.Write(numBuf[:]); err != nil {
		return err
	}

	var offBuf [offsetEntrySize]byte
	for _, off := range offsets {
		binary.LittleEndian.PutUint32(offBuf[:], off)
		if _, err := bw.Write(offBuf[:]); err != nil {
			return err
		}
	}

	if _, err := bw.Write(records); err != nil {
		return err
	}

	return bw.Flush()
}

// Build writes a new deletes.bin at path from entries, sorting them
// ascending by key. Duplicate keys are merged (their index lists
// concatenated) so callers may append incrementally.
func Build(path string, entries []Entry) error {
	merged := mergeAndSort(entries)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeFile(f, merged); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func mergeAndSort(entries []Entry) []Entry {
	byKey := make(map[string][]uint32, len(entries))
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, exists := byKey[e.Key]; !exists {
			order = append(order, e.Key)
		}
		byKey[e.Key] = append(byKey[e.Key], e.Indices...)
	}

	sort.Strings(order)

	out := make([]Entry, len(order))
	for i, key := range order {
		out[i] = Entry{Key: key, Indices: byKey[key]}
	}
	return out
}
