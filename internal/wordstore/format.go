// Package wordstore implements the on-disk, memory-mapped sorted (term,
// count) store used for both the unigram dictionary (words.bin) and the
// bigram dictionary (bigrams.bin). Both share the exact same binary layout:
//
//	u32  num_words
//	u32  offset[num_words]   // byte offsets into the record area
//	record[num_words]:
//	    u8   term_len  (1..255)
//	    u8   term_bytes[term_len]
//	    u64  count
//
// Records are sorted ascending by term; a bigram term is just a unigram term
// formatted as "w1 w2".
package wordstore

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	headerCountSize = 4
	offsetEntrySize = 4
	recordLenSize   = 1
	recordCountSize = 8
	maxTermLen      = 255
)

// Entry is a single (term, count) pair as seen by the builder.
type Entry struct {
	Term  string
	Count uint64
}

// encodeRecord appends the wire representation of e to buf and returns the
// extended slice.
func encodeRecord(buf []byte, term string, count uint64) ([]byte, error) {
	if len(term) == 0 || len(term) > maxTermLen {
		return nil, fmt.Errorf("wordstore: term %q has invalid length %d", term, len(term))
	}
	buf = append(buf, byte(len(term)))
	buf = append(buf, term...)
	var countBuf [recordCountSize]byte
	binary.LittleEndian.PutUint64(countBuf[:], count)
	buf = append(buf, countBuf[:]...)
	return buf, nil
}

// writeFile writes a complete words.bin/bigrams.bin file to w given entries
// already sorted ascending by Term.
func writeFile(w io.Writer, entries []Entry) error {
	offsets := make([]uint32, len(entries))
	var records []byte
	for i, e := range entries {
		offsets[i] = uint32(len(records))
		var err error
		records, err = encodeRecord(records, e.Term, e.Count)
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

// Build writes a new store file at path from entries, which need not be
// pre-sorted or de-duplicated; later entries for a duplicate term win.
func Build(path string, entries []Entry) error {
	merged := SortEntries(entries)

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
