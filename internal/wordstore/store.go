package wordstore

import (
	"encoding/binary"
	"os"
	"sort"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// commonProbeWords are used by EstimateMaxCount; these are, in a typical
// English frequency dictionary, near-guaranteed to be present and near the
// top of the frequency distribution.
var commonProbeWords = []string{
	"the", "of", "and", "a", "to", "in", "is", "you", "that", "it",
}

// Store is a read-only handle onto a memory-mapped words.bin/bigrams.bin
// file. It is immutable for its lifetime; multiple Stores (in the same or
// different processes) may share the same file.
type Store struct {
	file       *os.File
	region     mmap.MMap
	numEntries uint32
	headerSize int
	cache      *boundedCache
}

// Open memory-maps the store file at path. A malformed or truncated header
// is reported as an error at open time; once open, individual malformed
// records are tolerated and degrade to empty/zero results rather than
// propagating as errors.
func Open(path string, cacheSize int) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	region, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	if len(region) < headerCountSize {
		region.Unmap()
		f.Close()
		return nil, errTruncated("header")
	}

	numEntries := binary.LittleEndian.Uint32(region[:headerCountSize])
	headerSize := headerCountSize + int(numEntries)*offsetEntrySize
	if headerSize > len(region) {
		region.Unmap()
		f.Close()
		return nil, errTruncated("offset table")
	}

	return &Store{
		file:       f,
		region:     region,
		numEntries: numEntries,
		headerSize: headerSize,
		cache:      newBoundedCache(cacheSize),
	}, nil
}

// Close releases the mmap region and clears the cache.
func (s *Store) Close() error {
	s.cache.clear()
	if err := s.region.Unmap(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}

// NumEntries returns the number of records in the store.
func (s *Store) NumEntries() uint32 { return s.numEntries }

func (s *Store) offsetAt(index uint32) (uint32, bool) {
	pos := headerCountSize + int(index)*offsetEntrySize
	if pos+offsetEntrySize > len(s.region) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(s.region[pos : pos+offsetEntrySize]), true
}

// readRecord decodes the record whose record-area offset is off, returning
// the absolute end offset of the record for forward-scanning callers.
func (s *Store) readRecord(off uint32) (term string, count uint64, end int, ok bool) {
	start := s.headerSize + int(off)
	if start+recordLenSize > len(s.region) {
		return "", 0, 0, false
	}
	termLen := int(s.region[start])
	termStart := start + recordLenSize
	termEnd := termStart + termLen
	countEnd := termEnd + recordCountSize
	if countEnd > len(s.region) {
		return "", 0, 0, false
	}
	term = string(s.region[termStart:termEnd])
	count = binary.LittleEndian.Uint64(s.region[termEnd:countEnd])
	return term, count, countEnd, true
}

// At returns the (term, count) pair for the index-th record in sorted order.
func (s *Store) At(index uint32) (string, uint64, bool) {
	if index >= s.numEntries {
		return "", 0, false
	}
	off, ok := s.offsetAt(index)
	if !ok {
		return "", 0, false
	}
	term, count, _, ok := s.readRecord(off)
	return term, count, ok
}

// Get returns the count for term, or 0 if absent or on any malformed record
// encountered along the way.
func (s *Store) Get(term string) uint64 {
	if v, ok := s.cache.get(term); ok {
		return v
	}

	idx, found := s.search(term)
	if !found {
		return 0
	}
	_, count, _, ok := s.recordAtIndex(idx)
	if !ok {
		return 0
	}
	s.cache.put(term, count)
	return count
}

// Contains reports whether term has a strictly positive count in the store.
func (s *Store) Contains(term string) bool {
	return s.Get(term) > 0
}

func (s *Store) recordAtIndex(index uint32) (string, uint64, int, bool) {
	off, ok := s.offsetAt(index)
	if !ok {
		return "", 0, 0, false
	}
	return s.readRecord(off)
}

// search performs a binary search for term, returning its index and whether
// it was found.
func (s *Store) search(term string) (uint32, bool) {
	lo, hi := 0, int(s.numEntries)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		t, _, _, ok := s.recordAtIndex(uint32(mid))
		if !ok {
			return 0, false
		}
		switch {
		case t == term:
			return uint32(mid), true
		case t < term:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}

// searchFirstGE returns the index of the first record whose term is >= key.
func (s *Store) searchFirstGE(key string) uint32 {
	lo, hi := 0, int(s.numEntries)
	for lo < hi {
		mid := (lo + hi) / 2
		t, _, _, ok := s.recordAtIndex(uint32(mid))
		if !ok {
			return uint32(lo)
		}
		if t < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return uint32(lo)
}

// PrefixResult is a single hit from PrefixScan.
type PrefixResult struct {
	Term  string
	Count uint64
}

// PrefixScan binary-searches for the first term >= prefix, scans forward
// while the term still starts with prefix, over-collecting up to 10*limit
// candidates before sorting descending by count and truncating to limit.
func (s *Store) PrefixScan(prefix string, limit int) []PrefixResult {
	if limit <= 0 {
		return nil
	}

	overCollect := 10 * limit
	start := s.searchFirstGE(prefix)

	results := make([]PrefixResult, 0, limit)
	for i := start; i < s.numEntries && len(results) < overCollect; i++ {
		term, count, _, ok := s.recordAtIndex(i)
		if !ok {
			break
		}
		if !strings.HasPrefix(term, prefix) {
			break
		}
		results = append(results, PrefixResult{Term: term, Count: count})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Term < results[j].Term
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// EstimateMaxCount probes a fixed set of common words; if none are present,
// it falls back to the max count across the first 100 entries.
func (s *Store) EstimateMaxCount() uint64 {
	var max uint64
	for _, w := range commonProbeWords {
		if c := s.Get(w); c > max {
			max = c
		}
	}
	if max > 0 {
		return max
	}

	limit := s.numEntries
	if limit > 100 {
		limit = 100
	}
	for i := uint32(0); i < limit; i++ {
		_, count, ok := s.At(i)
		if ok && count > max {
			max = count
		}
	}
	return max
}

type truncatedError struct{ section string }

func (e truncatedError) Error() string { return "wordstore: truncated " + e.section }

func errTruncated(section string) error { return truncatedError{section: section} }
