package deleteindex

import (
	"encoding/binary"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Index is a read-only handle onto a memory-mapped deletes.bin file.
type Index struct {
	file       *os.File
	region     mmap.MMap
	numEntries uint32
	headerSize int
}

// Open memory-maps the deletes index at path.
func Open(path string) (*Index, error) {
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

	return &Index{
		file:       f,
		region:     region,
		numEntries: numEntries,
		headerSize: headerSize,
	}, nil
}

// Close releases the mmap region.
func (idx *Index) Close() error {
	if err := idx.region.Unmap(); err != nil {
		idx.file.Close()
		return err
	}
	return idx.file.Close()
}

func (idx *Index) offsetAt(i uint32) (uint32, bool) {
	pos := headerCountSize + int(i)*offsetEntrySize
	if pos+offsetEntrySize > len(idx.region) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(idx.region[pos : pos+offsetEntrySize]), true
}

func (idx *Index) readRecord(off uint32) (key string, indices []uint32, ok bool) {
	start := idx.headerSize + int(off)
	if start+keyLenSize > len(idx.region) {
		return "", nil, false
	}
	keyLen := int(idx.region[start])
	keyStart := start + keyLenSize
	keyEnd := keyStart + keyLen
	countEnd := keyEnd + numSuggSize
	if countEnd > len(idx.region) {
		return "", nil, false
	}
	key = string(idx.region[keyStart:keyEnd])
	numSugg := int(binary.LittleEndian.Uint16(idx.region[keyEnd:countEnd]))

	idxStart := countEnd
	idxEnd := idxStart + numSugg*wordIndexSize
	if idxEnd > len(idx.region) {
		return "", nil, false
	}

	indices = make([]uint32, numSugg)
	for i := 0; i < numSugg; i++ {
		pos := idxStart + i*wordIndexSize
		indices[i] = binary.LittleEndian.Uint32(idx.region[pos : pos+wordIndexSize])
	}

	return key, indices, true
}

func (idx *Index) recordAtIndex(i uint32) (string, []uint32, bool) {
	off, ok := idx.offsetAt(i)
	if !ok {
		return "", nil, false
	}
	return idx.readRecord(off)
}

func (idx *Index) search(key string) (uint32, bool) {
	lo, hi := 0, int(idx.numEntries)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		k, _, ok := idx.recordAtIndex(uint32(mid))
		if !ok {
			return 0, false
		}
		switch {
		case k == key:
			return uint32(mid), true
		case k < key:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}

// Get returns the word ordinals associated with key, or nil if absent or on
// any malformed record encountered along the way.
func (idx *Index) Get(key string) []uint32 {
	i, found := idx.search(key)
	if !found {
		return nil
	}
	_, indices, ok := idx.recordAtIndex(i)
	if !ok {
		return nil
	}
	return indices
}

type truncatedError struct{ section string }

func (e truncatedError) Error() string { return "deleteindex: truncated " + e.section }

func errTruncated(section string) error { return truncatedError{section: section} }
