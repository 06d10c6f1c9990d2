package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eskriett/confusables"
	"github.com/tidwall/gjson"

	"symspell/internal/wordstore"
)

// loadTextDictionary parses a whitespace-separated frequency dictionary:
// "term count" for unigrams, "w1 w2 count" for bigrams. columns is 2 or 3
// accordingly. Each term is passed through confusables.ToSkeleton before
// insertion so near-duplicate Unicode spellings collapse onto one entry.
func loadTextDictionary(path string, columns int) ([]wordstore.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []wordstore.Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < columns {
			continue
		}

		var term, countField string
		if columns == 3 {
			term = fields[0] + " " + fields[1]
			countField = fields[2]
		} else {
			term = fields[0]
			countField = fields[1]
		}

		count, err := strconv.ParseUint(countField, 10, 64)
		if err != nil {
			continue
		}

		entries = append(entries, wordstore.Entry{
			Term:  confusables.ToSkeleton(term),
			Count: count,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// loadJSONDictionary parses a JSON array of {"term": "...", "count": N}
// objects (or, for bigrams, {"w1": "...", "w2": "...", "count": N}) using
// gjson.
func loadJSONDictionary(path string, bigram bool) ([]wordstore.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("symspell: %s is not valid JSON", path)
	}

	var entries []wordstore.Entry
	gjson.ParseBytes(data).ForEach(func(_, value gjson.Result) bool {
		var term string
		if bigram {
			w1 := value.Get("w1").String()
			w2 := value.Get("w2").String()
			if w1 == "" || w2 == "" {
				return true
			}
			term = w1 + " " + w2
		} else {
			term = value.Get("term").String()
			if term == "" {
				return true
			}
		}

		entries = append(entries, wordstore.Entry{
			Term:  confusables.ToSkeleton(term),
			Count: value.Get("count").Uint(),
		})
		return true
	})
	return entries, nil
}
