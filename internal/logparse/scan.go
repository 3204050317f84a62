package logparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/tinytelemetry/grist/internal/model"
)

// maxLineBytes caps a single log line at 1 MiB.
const maxLineBytes = 1024 * 1024

// ScanRecords reads r line by line, parses each line, and hands every
// successful Record to emit. Records are produced lazily; nothing is
// retained here, so memory stays bounded for very large files.
//
// Malformed lines are skipped: each one is logged with its line number
// and tallied per kind in the returned SkipCounts. Only a read failure
// (not a parse failure) returns a non-nil error.
func ScanRecords(r io.Reader, emit func(*model.Record)) (model.SkipCounts, error) {
	var skipped model.SkipCounts

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		record, err := ParseLine(scanner.Text(), lineNum)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				switch perr.Kind {
				case TooFewFields:
					skipped.TooFewFields++
				case BadTimestamp:
					skipped.BadTimestamp++
				}
				log.Printf("skipping malformed line: %v", perr)
				continue
			}
			return skipped, err
		}
		emit(record)
	}

	if err := scanner.Err(); err != nil {
		return skipped, fmt.Errorf("reading input: %w", err)
	}
	return skipped, nil
}
