// Package logparse converts raw combined-log-format lines into Records.
// Extraction is positional over whitespace tokens, matching the field
// layout every Apache/Nginx access log shares:
//
//	127.0.0.1 - - [10/Oct/2020:13:55:36 +0000] "GET /index.html HTTP/1.1" 200 1024 "-" "Mozilla/5.0"
//
// Malformed input never terminates the caller; each bad line yields a
// typed *ParseError and is skipped.
package logparse

import (
	"strconv"
	"strings"
	"time"

	"github.com/tinytelemetry/grist/internal/model"
)

// TimeLayout is the fixed timestamp layout of the combined log format,
// after the surrounding brackets are stripped.
const TimeLayout = "02/Jan/2006:15:04:05 -0700"

// minFields is the smallest token count a combined-format line can
// have; the user-agent tail (token 11 onward) may be absent.
const minFields = 11

// Token positions within a whitespace-split combined-format line.
const (
	fieldIP      = 0
	fieldDate    = 3 // "[10/Oct/2020:13:55:36"
	fieldZone    = 4 // "+0000]"
	fieldMethod  = 5
	fieldURL     = 6
	fieldStatus  = 8
	fieldSize    = 9
	fieldReferer = 10
	fieldAgent   = 11 // through end of line
)

// ParseLine parses one raw line into a Record. lineNum is used only for
// error reporting. On malformed input it returns a *ParseError; the
// record is then nil and the caller skips the line.
func ParseLine(line string, lineNum int) (*model.Record, error) {
	fields := strings.Fields(line)
	if len(fields) < minFields {
		return nil, &ParseError{Kind: TooFewFields, Line: lineNum}
	}

	stamp := fields[fieldDate] + " " + fields[fieldZone]
	ts, err := time.Parse(TimeLayout, strings.Trim(stamp, "[]"))
	if err != nil {
		return nil, &ParseError{Kind: BadTimestamp, Line: lineNum, Err: err}
	}

	// Status and size normalize to 0 when unparsable; "-" is the
	// log's own spelling for a missing size.
	status, _ := strconv.Atoi(fields[fieldStatus])
	var size int64
	if fields[fieldSize] != "-" {
		size, _ = strconv.ParseInt(fields[fieldSize], 10, 64)
	}

	var agent string
	if len(fields) > fieldAgent {
		agent = unquote(strings.Join(fields[fieldAgent:], " "))
	}

	return &model.Record{
		IP:        fields[fieldIP],
		Timestamp: ts,
		Stamp:     stamp,
		Method:    unquote(fields[fieldMethod]),
		URL:       fields[fieldURL],
		Status:    status,
		Size:      size,
		Referer:   unquote(fields[fieldReferer]),
		Agent:     agent,
		Raw:       line,
	}, nil
}

// unquote strips the surrounding double quotes the request-line,
// referer and agent fields carry in the raw log.
func unquote(s string) string {
	return strings.Trim(s, `"`)
}
