// Copyright (C) 2026 vincentzreo. All Rights Reserved.

// Package accesslog parses single lines of the nginx combined access
// log format into flat records. It is a line-oriented, fixed-field
// extractor, independent of the value-tree parsers in this module.
package accesslog

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// An Entry is the parsed form of one access log line.
type Entry struct {
	RemoteAddr string    // client address
	Time       time.Time // local time of the request
	Method     string    // request method, e.g. "GET"
	URL        string    // request target
	Protocol   string    // protocol version, e.g. "HTTP/1.1"
	Status     int       // response status code
	BodyBytes  int64     // bytes sent, excluding headers
	Referer    string    // "Referer" request header, or "-"
	UserAgent  string    // "User-Agent" request header, or "-"
}

// The combined log format:
//
//	$remote_addr - $remote_user [$time_local] "$request"
//	$status $body_bytes_sent "$http_referer" "$http_user_agent"
var lineRE = regexp.MustCompile(`^(\S+)\s+\S+\s+\S+\s+` + // address, ident, user
	`\[([^\]]+)\]\s+` + // timestamp
	`"(\S+)\s+(\S+)\s+([^"]+)"\s+` + // request line
	`(\d+)\s+(\d+)\s+` + // status, bytes
	`"([^"]+)"\s+"([^"]+)"$`) // referer, user agent

const timeLayout = "02/Jan/2006:15:04:05 -0700"

// Parse parses one log line into an Entry. A line that does not have
// the combined format, or whose timestamp or numeric fields do not
// convert, yields an error and no partial record.
func Parse(line string) (*Entry, error) {
	m := lineRE.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("malformed log line %q", line)
	}
	when, err := time.Parse(timeLayout, m[2])
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}
	status, err := strconv.Atoi(m[6])
	if err != nil {
		return nil, fmt.Errorf("invalid status: %w", err)
	}
	bytes, err := strconv.ParseInt(m[7], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid byte count: %w", err)
	}
	return &Entry{
		RemoteAddr: m[1],
		Time:       when,
		Method:     m[3],
		URL:        m[4],
		Protocol:   m[5],
		Status:     status,
		BodyBytes:  bytes,
		Referer:    m[8],
		UserAgent:  m[9],
	}, nil
}
