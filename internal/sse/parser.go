// Package sse reads and writes the server-sent events wire format.
package sse

import (
	"bytes"
	"strings"
)

// Event is one dispatched server-sent event.
type Event struct {
	ID    string
	Event string
	Data  string
}

// Parser incrementally decodes an SSE byte stream.
// Feed may be called with arbitrary chunk boundaries; partial lines are
// buffered until their terminator arrives. Events are dispatched on the blank
// line that ends them, and only when they carry at least one data field.
type Parser struct {
	onEvent func(Event)

	buf     []byte
	started bool

	data    strings.Builder
	hasData bool
	event   string
	id      string
}

// NewParser creates a Parser that calls onEvent for every complete event.
func NewParser(onEvent func(Event)) *Parser {
	return &Parser{onEvent: onEvent}
}

var bom = []byte("\uFEFF")

// Feed appends chunk to the stream and dispatches every event it completes.
func (p *Parser) Feed(chunk []byte) {
	p.buf = append(p.buf, chunk...)

	if !p.started {
		if len(p.buf) < len(bom) && bytes.HasPrefix(bom, p.buf) {
			return
		}
		p.buf = bytes.TrimPrefix(p.buf, bom)
		p.started = true
	}

	for {
		i := bytes.IndexAny(p.buf, "\r\n")
		if i < 0 {
			break
		}
		next := i + 1
		if p.buf[i] == '\r' {
			// A trailing CR may be the first half of a CRLF split across chunks.
			if next == len(p.buf) {
				break
			}
			if p.buf[next] == '\n' {
				next++
			}
		}
		line := string(p.buf[:i])
		p.buf = p.buf[next:]
		p.processLine(line)
	}

	if len(p.buf) == 0 {
		p.buf = nil
	}
}

func (p *Parser) processLine(line string) {
	if line == "" {
		p.dispatch()
		return
	}
	if strings.HasPrefix(line, ":") {
		return
	}

	field, value, found := strings.Cut(line, ":")
	if found {
		value = strings.TrimPrefix(value, " ")
	}

	switch field {
	case "data":
		if p.hasData {
			p.data.WriteByte('\n')
		}
		p.data.WriteString(value)
		p.hasData = true
	case "event":
		p.event = value
	case "id":
		if !strings.ContainsRune(value, 0) {
			p.id = value
		}
	}
}

func (p *Parser) dispatch() {
	if p.hasData {
		p.onEvent(Event{ID: p.id, Event: p.event, Data: p.data.String()})
	}
	p.data.Reset()
	p.hasData = false
	p.event = ""
}
