package sse

import (
	"reflect"
	"testing"
)

func collect(chunks ...string) []Event {
	var events []Event
	p := NewParser(func(ev Event) {
		events = append(events, ev)
	})
	for _, c := range chunks {
		p.Feed([]byte(c))
	}
	return events
}

func TestParser_Feed(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   []Event
	}{
		{
			name:   "single event",
			chunks: []string{"data: hello\n\n"},
			want:   []Event{{Data: "hello"}},
		},
		{
			name:   "event split across chunks",
			chunks: []string{"da", "ta: {\"a\":", "1}\n", "\n"},
			want:   []Event{{Data: `{"a":1}`}},
		},
		{
			name:   "crlf terminators split between chunks",
			chunks: []string{"data: one\r", "\n\r", "\ndata: two\r\n\r\n"},
			want:   []Event{{Data: "one"}, {Data: "two"}},
		},
		{
			name:   "bare cr terminators",
			chunks: []string{"data: one\r\rdata: two\r\r"},
			want:   []Event{{Data: "one"}},
		},
		{
			name:   "multiple data lines are joined",
			chunks: []string{"data: a\ndata: b\n\n"},
			want:   []Event{{Data: "a\nb"}},
		},
		{
			name:   "comments and unknown fields ignored",
			chunks: []string{": keepalive\nretry: 10\nfoo: bar\ndata: x\n\n"},
			want:   []Event{{Data: "x"}},
		},
		{
			name:   "event and id fields",
			chunks: []string{"event: token\nid: 7\ndata: x\n\n"},
			want:   []Event{{ID: "7", Event: "token", Data: "x"}},
		},
		{
			name:   "value without space after colon",
			chunks: []string{"data:x\n\n"},
			want:   []Event{{Data: "x"}},
		},
		{
			name:   "blank line without data dispatches nothing",
			chunks: []string{"event: ping\n\n"},
			want:   nil,
		},
		{
			name:   "unterminated trailing event is not dispatched",
			chunks: []string{"data: done\n\ndata: partial"},
			want:   []Event{{Data: "done"}},
		},
		{
			name:   "byte order mark stripped across chunks",
			chunks: []string{"\xEF\xBB", "\xBFdata: x\n\n"},
			want:   []Event{{Data: "x"}},
		},
		{
			name:   "multibyte rune split across chunks",
			chunks: []string{"data: caf\xC3", "\xA9\n\n"},
			want:   []Event{{Data: "café"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(tt.chunks...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Feed() events = %#v, want %#v", got, tt.want)
			}
		})
	}
}
