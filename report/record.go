// Package report carries load progress from a page to the dev server: the
// browser encodes asset events as CBOR records and sends them over a
// websocket, and the server logs and stores them.
package report

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"tractor.dev/jigger/asset"
)

type Record struct {
	Session string          `cbor:"session"`
	Seq     uint64          `cbor:"seq,omitempty"`
	Time    time.Time       `cbor:"time"`
	Type    asset.EventType `cbor:"type"`
	URL     string          `cbor:"url,omitempty"`
	Pending int             `cbor:"pending"`
	Loaded  int             `cbor:"loaded"`
	Err     string          `cbor:"err,omitempty"`
}

func FromEvent(session string, e asset.Event, t time.Time) Record {
	return Record{
		Session: session,
		Time:    t,
		Type:    e.Type,
		URL:     e.URL,
		Pending: e.Pending,
		Loaded:  e.Loaded,
		Err:     e.Err,
	}
}

func Encode(r Record) ([]byte, error) {
	b, err := cbor.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return b, nil
}

func Decode(b []byte) (Record, error) {
	var r Record
	if err := cbor.Unmarshal(b, &r); err != nil {
		return Record{}, fmt.Errorf("decode report: %w", err)
	}
	if r.Session == "" || r.Type == "" {
		return Record{}, fmt.Errorf("decode report: missing session or type")
	}
	return r, nil
}
