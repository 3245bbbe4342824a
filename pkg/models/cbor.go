package models

import (
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// CBOR tag numbers assigned by the SurrealDB protocol to its custom types.
const (
	TagNone     uint64 = 6
	TagTable    uint64 = 7
	TagRecordID uint64 = 8
)

var (
	encOnce sync.Once
	encMode cbor.EncMode

	decOnce sync.Once
	decMode cbor.DecMode
)

func surrealEncoder() cbor.EncMode {
	encOnce.Do(func() {
		var err error
		encMode, err = cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
		if err != nil {
			panic(err)
		}
	})
	return encMode
}

func surrealDecoder() cbor.DecMode {
	decOnce.Do(func() {
		var err error
		decMode, err = cbor.DecOptions{DefaultMapType: nil}.DecMode()
		if err != nil {
			panic(err)
		}
	})
	return decMode
}
