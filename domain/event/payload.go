package event

import "datashare/domain"

// Payload is the logical wire shape exchanged between copies of one object.
type Payload interface {
	isPayload()
}

// Data is an application message stamped with the sender's Version.
// A nil Body means the message carried no data.
type Data struct {
	Version domain.Version
	Body    []byte
}

// Pause asks every peer to enter the paused overlay.
type Pause struct{}

// Paused acknowledges a Pause.
type Paused struct{}

// Resume withdraws a previous Pause.
type Resume struct{}

func (Data) isPayload()   {}
func (Pause) isPayload()  {}
func (Paused) isPayload() {}
func (Resume) isPayload() {}
