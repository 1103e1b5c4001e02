package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a last-writer-wins marker attached to every outgoing data message.
// It carries no cross-sender ordering.
type Version struct {
	Owner string
	Seq   uint64
}

func InitialVersion(id ObjectID) Version {
	return Version{Owner: string(id), Seq: 0}
}

func (v Version) String() string {
	return fmt.Sprintf("%s@%d", v.Owner, v.Seq)
}

// ParseVersion reads the "owner@seq" form produced by String.
func ParseVersion(raw string) (Version, error) {
	i := strings.LastIndex(raw, "@")
	if i <= 0 {
		return Version{}, fmt.Errorf("invalid version %q", raw)
	}
	seq, err := strconv.ParseUint(raw[i+1:], 10, 64)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version sequence %q: %w", raw, err)
	}
	return Version{Owner: raw[:i], Seq: seq}, nil
}
