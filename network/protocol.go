package network

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/hook-miner/engine"
	"github.com/lixenwraith/hook-miner/event"
)

// Format selects the wire encoding of a subscriber
type Format uint8

const (
	FormatJSON Format = iota
	FormatMsgpack
)

func (f Format) String() string {
	if f == FormatMsgpack {
		return "msgpack"
	}
	return "json"
}

// ParseFormat reads the format query value; empty means JSON
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "msgpack":
		return FormatMsgpack, nil
	}
	return FormatJSON, fmt.Errorf("unknown format %q", s)
}

// ContentType is the HTTP content type for f
func (f Format) ContentType() string {
	if f == FormatMsgpack {
		return "application/msgpack"
	}
	return "application/json"
}

// MessageType is the websocket frame type for f
func (f Format) MessageType() int {
	if f == FormatMsgpack {
		return websocket.BinaryMessage
	}
	return websocket.TextMessage
}

// Encode serializes v in format f
func Encode(f Format, v any) ([]byte, error) {
	if f == FormatMsgpack {
		return msgpack.Marshal(v)
	}
	return json.Marshal(v)
}

// Frame is one server-to-subscriber message
type Frame struct {
	Type     string            `json:"type" msgpack:"type"`
	Snapshot *engine.Snapshot  `json:"snapshot" msgpack:"snapshot"`
	Events   []event.GameEvent `json:"events,omitempty" msgpack:"events,omitempty"`
}

// ClientMessage is a subscriber-to-server command
type ClientMessage struct {
	Command string `json:"command" msgpack:"command"`
	Index   int    `json:"index,omitempty" msgpack:"index,omitempty"`
}

// DecodeCommand parses a command frame in format f
func DecodeCommand(f Format, data []byte) (engine.Command, error) {
	var msg ClientMessage
	var err error
	if f == FormatMsgpack {
		err = msgpack.Unmarshal(data, &msg)
	} else {
		err = json.Unmarshal(data, &msg)
	}
	if err != nil {
		return engine.Command{}, fmt.Errorf("decode command: %w", err)
	}

	switch msg.Command {
	case "shoot":
		return engine.Command{Kind: engine.CommandShoot}, nil
	case "confirm":
		return engine.Command{Kind: engine.CommandConfirm}, nil
	case "select_skill":
		return engine.Command{Kind: engine.CommandSelectSkill, Index: msg.Index}, nil
	}
	return engine.Command{}, fmt.Errorf("unknown command %q", msg.Command)
}
