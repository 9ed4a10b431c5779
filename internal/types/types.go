package types

import "github.com/gorilla/websocket"

// Kind discriminates the frames a session can receive.
// Only text frames carry a payload the program acts on.
type Kind int

const (
	KindText Kind = iota
	KindBinary
	KindPing
	KindPong
	KindClose
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	case KindPing:
		return "ping"
	case KindPong:
		return "pong"
	case KindClose:
		return "close"
	default:
		return "unknown"
	}
}

// KindOf maps a gorilla/websocket message type to a Kind.
func KindOf(messageType int) Kind {
	switch messageType {
	case websocket.TextMessage:
		return KindText
	case websocket.BinaryMessage:
		return KindBinary
	case websocket.PingMessage:
		return KindPing
	case websocket.PongMessage:
		return KindPong
	case websocket.CloseMessage:
		return KindClose
	default:
		return KindUnknown
	}
}

// Kinds lists every known kind in display order.
var Kinds = []Kind{KindText, KindBinary, KindPing, KindPong, KindClose}
