package dispatch

import "github.com/signadot/streamdispatch/stream"

// skipState is either scanning (depth 0) or skipping a container of
// kind that has depth unclosed containers, counting nested ones of
// either kind.
type skipState struct {
	kind  stream.Token
	depth int
}

func (s *skipState) skipping() bool {
	return s.depth > 0
}

func (s *skipState) enter(kind stream.Token) {
	s.kind = kind
	s.depth = 1
}

// account updates the depth for a token read while skipping.
func (s *skipState) account(tok stream.Token) {
	switch {
	case tok.IsBegin():
		s.depth++
	case tok.IsEnd():
		s.depth--
		if s.depth == 0 {
			s.kind = stream.None
		}
	}
}
