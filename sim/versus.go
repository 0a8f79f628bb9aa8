package sim

import "github.com/lixenwraith/mazechase/event"

// Port is one game's end of an in-process versus link
type Port struct {
	inbox       *event.Queue
	peer        *Port
	waiting     bool // own state, announced to the peer on change
	peerWaiting bool // last state announced by the peer
}

// Pair links two games so either can challenge the other from the start screen
func Pair(a, b *Game) {
	pa := &Port{inbox: event.NewMailbox()}
	pb := &Port{inbox: event.NewMailbox()}
	pa.peer = pb
	pb.peer = pa
	a.port = pa
	b.port = pb
}

// PeerWaiting reports whether the peer's last announcement was that it waits for an opponent
func (p *Port) PeerWaiting() bool {
	return p != nil && p.peerWaiting
}

// setWaiting records the local wait state and announces changes to the peer
func (p *Port) setWaiting(waiting bool, tick int) {
	if p == nil || p.waiting == waiting {
		return
	}
	p.waiting = waiting
	if waiting {
		p.Send(event.EventPeerWaiting, tick)
	} else {
		p.Send(event.EventPeerIdle, tick)
	}
}

// Send delivers a message into the peer's mailbox
func (p *Port) Send(t event.EventType, tick int) {
	if p == nil || p.peer == nil {
		return
	}
	p.peer.inbox.Emit(t, nil, tick)
}

// Paired reports whether the game is linked to a peer at all
func (g *Game) Paired() bool {
	return g.port != nil
}

// drainMailbox applies the peer's messages before the tick runs
func (g *Game) drainMailbox() {
	if g.port == nil {
		return
	}
	for _, msg := range g.port.inbox.Consume() {
		switch msg.Type {
		case event.EventPairRequest:
			g.versus = true
		case event.EventPeerWaiting:
			g.port.peerWaiting = true
		case event.EventPeerIdle:
			g.port.peerWaiting = false
		case event.EventEndSession:
			if g.versus {
				g.hit = true
				g.lives = 0
			}
		}
	}
}
