package client

import (
	"sync"

	"github.com/marmos91/blockstor/pkg/proto"
)

// replyTable demultiplexes the single receive stream back to waiting
// callers. The receiver goroutine is the only producer; each waiting caller
// consumes exactly one entry and removes it.
//
// A table belongs to one session. Closing it releases every waiter with a
// nil reply list; callers tell that apart from a genuinely empty reply by
// checking the session's connected state afterwards.
type replyTable struct {
	mu      sync.Mutex
	cond    *sync.Cond
	replies map[uint64][]proto.Message
	closed  bool
}

func newReplyTable() *replyTable {
	t := &replyTable{
		replies: make(map[uint64][]proto.Message),
	}
	t.cond = sync.NewCond(&t.mu)
	return t
}

// deposit stores the replies for a message id and wakes all waiters.
// Replies for ids nobody sent are retained; they are harmless and die with
// the session, matching the controller's at-most-one-reply contract.
func (t *replyTable) deposit(msgID uint64, replies []proto.Message) {
	t.mu.Lock()
	t.replies[msgID] = replies
	t.mu.Unlock()
	t.cond.Broadcast()
}

// await blocks until a reply for msgID arrives or the table is closed.
// The entry is removed before returning. Returns nil after close.
func (t *replyTable) await(msgID uint64) []proto.Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	for {
		if replies, ok := t.replies[msgID]; ok {
			delete(t.replies, msgID)
			return replies
		}
		if t.closed {
			return nil
		}
		t.cond.Wait()
	}
}

// close releases all waiters. Pending entries are not drained; the session
// is gone and nobody will consume them.
func (t *replyTable) close() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	t.cond.Broadcast()
}
