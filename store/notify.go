package store

import (
	"sync"

	"github.com/google/uuid"
)

// Table identifies one of the persisted tables in change notifications.
// Task writes are reported under TableLessons since tasks are owned by
// their lesson record.
type Table string

const (
	TableUsers          Table = "users"
	TableCourses        Table = "courses"
	TableLessons        Table = "lessons"
	TableAssignments    Table = "assignments"
	TableMessages       Table = "messages"
	TableWeeklyProgress Table = "weeklyProgress"
	TableNotes          Table = "notes"
)

// Subscribe registers for change notifications on the given tables, or on
// every table when none are named. Consumers re-issue their queries on
// notification; the payload is only the table that changed. The returned
// cancel func releases the subscription and closes the channel.
func (s *Store) Subscribe(tables ...Table) (<-chan Table, func()) {
	return s.notifier.subscribe(tables...)
}

type subscriber struct {
	tables map[Table]bool // empty means all tables
	ch     chan Table
}

type notifier struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]*subscriber
	closed bool
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[uuid.UUID]*subscriber)}
}

func (n *notifier) subscribe(tables ...Table) (<-chan Table, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	sub := &subscriber{tables: make(map[Table]bool), ch: make(chan Table, 16)}
	for _, t := range tables {
		sub.tables[t] = true
	}
	id := uuid.New()
	n.subs[id] = sub

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(sub.ch)
		}
	}
	return sub.ch, cancel
}

func (n *notifier) publish(t Table) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	for _, sub := range n.subs {
		if len(sub.tables) > 0 && !sub.tables[t] {
			continue
		}
		select {
		case sub.ch <- t:
		default: // consumer is behind; it re-queries on the next receive anyway
		}
	}
}

func (n *notifier) close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	for id, sub := range n.subs {
		delete(n.subs, id)
		close(sub.ch)
	}
}

// pendingTables collects the tables touched inside a transaction,
// first-touch order, no duplicates.
type pendingTables struct {
	seen map[Table]bool
	list []Table
}

func (p *pendingTables) add(t Table) {
	if p.seen == nil {
		p.seen = make(map[Table]bool)
	}
	if p.seen[t] {
		return
	}
	p.seen[t] = true
	p.list = append(p.list, t)
}

func (p *pendingTables) tables() []Table { return p.list }
