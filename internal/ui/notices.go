package ui

import (
	"sync"
	"time"
)

// NoticeBoard stores short-lived user-facing messages keyed by the form or
// section they belong to. Messages expire on their own, mirroring inline
// errors that auto-dismiss after a few seconds.
type NoticeBoard struct {
	mu      sync.Mutex
	now     func() time.Time
	ttl     time.Duration
	entries map[string]noticeEntry
}

type noticeEntry struct {
	message   string
	expiresAt time.Time
}

// NewNoticeBoard constructs a notice board. A non-positive ttl falls back to
// five seconds, the auto-dismiss interval of the original forms.
func NewNoticeBoard(ttl time.Duration, now func() time.Time) *NoticeBoard {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	if now == nil {
		now = time.Now
	}
	return &NoticeBoard{
		now:     now,
		ttl:     ttl,
		entries: make(map[string]noticeEntry),
	}
}

// Post records a message under the given key, replacing any previous one.
func (b *NoticeBoard) Post(key, message string) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pruneLocked()
	b.entries[key] = noticeEntry{message: message, expiresAt: b.now().Add(b.ttl)}
}

// Active returns the message under the given key when it has not expired yet.
// Expired entries are dropped on read.
func (b *NoticeBoard) Active(key string) (string, bool) {
	if b == nil {
		return "", false
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.entries[key]
	if !ok {
		return "", false
	}
	if !entry.expiresAt.After(b.now()) {
		delete(b.entries, key)
		return "", false
	}
	return entry.message, true
}

// Clear removes the message under the given key.
func (b *NoticeBoard) Clear(key string) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.entries, key)
}

func (b *NoticeBoard) pruneLocked() {
	now := b.now()
	for key, entry := range b.entries {
		if !entry.expiresAt.After(now) {
			delete(b.entries, key)
		}
	}
}
