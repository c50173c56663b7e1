// Package presence keeps track of who is around in a chat channel for
// platforms that have no voice roster of their own.
package presence

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/samber/lo"

	"squadBot/internal/domain"
)

type roomKey struct {
	platform  domain.Platform
	channelID string
}

type member struct {
	name      string
	firstSeen time.Time
	lastSeen  time.Time
}

// Tracker records chatters per channel and reports the ones seen within the
// configured window, in order of arrival.
type Tracker struct {
	window time.Duration
	now    func() time.Time

	mu    sync.RWMutex
	rooms map[roomKey]map[string]*member
}

func NewTracker(window time.Duration) *Tracker {
	return &Tracker{
		window: window,
		now:    time.Now,
		rooms:  make(map[roomKey]map[string]*member),
	}
}

// Touch marks the author of msg as present in its channel.
func (t *Tracker) Touch(msg domain.Message) {
	if t == nil || msg.Username == "" {
		return
	}
	id := msg.UserID
	if id == "" {
		id = msg.Username
	}
	key := roomKey{platform: msg.Platform, channelID: msg.ChannelID}
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	room, ok := t.rooms[key]
	if !ok {
		room = make(map[string]*member)
		t.rooms[key] = room
	}
	t.pruneLocked(room, now)

	m, ok := room[id]
	if !ok {
		m = &member{firstSeen: now}
		room[id] = m
	}
	m.name = msg.Username
	m.lastSeen = now
}

// Active returns the names seen in the channel within the window.
func (t *Tracker) Active(platform domain.Platform, channelID string) []string {
	if t == nil {
		return nil
	}
	now := t.now()

	t.mu.RLock()
	defer t.mu.RUnlock()

	room := t.rooms[roomKey{platform: platform, channelID: channelID}]
	active := lo.Filter(lo.Values(room), func(m *member, _ int) bool {
		return t.alive(m, now)
	})
	slices.SortFunc(active, func(a, b *member) int {
		if c := a.firstSeen.Compare(b.firstSeen); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})
	return lo.Map(active, func(m *member, _ int) string {
		return m.name
	})
}

func (t *Tracker) alive(m *member, now time.Time) bool {
	return now.Sub(m.lastSeen) <= t.window
}

func (t *Tracker) pruneLocked(room map[string]*member, now time.Time) {
	for id, m := range room {
		if !t.alive(m, now) {
			delete(room, id)
		}
	}
}
