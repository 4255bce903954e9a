package services

import (
	"sync"
)

// Broadcaster fans reminder notifications out to subscribed listeners
// (the reminder WebSocket handler, mainly). Slow subscribers drop
// messages rather than block the scanner.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[chan string]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[chan string]struct{}),
	}
}

// Subscribe registers a new listener channel.
func (b *Broadcaster) Subscribe() chan string {
	ch := make(chan string, 16)
	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener and closes its channel.
func (b *Broadcaster) Unsubscribe(ch chan string) {
	b.mu.Lock()
	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish delivers a message to every subscriber without blocking.
func (b *Broadcaster) Publish(message string) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subscribers {
		select {
		case ch <- message:
		default:
		}
	}
}
