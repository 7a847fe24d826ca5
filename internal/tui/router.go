// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Router tracks the view on screen and lets code outside the UI goroutine
// switch views. It implements adapter.Navigator.
type Router struct {
	mu      sync.Mutex
	current string
	send    func(tea.Msg)
}

// NewRouter returns a router showing start.
func NewRouter(start string) *Router {
	return &Router{current: start}
}

// Current returns the name of the view on screen.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate switches to view. Navigating to the current view is a no-op.
// It must not be called from Update: the program delivers the switch
// through its message loop.
func (r *Router) Navigate(view string) {
	r.mu.Lock()
	if view == r.current {
		r.mu.Unlock()
		return
	}
	r.current = view
	send := r.send
	r.mu.Unlock()

	if send != nil {
		send(NavigateTo{Page: view})
	}
}

// attach routes navigation into a running program.
func (r *Router) attach(send func(tea.Msg)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.send = send
}

// set records a switch made by the root model itself.
func (r *Router) set(view string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = view
}
