// Package trigger provides pre-rendered one-shot audio events: a registry of
// trigger greetings and a persistent audio cache keyed by message and voice.
package trigger

import (
	"fmt"
	"strings"
)

// Builtin trigger greetings. {child_name} is substituted before rendering.
var builtinMessages = map[string]string{
	"Morning Wake Up": "Good morning {child_name}! Rise and shine! It's a brand new day full of fun and stories. Are you ready?",
	"Bedtime":         "It's sleepy time, {child_name}! Close your eyes and dream of wonderful adventures. Good night!",
	"Meal Time":       "Yum yum, {child_name}! It's time to eat. Let's finish our food like a champion!",
	"Story Time":      "Hello {child_name}! Are you ready for a wonderful story? Let's snuggle up and begin!",
}

// Registry maps trigger names to their greeting messages.
type Registry struct {
	messages map[string]string
}

// NewRegistry returns a registry with the built-in trigger greetings.
func NewRegistry() *Registry {
	msgs := make(map[string]string, len(builtinMessages))
	for name, msg := range builtinMessages {
		msgs[name] = msg
	}
	return &Registry{messages: msgs}
}

// Add registers or replaces a trigger greeting.
func (r *Registry) Add(name, message string) {
	r.messages[name] = message
}

// Message resolves a trigger name to its greeting with the child's name
// substituted in.
func (r *Registry) Message(name, childName string) (string, error) {
	msg, ok := r.messages[name]
	if !ok {
		return "", fmt.Errorf("trigger: no greeting configured for %q", name)
	}
	return strings.ReplaceAll(msg, "{child_name}", childName), nil
}

// Names lists all configured trigger names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.messages))
	for name := range r.messages {
		names = append(names, name)
	}
	return names
}
