package story

import (
	"fmt"
	"strings"
)

// Library is the read-only set of stories known to the server.
type Library struct {
	stories map[string]*Story
}

// NewLibrary returns a library pre-populated with the built-in stories.
func NewLibrary() *Library {
	lib := &Library{stories: make(map[string]*Story)}
	lib.Add(cinderella())
	return lib
}

// Add registers a story, replacing any existing story with the same id.
func (l *Library) Add(s *Story) {
	l.stories[strings.ToLower(s.ID)] = s
}

// Get returns the story with the given id.
func (l *Library) Get(id string) (*Story, error) {
	s, ok := l.stories[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("story: unknown story %q", id)
	}
	return s, nil
}

// List returns all known story ids.
func (l *Library) List() []string {
	ids := make([]string, 0, len(l.stories))
	for id := range l.stories {
		ids = append(ids, id)
	}
	return ids
}
