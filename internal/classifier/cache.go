// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import "sync"

// Cache memoizes Classify results keyed by input text. The classifier
// itself is stateless; callers that re-classify the same requirements
// repeatedly (interactive review loops, re-imports) own the cache and its
// eviction policy. Safe for concurrent use.
type Cache struct {
	classifier *Classifier

	mu      sync.RWMutex
	results map[string]Result
}

// NewCache wraps a classifier with memoization.
func NewCache(c *Classifier) *Cache {
	return &Cache{
		classifier: c,
		results:    make(map[string]Result),
	}
}

// Classify returns the cached result for text, computing it on first use.
func (m *Cache) Classify(text string) Result {
	m.mu.RLock()
	result, ok := m.results[text]
	m.mu.RUnlock()
	if ok {
		return result
	}

	result = m.classifier.Classify(text)

	m.mu.Lock()
	m.results[text] = result
	m.mu.Unlock()
	return result
}

// Len reports the number of cached entries.
func (m *Cache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.results)
}

// Purge drops every cached entry.
func (m *Cache) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = make(map[string]Result)
}
