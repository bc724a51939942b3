package application

import "ideaindex/internal/domain"

// Re-export domain types for use by adapters
type (
	Idea       = domain.Idea
	IndexEntry = domain.IndexEntry
	IndexTable = domain.IndexTable
)
