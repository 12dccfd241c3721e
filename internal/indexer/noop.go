package indexer

import (
	"context"

	"github.com/goliatone/go-news-intake/pkg/interfaces"
)

type noopBuilder struct{}

func (noopBuilder) Rebuild(context.Context) error { return nil }

type noopCommitter struct{}

func (noopCommitter) Commit(context.Context, string, ...string) error { return nil }

// NoOpBuilder returns an IndexBuilder that does nothing. Used when no index
// tooling is configured at all.
func NoOpBuilder() interfaces.IndexBuilder { return noopBuilder{} }

// NoOpCommitter returns a RepositoryCommitter that does nothing. Used when
// VCS integration is disabled.
func NoOpCommitter() interfaces.RepositoryCommitter { return noopCommitter{} }
