package domain

import "context"

// KV is the persistent key-value collaborator: a string-keyed JSON
// blob store scoped to the device. No transactions, no schema. Get
// reports presence separately from errors so absent keys are not an
// error condition.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// RecipeResolver resolves a recipe id to full content. The static
// catalog implements this; the guided session tracker depends on it to
// learn a recipe's step count and cover.
type RecipeResolver interface {
	Resolve(id string) (*Recipe, bool)
}
