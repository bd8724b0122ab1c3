// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"strings"
	"unicode/utf8"

	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/usecase"

	"github.com/pkg/errors"
)

// maxNameLength mirrors the column limit on recipe titles and on
// tag/ingredient names in the store schema.
const maxNameLength = 255

// validateName checks a single tag/ingredient name against the store limits.
// kind is only used to label the validation detail.
func validateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails(kind + " name must not be blank")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return domainerrors.ErrValidationFailed.WithDetails(kind + " name exceeds the maximum length")
	}

	return nil
}

// dedupedNames validates a submitted name list and collapses duplicates while
// preserving first-seen order. Matching is exact and case-sensitive.
func dedupedNames(kind string, refs []usecase.NamedRef) ([]string, error) {
	seen := make(map[string]struct{}, len(refs))
	names := make([]string, 0, len(refs))

	for _, ref := range refs {
		if err := validateName(kind, ref.Name); err != nil {
			return nil, err
		}
		if _, ok := seen[ref.Name]; ok {
			continue
		}
		seen[ref.Name] = struct{}{}
		names = append(names, ref.Name)
	}

	return names, nil
}

// reconcile resolves each name to an owned entity reference, reusing an
// existing entity on an exact match and creating a missing one otherwise.
// The find/create closures run on transaction-bound repositories, so any
// failure aborts every write of the enclosing recipe operation and newly
// created entities are visible to later lookups in the same request.
func reconcile[T any](
	ctx context.Context,
	names []string,
	notFound error,
	find func(ctx context.Context, name string) (T, error),
	create func(ctx context.Context, name string) (T, error),
) ([]T, error) {
	resolved := make([]T, 0, len(names))

	for _, name := range names {
		existing, err := find(ctx, name)
		if err == nil {
			resolved = append(resolved, existing)

			continue
		}
		if !errors.Is(err, notFound) {
			return nil, errors.Wrapf(err, "failed to look up %q", name)
		}

		created, err := create(ctx, name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create %q", name)
		}
		resolved = append(resolved, created)
	}

	return resolved, nil
}
