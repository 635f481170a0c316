// File: random.go
// Title: Shuffling and Random Sampling
// Description: Fisher-Yates shuffling on copies and sampling drawn from it.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.2.0: Initial implementation

package slicex

import (
	"fmt"
	"math/rand"
	"slices"

	mdwerrors "github.com/msto63/datakit/core/errors"
	"github.com/msto63/datakit/core/result"
	"github.com/msto63/datakit/utils/dotpath"
	"github.com/msto63/datakit/utils/typex"
)

const (
	opShuffle           = "shuffle"
	opShuffleByProperty = "shuffleByProperty"
	opPickRandom        = "pickRandom"
)

// shuffleFunc is replaced in tests to make permutations deterministic
var shuffleFunc = rand.Shuffle

// Shuffle returns a random permutation of items. The input is not modified.
// Nil elements are rejected.
func Shuffle[T any](items []T) result.Result[[]T] {
	return shuffle(opShuffle, items)
}

// ShuffleByProperty shuffles items that all carry a non-nil value at path
func ShuffleByProperty[T any](items []T, path string) result.Result[[]T] {
	for i, item := range items {
		if value, ok := dotpath.Resolve(item, path); !ok || typex.IsNullish(value) {
			return result.Err[[]T](mdwerrors.NotFound(mdwerrors.GroupCollections, opShuffleByProperty, path,
				fmt.Sprintf("Property %q not found on item %d", path, i)))
		}
	}
	return shuffle(opShuffleByProperty, items)
}

func shuffle[T any](operation string, items []T) result.Result[[]T] {
	if len(items) == 0 {
		return result.Err[[]T](emptyInput(operation))
	}
	for i, item := range items {
		if typex.IsNullish(item) {
			return result.Err[[]T](mdwerrors.InvalidInput(mdwerrors.GroupCollections, operation, nil,
				fmt.Sprintf("Unexpected nil element at index %d", i)))
		}
	}

	out := slices.Clone(items)
	shuffleFunc(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return result.Ok(out)
}

// PickRandom draws quantity distinct positions of items at random
func PickRandom[T Scalar](items []T, quantity int) result.Result[[]T] {
	if len(items) == 0 {
		return result.Err[[]T](emptyInput(opPickRandom))
	}
	if quantity < 1 || quantity > len(items) {
		return result.Err[[]T](mdwerrors.OutOfRange(mdwerrors.GroupCollections, opPickRandom, quantity, 1, len(items)))
	}
	return result.Map(shuffle(opPickRandom, items), func(shuffled []T) []T {
		return shuffled[:quantity]
	})
}

// PickOne draws a single random element
func PickOne[T Scalar](items []T) result.Result[T] {
	return result.Map(PickRandom(items, 1), func(picked []T) T {
		return picked[0]
	})
}
