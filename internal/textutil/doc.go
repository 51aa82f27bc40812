// Package textutil turns free-form card text into matchable keys and scores
// keys against each other.
//
// Normalize folds diacritics, lowercases, drops domain stopwords such as
// "falls" or "river", and removes everything outside [a-z0-9], so
// "Upper Tahquamenon Falls" and "Tahquamenon" share the key "tahquamenon".
// Score ranks a catalog key against normalized page text: containment first,
// then the longest run of key characters that all occur in the text.
//
// Both functions are pure; callers treat an empty key as unmatchable.
package textutil
