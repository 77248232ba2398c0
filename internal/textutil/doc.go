// Package textutil provides fuzzy matching of user input against a fixed set
// of names, used to suggest a family or field name after a typo.
//
// Names are reduced to character-bigram fingerprints: text is lowercased,
// everything but letters and digits is dropped, and each adjacent pair of
// characters is counted. Two fingerprints are compared by cosine similarity.
package textutil
