// Package ml holds the concrete model types behind the domain's Classifier
// and Vectorizer contracts: a fitted TF-IDF transform and a Multinomial
// Naive Bayes classifier. Both are plain gob-encodable structs produced by
// an offline training step; this package only implements inference.
package ml
