package domain

// FeatureVector is a sparse text feature representation: feature index to
// weight. Indices refer to the vectorizer's vocabulary.
type FeatureVector map[int]float64

// Vectorizer is a fitted text-to-feature transform. Implementations are
// immutable after load and safe for concurrent use.
type Vectorizer interface {
	// FeatureCount returns the dimensionality of the output space.
	FeatureCount() int
	// Transform maps raw text to a feature vector.
	Transform(text string) (FeatureVector, error)
}

// Classifier is a trained probabilistic classifier. Implementations are
// immutable after load and safe for concurrent use.
type Classifier interface {
	// Classes returns the class labels in probability order.
	Classes() []int
	// PredictProba returns one probability per class, summing to 1.
	PredictProba(features FeatureVector) ([]float64, error)
}
