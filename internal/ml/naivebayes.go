package ml

import (
	"errors"
	"fmt"
	"math"

	"github.com/Pratikmehata/Sentiment-app/internal/domain"
)

// NaiveBayes is a trained multinomial Naive Bayes classifier.
// ClassLogPrior holds one log prior per class; FeatureLogProb holds the
// per-class log probability of each feature. Instances come from a
// serialized artifact and are read-only.
type NaiveBayes struct {
	ClassLabels    []int
	ClassLogPrior  []float64
	FeatureLogProb [][]float64
}

// Classes returns the class labels in the order probabilities are reported.
func (nb *NaiveBayes) Classes() []int {
	return nb.ClassLabels
}

// FeatureCount returns the feature dimensionality the classifier was
// trained on, or 0 if the classifier is empty.
func (nb *NaiveBayes) FeatureCount() int {
	if len(nb.FeatureLogProb) == 0 {
		return 0
	}
	return len(nb.FeatureLogProb[0])
}

// PredictProba computes the class probability distribution for a feature
// vector: joint log likelihood per class, normalized via log-sum-exp so the
// result sums to 1.
func (nb *NaiveBayes) PredictProba(features domain.FeatureVector) ([]float64, error) {
	if len(nb.ClassLabels) == 0 ||
		len(nb.ClassLogPrior) != len(nb.ClassLabels) ||
		len(nb.FeatureLogProb) != len(nb.ClassLabels) {
		return nil, errors.New("classifier is not fitted")
	}

	jll := make([]float64, len(nb.ClassLabels))
	for c := range nb.ClassLabels {
		logProb := nb.FeatureLogProb[c]
		total := nb.ClassLogPrior[c]
		for idx, weight := range features {
			if idx < 0 || idx >= len(logProb) {
				return nil, fmt.Errorf("feature index %d out of range for %d features", idx, len(logProb))
			}
			total += weight * logProb[idx]
		}
		jll[c] = total
	}

	// log-sum-exp keeps the normalization stable for large negative likelihoods
	maxJLL := jll[0]
	for _, v := range jll[1:] {
		if v > maxJLL {
			maxJLL = v
		}
	}
	var sum float64
	probs := make([]float64, len(jll))
	for c, v := range jll {
		probs[c] = math.Exp(v - maxJLL)
		sum += probs[c]
	}
	for c := range probs {
		probs[c] /= sum
	}

	return probs, nil
}
