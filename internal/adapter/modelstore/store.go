// Package modelstore loads the serialized classifier and vectorizer
// artifacts from disk at startup and validates them against the domain's
// capability contracts. Loading happens exactly once; there is no retry and
// no reload.
package modelstore

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/Pratikmehata/Sentiment-app/internal/domain"
	"github.com/Pratikmehata/Sentiment-app/internal/ml"
)

// Load reads both artifacts and returns them as read-only capabilities.
// It fails with domain.ErrMissingArtifact if either file is absent and
// domain.ErrInvalidArtifact if either decodes into an unusable or mutually
// incompatible object.
func Load(modelPath, vectorizerPath string) (domain.Classifier, domain.Vectorizer, error) {
	var classifier ml.NaiveBayes
	if err := decodeArtifact(modelPath, &classifier); err != nil {
		return nil, nil, fmt.Errorf("failed to load classifier: %w", err)
	}

	var vectorizer ml.TFIDF
	if err := decodeArtifact(vectorizerPath, &vectorizer); err != nil {
		return nil, nil, fmt.Errorf("failed to load vectorizer: %w", err)
	}

	if err := validate(&classifier, &vectorizer); err != nil {
		return nil, nil, err
	}

	slog.Info("Models loaded successfully",
		"model_path", modelPath,
		"vectorizer_path", vectorizerPath,
		"features", vectorizer.FeatureCount())

	return &classifier, &vectorizer, nil
}

func decodeArtifact(path string, target any) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrMissingArtifact, path)
		}
		return fmt.Errorf("failed to open artifact %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := gob.NewDecoder(f).Decode(target); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidArtifact, path, err)
	}
	return nil
}

// validate performs the capability checks once at load time: the vectorizer
// must have a coherent vocabulary, the classifier must be a fitted binary
// model over classes {0, 1}, and both must agree on feature dimensionality.
func validate(classifier *ml.NaiveBayes, vectorizer *ml.TFIDF) error {
	if len(vectorizer.Vocabulary) == 0 {
		return fmt.Errorf("%w: vectorizer has an empty vocabulary", domain.ErrInvalidArtifact)
	}
	if len(vectorizer.IDF) != len(vectorizer.Vocabulary) {
		return fmt.Errorf("%w: vectorizer has %d idf weights for %d vocabulary terms",
			domain.ErrInvalidArtifact, len(vectorizer.IDF), len(vectorizer.Vocabulary))
	}
	for term, idx := range vectorizer.Vocabulary {
		if idx < 0 || idx >= len(vectorizer.IDF) {
			return fmt.Errorf("%w: vocabulary term %q maps to index %d outside idf range",
				domain.ErrInvalidArtifact, term, idx)
		}
	}

	classes := classifier.Classes()
	if len(classes) != 2 || classes[0] != domain.ClassNegative || classes[1] != domain.ClassPositive {
		return fmt.Errorf("%w: classifier classes %v, want [0 1]", domain.ErrInvalidArtifact, classes)
	}
	if len(classifier.ClassLogPrior) != 2 || len(classifier.FeatureLogProb) != 2 {
		return fmt.Errorf("%w: classifier parameter shape does not match two classes", domain.ErrInvalidArtifact)
	}
	for c, logProb := range classifier.FeatureLogProb {
		if len(logProb) != vectorizer.FeatureCount() {
			return fmt.Errorf("%w: classifier class %d trained on %d features, vectorizer produces %d",
				domain.ErrInvalidArtifact, c, len(logProb), vectorizer.FeatureCount())
		}
	}

	return nil
}
