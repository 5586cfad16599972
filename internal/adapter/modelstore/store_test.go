package modelstore

import (
	"encoding/gob"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratikmehata/Sentiment-app/internal/domain"
	"github.com/Pratikmehata/Sentiment-app/internal/ml"
)

func validClassifier() *ml.NaiveBayes {
	return &ml.NaiveBayes{
		ClassLabels:   []int{0, 1},
		ClassLogPrior: []float64{math.Log(0.5), math.Log(0.5)},
		FeatureLogProb: [][]float64{
			{math.Log(0.7), math.Log(0.3)},
			{math.Log(0.3), math.Log(0.7)},
		},
	}
}

func validVectorizer() *ml.TFIDF {
	return &ml.TFIDF{
		Vocabulary: map[string]int{"good": 0, "bad": 1},
		IDF:        []float64{1.2, 1.5},
	}
}

func writeArtifact(t *testing.T, path string, artifact any) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	require.NoError(t, gob.NewEncoder(f).Encode(artifact))
}

func writeValidArtifacts(t *testing.T) (modelPath, vectorizerPath string) {
	t.Helper()
	dir := t.TempDir()
	modelPath = filepath.Join(dir, "naive_bayes.gob")
	vectorizerPath = filepath.Join(dir, "tfidf.gob")
	writeArtifact(t, modelPath, validClassifier())
	writeArtifact(t, vectorizerPath, validVectorizer())
	return modelPath, vectorizerPath
}

func TestLoad_ValidArtifacts(t *testing.T) {
	modelPath, vectorizerPath := writeValidArtifacts(t)

	classifier, vectorizer, err := Load(modelPath, vectorizerPath)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, classifier.Classes())
	assert.Equal(t, 2, vectorizer.FeatureCount())

	// Loaded pair must be usable end to end.
	features, err := vectorizer.Transform("good good bad")
	require.NoError(t, err)
	probs, err := classifier.PredictProba(features)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, probs[0]+probs[1], 1e-9)
}

func TestLoad_MissingModelFile(t *testing.T) {
	_, vectorizerPath := writeValidArtifacts(t)

	_, _, err := Load(filepath.Join(t.TempDir(), "absent.gob"), vectorizerPath)
	require.ErrorIs(t, err, domain.ErrMissingArtifact)
}

func TestLoad_MissingVectorizerFile(t *testing.T) {
	modelPath, _ := writeValidArtifacts(t)

	_, _, err := Load(modelPath, filepath.Join(t.TempDir(), "absent.gob"))
	require.ErrorIs(t, err, domain.ErrMissingArtifact)
}

func TestLoad_CorruptArtifact(t *testing.T) {
	_, vectorizerPath := writeValidArtifacts(t)
	corrupt := filepath.Join(t.TempDir(), "corrupt.gob")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a gob stream"), 0o644))

	_, _, err := Load(corrupt, vectorizerPath)
	require.ErrorIs(t, err, domain.ErrInvalidArtifact)
}

func TestLoad_NonBinaryClassifier(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "naive_bayes.gob")
	vectorizerPath := filepath.Join(dir, "tfidf.gob")

	classifier := validClassifier()
	classifier.ClassLabels = []int{0, 1, 2}
	writeArtifact(t, modelPath, classifier)
	writeArtifact(t, vectorizerPath, validVectorizer())

	_, _, err := Load(modelPath, vectorizerPath)
	require.ErrorIs(t, err, domain.ErrInvalidArtifact)
}

func TestLoad_FeatureDimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "naive_bayes.gob")
	vectorizerPath := filepath.Join(dir, "tfidf.gob")

	vectorizer := &ml.TFIDF{
		Vocabulary: map[string]int{"good": 0, "bad": 1, "fine": 2},
		IDF:        []float64{1.0, 1.0, 1.0},
	}
	writeArtifact(t, modelPath, validClassifier()) // trained on 2 features
	writeArtifact(t, vectorizerPath, vectorizer)   // produces 3

	_, _, err := Load(modelPath, vectorizerPath)
	require.ErrorIs(t, err, domain.ErrInvalidArtifact)
	assert.Contains(t, err.Error(), "features")
}

func TestLoad_EmptyVocabulary(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "naive_bayes.gob")
	vectorizerPath := filepath.Join(dir, "tfidf.gob")

	writeArtifact(t, modelPath, validClassifier())
	writeArtifact(t, vectorizerPath, &ml.TFIDF{})

	_, _, err := Load(modelPath, vectorizerPath)
	require.ErrorIs(t, err, domain.ErrInvalidArtifact)
}

func TestLoad_VocabularyIndexOutOfRange(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "naive_bayes.gob")
	vectorizerPath := filepath.Join(dir, "tfidf.gob")

	vectorizer := &ml.TFIDF{
		Vocabulary: map[string]int{"good": 0, "bad": 5},
		IDF:        []float64{1.0, 1.0},
	}
	writeArtifact(t, modelPath, validClassifier())
	writeArtifact(t, vectorizerPath, vectorizer)

	_, _, err := Load(modelPath, vectorizerPath)
	require.ErrorIs(t, err, domain.ErrInvalidArtifact)
}
