package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/timenlp/preprocess"
)

func TestPreprocess_WidthAndCaseFolding(t *testing.T) {
	got := preprocess.Preprocess("ＡＢＣ１２３")
	require.Equal(t, "abc123", got)
}

func TestPreprocess_CollapsesWhitespace(t *testing.T) {
	got := preprocess.Preprocess("  from   9:30   to 11:00  ")
	require.Equal(t, "from 9:30 to 11:00", got)
}

func TestPreprocess_TraditionalToSimplified(t *testing.T) {
	got := preprocess.Preprocess("明天後天")
	require.NotContains(t, got, "後")
}

func TestPreprocess_ComposesDecomposedSequences(t *testing.T) {
	// "e" (U+0065) followed by a combining acute accent (U+0301), NFD
	// form; NFC should compose the pair into the single precomposed
	// rune U+00E9.
	decomposed := "café"
	composed := "café"
	require.Equal(t, composed, preprocess.Preprocess(decomposed))
}

func TestPreprocess_EmptyInput(t *testing.T) {
	got := preprocess.Preprocess("")
	require.Equal(t, "", got)
}
