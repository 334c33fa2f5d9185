package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "", Clean("   \n\t  "))
	assert.Equal(t, "a b c", Clean("a\r\nb\nc"))
	assert.Equal(t, "one two", Clean("  one    two  "))
}

func TestSentences(t *testing.T) {
	assert.Nil(t, Sentences(""))

	got := Sentences("I was in a car accident. My neck hurts! Is it serious?")
	assert.Equal(t, []string{
		"I was in a car accident.",
		"My neck hurts!",
		"Is it serious?",
	}, got)

	// No terminal punctuation: one sentence.
	assert.Equal(t, []string{"no punctuation here"}, Sentences("no punctuation here"))
}

func TestLooksInterrogative(t *testing.T) {
	assert.True(t, LooksInterrogative("Will it heal?"))
	assert.True(t, LooksInterrogative("how long until recovery"))
	assert.False(t, LooksInterrogative("My back hurts."))
}

func TestCleanCapture(t *testing.T) {
	assert.Equal(t, "Occasional backaches", CleanCapture("  have occasional backaches "))
	assert.Equal(t, "Better", CleanCapture("feel better"))
	assert.Equal(t, "", CleanCapture("   "))
}

func TestStripTitle(t *testing.T) {
	assert.Equal(t, "Jones", StripTitle("Ms. Jones"))
	assert.Equal(t, "Jones", StripTitle("mr Jones"))
	assert.Equal(t, "Janet Jones", StripTitle("Dr. Janet Jones"))
	assert.Equal(t, "Janet", StripTitle("Janet"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 0))
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))

	// Rune-safe, not byte-safe.
	assert.Equal(t, "hél", Truncate("héllo", 3))
}
