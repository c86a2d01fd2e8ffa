package analyzer

import (
	"math"
	"strings"
)

// computeStatistics derives every metric the scorer reads from one
// normalized document. Each metric is computed independently; a zero
// denominator leaves the corresponding ratio at 0 (or nil for the
// Flesch score) instead of producing NaN.
func computeStatistics(doc *document, keyword string) ContentStatistics {
	stats := ContentStatistics{
		WordCount:         len(doc.words),
		SentenceCount:     len(doc.sentences),
		ParagraphCount:    len(doc.paragraphs),
		HeadingCount:      doc.headings,
		InternalLinkCount: doc.internalLinks,
		ExternalLinkCount: doc.externalLinks,
		ImageCount:        doc.imageCount,
		ImagesWithAlt:     doc.imagesWithAlt,
		ImagesMissingAlt:  doc.imageCount - doc.imagesWithAlt,
	}

	for _, word := range doc.words {
		syllables := countSyllables(word)
		stats.SyllableCount += syllables
		if syllables >= 3 {
			stats.ComplexWordCount++
		}
	}

	for _, s := range doc.sentences {
		if isPassiveSentence(s.words) {
			stats.PassiveSentenceCount++
		}
		if hasTransitionWord(s.words) {
			stats.TransitionSentenceCount++
		}
	}

	if stats.SentenceCount > 0 {
		total := float64(stats.SentenceCount)
		stats.AverageSentenceLength = float64(stats.WordCount) / total
		stats.PassiveVoicePercentage = 100 * float64(stats.PassiveSentenceCount) / total
		stats.TransitionWordPercentage = 100 * float64(stats.TransitionSentenceCount) / total
	}
	if stats.ParagraphCount > 0 {
		stats.AverageParagraphLength = float64(stats.WordCount) / float64(stats.ParagraphCount)
	}
	if stats.WordCount > 0 && stats.SentenceCount > 0 {
		flesch := fleschReadingEase(stats.WordCount, stats.SentenceCount, stats.SyllableCount)
		stats.FleschReadingEase = &flesch
	}

	if phrase := tokenizePhrase(keyword); len(phrase) > 0 && stats.WordCount > 0 {
		stats.KeywordCount = countPhrase(doc.words, phrase)
		stats.KeywordDensity = 100 * float64(stats.KeywordCount) / float64(stats.WordCount)
	}

	return stats
}

// fleschReadingEase computes the Flesch Reading Ease formula, rounded
// to two decimals. Callers must ensure words and sentences are nonzero.
func fleschReadingEase(words, sentences, syllables int) float64 {
	wordsPerSentence := float64(words) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(words)
	score := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	return math.Round(score*100) / 100
}

// countSyllables approximates the syllable count of a single word by
// counting vowel groups, with the usual silent-e adjustment and a
// minimum of one. Heuristic, not phonetic ground truth.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	if word == "" {
		return 0
	}

	count := 0
	prevWasVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevWasVowel {
			count++
		}
		prevWasVowel = isVowel
	}

	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

// isPassiveSentence reports whether a sentence looks passive: a "to be"
// auxiliary with a past participle within the next two tokens, allowing
// an adverb in between as in "was quickly eaten". Predicate adjectives
// ("was happy") do not match.
func isPassiveSentence(words []string) bool {
	for i, w := range words {
		if !passiveAuxiliaries[strings.ToLower(w)] {
			continue
		}
		limit := i + 2
		if limit >= len(words) {
			limit = len(words) - 1
		}
		for j := i + 1; j <= limit; j++ {
			if isPastParticiple(strings.ToLower(words[j])) {
				return true
			}
		}
	}
	return false
}

func isPastParticiple(word string) bool {
	if irregularParticiples[word] {
		return true
	}
	if nonParticiples[word] {
		return false
	}
	// The length floor keeps short non-verbs like "red" out.
	return len(word) >= 4 && strings.HasSuffix(word, "ed")
}

// hasTransitionWord reports whether a sentence contains a connective
// from the fixed vocabulary, either as a single word or a phrase.
func hasTransitionWord(words []string) bool {
	lower := make([]string, len(words))
	for i, w := range words {
		lower[i] = strings.ToLower(w)
	}
	for _, w := range lower {
		if transitionWords[w] {
			return true
		}
	}
	for _, phrase := range transitionPhrases {
		if containsPhrase(lower, phrase) {
			return true
		}
	}
	return false
}

// tokenizePhrase normalizes a keyword phrase into lowercase word
// tokens. An empty or punctuation-only phrase yields no tokens.
func tokenizePhrase(phrase string) []string {
	words := tokenizeWords(phrase)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

// countPhrase counts non-overlapping, case-insensitive occurrences of
// phrase inside the token stream.
func countPhrase(words, phrase []string) int {
	if len(phrase) == 0 {
		return 0
	}
	count := 0
	for i := 0; i+len(phrase) <= len(words); {
		if matchPhraseAt(words, phrase, i) {
			count++
			i += len(phrase)
		} else {
			i++
		}
	}
	return count
}

// containsPhrase reports whether phrase occurs anywhere in words.
// The phrase must already be lowercase; words may be any case.
func containsPhrase(words, phrase []string) bool {
	if len(phrase) == 0 {
		return false
	}
	for i := 0; i+len(phrase) <= len(words); i++ {
		if matchPhraseAt(words, phrase, i) {
			return true
		}
	}
	return false
}

func matchPhraseAt(words, phrase []string, at int) bool {
	for k, p := range phrase {
		if strings.ToLower(words[at+k]) != p {
			return false
		}
	}
	return true
}
