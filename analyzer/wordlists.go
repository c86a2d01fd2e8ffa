package analyzer

// Vocabulary used by the heuristic linguistics in metrics.go. The lists
// are fixed; matching is always done on lowercased, punctuation-trimmed
// tokens.

// transitionWords are single-word connectives. A sentence containing any
// of them counts as a transition sentence.
var transitionWords = map[string]bool{
	// Addition
	"additionally": true, "furthermore": true, "moreover": true,
	"also": true, "besides": true, "further": true,
	// Contrast
	"however": true, "nevertheless": true, "nonetheless": true,
	"although": true, "though": true, "despite": true, "yet": true,
	"but": true, "whereas": true, "conversely": true, "instead": true,
	"rather": true, "otherwise": true, "still": true, "unlike": true,
	// Cause and effect
	"therefore": true, "thus": true, "consequently": true, "hence": true,
	"accordingly": true, "because": true, "since": true, "so": true,
	// Sequence
	"first": true, "firstly": true, "second": true, "secondly": true,
	"third": true, "thirdly": true, "next": true, "then": true,
	"finally": true, "subsequently": true, "afterwards": true,
	"afterward": true, "earlier": true, "previously": true,
	"formerly": true, "meanwhile": true, "later": true, "lastly": true,
	"eventually": true,
	// Time and condition
	"when": true, "whenever": true, "while": true, "until": true,
	"unless": true, "before": true,
	// Example
	"specifically": true, "namely": true, "particularly": true,
	"notably": true,
	// Emphasis
	"indeed": true, "certainly": true, "clearly": true, "obviously": true,
	"undoubtedly": true, "importantly": true, "significantly": true,
	"especially": true,
	// Comparison
	"similarly": true, "likewise": true, "equally": true,
	"comparatively": true,
	// Summary
	"overall": true, "altogether": true, "ultimately": true,
}

// transitionPhrases are multi-word connectives, stored pre-tokenized so
// they can be matched against a sentence's word tokens.
var transitionPhrases = [][]string{
	{"as", "a", "result"},
	{"for", "example"},
	{"for", "instance"},
	{"in", "addition"},
	{"in", "fact"},
	{"in", "contrast"},
	{"in", "conclusion"},
	{"in", "short"},
	{"in", "summary"},
	{"in", "particular"},
	{"in", "other", "words"},
	{"in", "the", "meantime"},
	{"on", "the", "other", "hand"},
	{"on", "the", "contrary"},
	{"of", "course"},
	{"at", "first"},
	{"at", "last"},
	{"at", "least"},
	{"at", "the", "same", "time"},
	{"above", "all"},
	{"after", "all"},
	{"all", "in", "all"},
	{"due", "to"},
	{"even", "so"},
	{"even", "though"},
	{"such", "as"},
	{"as", "well", "as"},
	{"to", "begin", "with"},
	{"to", "sum", "up"},
	{"to", "conclude"},
	{"to", "illustrate"},
	{"for", "this", "reason"},
	{"with", "this", "in", "mind"},
}

// passiveAuxiliaries are the "to be" forms that can open a passive
// construction.
var passiveAuxiliaries = map[string]bool{
	"am":    true,
	"is":    true,
	"are":   true,
	"was":   true,
	"were":  true,
	"be":    true,
	"been":  true,
	"being": true,
}

// irregularParticiples are common past participles that do not end in
// "ed". The list is deliberately non-exhaustive; it covers the verbs
// that show up constantly in web copy.
var irregularParticiples = map[string]bool{
	"beaten": true, "become": true, "begun": true, "bent": true,
	"bitten": true, "blown": true, "born": true, "bought": true,
	"broken": true, "brought": true, "built": true, "caught": true,
	"chosen": true, "come": true, "cut": true, "done": true,
	"drawn": true, "driven": true, "eaten": true, "fallen": true,
	"fed": true, "felt": true, "fought": true, "found": true,
	"forgotten": true, "frozen": true, "given": true, "gone": true,
	"grown": true, "heard": true, "held": true, "hidden": true,
	"hit": true, "hurt": true, "kept": true, "known": true,
	"laid": true, "led": true, "left": true, "lent": true,
	"let": true, "lit": true, "lost": true, "made": true,
	"meant": true, "met": true, "paid": true, "proven": true,
	"put": true, "read": true, "ridden": true, "risen": true,
	"run": true, "said": true, "seen": true, "sent": true,
	"set": true, "shaken": true, "shown": true, "shut": true,
	"sold": true, "spent": true, "split": true, "spoken": true,
	"spread": true, "stolen": true, "stood": true, "struck": true,
	"sung": true, "sunk": true, "sworn": true, "taken": true,
	"taught": true, "thought": true, "thrown": true, "told": true,
	"torn": true, "understood": true, "woken": true, "won": true,
	"worn": true, "written": true,
}

// nonParticiples are words that end in "ed" but act as adjectives or
// nouns, not verb participles. They are excluded from passive matching.
var nonParticiples = map[string]bool{
	"hundred":  true,
	"indeed":   true,
	"naked":    true,
	"wicked":   true,
	"sacred":   true,
	"hatred":   true,
	"kindred":  true,
	"crooked":  true,
	"rugged":   true,
	"wretched": true,
}
