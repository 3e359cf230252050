package words

import "github.com/kljensen/snowball/english"

// stopWords holds function words and transcript noise that never make a
// useful keyword. Punctuation is stripped before lookup, so contractions are
// listed without their apostrophes.
var stopWords = map[string]struct{}{
	// Articles, conjunctions
	"the": {}, "and": {}, "but": {}, "nor": {}, "yet": {}, "either": {}, "neither": {},
	// Pronouns
	"mine": {}, "yours": {}, "his": {}, "hers": {}, "its": {}, "ours": {}, "theirs": {},
	"they": {}, "them": {}, "their": {}, "you": {}, "your": {}, "she": {}, "her": {}, "him": {},
	"who": {}, "whom": {}, "whose": {}, "what": {}, "which": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "anyone": {}, "everyone": {}, "someone": {}, "something": {},
	"anything": {}, "everything": {}, "nothing": {},
	// Prepositions
	"about": {}, "above": {}, "across": {}, "after": {}, "against": {}, "along": {},
	"among": {}, "around": {}, "before": {}, "behind": {}, "below": {}, "beneath": {},
	"beside": {}, "between": {}, "beyond": {}, "during": {}, "for": {}, "from": {},
	"inside": {}, "into": {}, "near": {}, "off": {}, "onto": {}, "out": {}, "outside": {},
	"over": {}, "through": {}, "toward": {}, "towards": {}, "under": {}, "until": {},
	"upon": {}, "with": {}, "within": {}, "without": {}, "like": {},
	// Auxiliary and modal verbs
	"are": {}, "was": {}, "were": {}, "has": {}, "have": {}, "had": {}, "been": {}, "being": {},
	"does": {}, "did": {}, "doing": {}, "done": {}, "can": {}, "could": {}, "will": {},
	"would": {}, "shall": {}, "should": {}, "may": {}, "might": {}, "must": {},
	// Contractions, de-apostrophized
	"dont": {}, "doesnt": {}, "didnt": {}, "cant": {}, "couldnt": {}, "wont": {},
	"wouldnt": {}, "shouldnt": {}, "isnt": {}, "arent": {}, "wasnt": {}, "werent": {},
	"hasnt": {}, "havent": {}, "hadnt": {}, "youre": {}, "youve": {}, "youll": {}, "youd": {},
	"theyre": {}, "theyve": {}, "theyll": {}, "weve": {}, "thats": {}, "whats": {},
	"theres": {}, "heres": {}, "lets": {}, "ive": {}, "hes": {}, "shes": {},
	// Number words
	"one": {}, "two": {}, "three": {}, "four": {}, "five": {}, "six": {}, "seven": {},
	"eight": {}, "nine": {}, "ten": {}, "hundred": {}, "thousand": {}, "million": {},
	"first": {}, "second": {}, "third": {},
	// Adverbs and fillers common in speech
	"also": {}, "just": {}, "really": {}, "actually": {}, "basically": {}, "literally": {},
	"very": {}, "quite": {}, "pretty": {}, "much": {}, "many": {}, "more": {}, "most": {},
	"some": {}, "any": {}, "all": {}, "each": {}, "every": {}, "other": {}, "another": {},
	"such": {}, "than": {}, "then": {}, "there": {}, "here": {}, "when": {}, "where": {},
	"why": {}, "how": {}, "now": {}, "not": {}, "yes": {}, "yeah": {}, "okay": {},
	"gonna": {}, "wanna": {}, "gotta": {}, "kinda": {}, "sorta": {}, "thing": {},
	"things": {}, "stuff": {}, "lot": {}, "lots": {}, "get": {}, "got": {}, "going": {},
	"know": {}, "mean": {}, "say": {}, "said": {}, "see": {}, "well": {}, "right": {},
	"way": {}, "even": {}, "still": {}, "back": {},
	// Caption annotations
	"music": {}, "applause": {}, "laughter": {}, "inaudible": {},
	// Video platform noise
	"subscribe": {}, "subscribed": {}, "channel": {}, "channels": {}, "video": {},
	"videos": {}, "comment": {}, "comments": {}, "bell": {}, "notification": {},
	"notifications": {}, "click": {}, "link": {}, "description": {}, "hey": {}, "guys": {},
	"welcome": {}, "today": {},
}

// IsStopWord reports whether token is excluded from keyword counts.
// token must already be case folded and stripped of punctuation.
func IsStopWord(token string) bool {
	if _, ok := stopWords[token]; ok {
		return true
	}
	return english.IsStopWord(token)
}
