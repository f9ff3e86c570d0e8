package moderation

// profanity is the fixed banned-word set. Tokens are stored lower-case; the
// caller lower-cases input before lookup. The list is intentionally short and
// exact-match only; creative spellings are accepted rather than risking
// false positives on ordinary words.
var profanity = map[string]struct{}{
	"arse":        {},
	"arsehole":    {},
	"asshole":     {},
	"bastard":     {},
	"bitch":       {},
	"bollocks":    {},
	"bullshit":    {},
	"cock":        {},
	"crap":        {},
	"cunt":        {},
	"dick":        {},
	"dickhead":    {},
	"dipshit":     {},
	"fuck":        {},
	"fucked":      {},
	"fucker":      {},
	"fucking":     {},
	"goddamn":     {},
	"jackass":     {},
	"motherfucker": {},
	"piss":        {},
	"prick":       {},
	"pussy":       {},
	"shit":        {},
	"shite":       {},
	"shitty":      {},
	"slut":        {},
	"twat":        {},
	"wanker":      {},
	"whore":       {},
}
