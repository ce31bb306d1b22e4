package detect

import (
	_ "embed"
	"encoding/json"
	"strings"
)

//go:embed buzzwords.json
var buzzwordsJSON []byte

// buzzwords is the fixed marketing-speak lexicon matched token-by-token.
// "proven track record" and "results-driven" are kept verbatim even though
// single-token matching can never hit them; pruning or phrase-matching them
// would shift every density-derived score.
var buzzwords = loadBuzzwords()

func loadBuzzwords() map[string]struct{} {
	var raw []string
	if err := json.Unmarshal(buzzwordsJSON, &raw); err != nil {
		panic("detect: bad buzzwords.json: " + err.Error())
	}
	set := make(map[string]struct{}, len(raw))
	for _, w := range raw {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return set
}

// LexiconSize reports how many entries the embedded buzzword set carries.
func LexiconSize() int {
	return len(buzzwords)
}
