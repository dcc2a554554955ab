package subgame

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/paulhankin/poker"
)

const unknownBucket = "unknown"

// BucketHoleCards maps hole cards given as rank+suit codes (e.g. "Ah", "Kd")
// to a coarse abstraction key: "pair-<rank>" for pocket pairs, otherwise
// the two lowest codes concatenated with "s" (suited) or "o" (offsuit).
func BucketHoleCards(codes []string) string {
	if len(codes) < 2 {
		return unknownBucket
	}

	cards := append([]string(nil), codes...)
	sort.Strings(cards)

	r0, ok0 := firstRune(cards[0])
	r1, ok1 := firstRune(cards[1])
	if ok0 && ok1 && r0 == r1 {
		return "pair-" + string(r0)
	}

	suffix := "o"
	if suited(codes) {
		suffix = "s"
	}

	return cards[0] + cards[1] + suffix
}

// suited reports whether every code ends in the suit of the first one.
func suited(codes []string) bool {
	suit, size := utf8.DecodeLastRuneInString(codes[0])
	if size == 0 {
		return false
	}

	s := string(suit)
	for _, code := range codes {
		if !strings.HasSuffix(code, s) {
			return false
		}
	}

	return true
}

func firstRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	return r, size > 0
}

// ValidHoleCards returns the codes that name a real card, in order,
// skipping repeats of a card already seen.
func ValidHoleCards(codes []string) []string {
	var valid []string
	seen := make(map[poker.Card]struct{}, len(codes))
	for _, code := range codes {
		card, ok := parseCard(code)
		if !ok {
			continue
		}

		if _, dup := seen[card]; dup {
			continue
		}

		seen[card] = struct{}{}
		valid = append(valid, code)
	}

	return valid
}

func parseCard(code string) (card poker.Card, ok bool) {
	if len(code) != 2 {
		return card, false
	}

	rank, ok := parseRank(code[0])
	if !ok {
		return card, false
	}

	suit, ok := parseSuit(code[1])
	if !ok {
		return card, false
	}

	card, err := poker.MakeCard(suit, rank)
	if err != nil {
		return card, false
	}

	return card, true
}

// Ranks follow the poker package: ace is 1, king is 13.
func parseRank(c byte) (rank poker.Rank, ok bool) {
	switch c {
	case 'A', 'a':
		return poker.Rank(1), true
	case 'K', 'k':
		return poker.Rank(13), true
	case 'Q', 'q':
		return poker.Rank(12), true
	case 'J', 'j':
		return poker.Rank(11), true
	case 'T', 't':
		return poker.Rank(10), true
	}

	if c >= '2' && c <= '9' {
		return poker.Rank(c - '0'), true
	}

	return rank, false
}

func parseSuit(c byte) (suit poker.Suit, ok bool) {
	switch c {
	case 'c', 'C':
		return poker.Club, true
	case 'd', 'D':
		return poker.Diamond, true
	case 'h', 'H':
		return poker.Heart, true
	case 's', 'S':
		return poker.Spade, true
	}

	return suit, false
}
