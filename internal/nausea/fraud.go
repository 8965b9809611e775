package nausea

// IsFraud reports whether word mixes Latin and Cyrillic letters. A word
// spelled entirely with Latin look-alikes of Cyrillic letters is not
// detected.
func IsFraud(word string) bool {
	var latin, cyrillic bool
	for _, r := range word {
		switch {
		case isLatin(r):
			latin = true
		case isCyrillic(r):
			cyrillic = true
		}
		if latin && cyrillic {
			return true
		}
	}
	return false
}
