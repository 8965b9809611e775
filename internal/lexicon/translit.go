package lexicon

import "strings"

// Multi-letter sequences are replaced before single letters; "sch" must
// precede "sh" and "ch".
var cyrillicDigraphs = strings.NewReplacer(
	"sch", "щ",
	"Sch", "Щ",
	"zh", "ж",
	"Zh", "Ж",
	"ts", "ц",
	"Ts", "Ц",
	"ch", "ч",
	"Ch", "Ч",
	"sh", "ш",
	"Sh", "Ш",
	"ju", "ю",
	"Ju", "Ю",
	"ja", "я",
	"Ja", "Я",
)

var cyrillicLetters = map[rune]rune{
	'a': 'а', 'b': 'б', 'v': 'в', 'g': 'г', 'd': 'д', 'e': 'е',
	'z': 'з', 'i': 'и', 'j': 'й', 'k': 'к', 'l': 'л', 'm': 'м',
	'n': 'н', 'o': 'о', 'p': 'п', 'r': 'р', 's': 'с', 't': 'т',
	'u': 'у', 'f': 'ф', 'h': 'х', 'c': 'ц', 'y': 'ы',
	'A': 'А', 'B': 'Б', 'V': 'В', 'G': 'Г', 'D': 'Д', 'E': 'Е',
	'Z': 'З', 'I': 'И', 'J': 'Й', 'K': 'К', 'L': 'Л', 'M': 'М',
	'N': 'Н', 'O': 'О', 'P': 'П', 'R': 'Р', 'S': 'С', 'T': 'Т',
	'U': 'У', 'F': 'Ф', 'H': 'Х', 'C': 'Ц', 'Y': 'Ы',
}

// ToCyrillic replaces Latin letters with their Cyrillic counterparts using
// the standard Russian transliteration table. Latin letters without a
// counterpart (q, w, x) are kept as is.
func ToCyrillic(word string) string {
	word = cyrillicDigraphs.Replace(word)
	return strings.Map(func(r rune) rune {
		if c, ok := cyrillicLetters[r]; ok {
			return c
		}
		return r
	}, word)
}
