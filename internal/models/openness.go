package models

// OpennessLevels is the fixed content-permissiveness vocabulary, ordered
// from least to most permissive. The order is part of the search contract:
// filtering by a level admits that level and everything after it.
var OpennessLevels = []string{
	"Портрет",
	"Купальник",
	"Бельё",
	"Гламур",
	"Эротика",
	"Ню",
	"Метарт",
	"Порно",
}

// OpennessLevelsFrom returns the requested level together with every more
// permissive level. Unknown values return nil, which callers treat as
// "no filter".
func OpennessLevelsFrom(level string) []string {
	for i, l := range OpennessLevels {
		if l == level {
			return OpennessLevels[i:]
		}
	}
	return nil
}

// IsOpennessLevel reports whether level belongs to the vocabulary.
func IsOpennessLevel(level string) bool {
	return OpennessLevelsFrom(level) != nil
}
