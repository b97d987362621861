package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SymbolPrefix derives the constant prefix used for exported binding symbols.
// An underscore is inserted before every ASCII uppercase letter, a single leading
// underscore is dropped and the result is uppercased:
//
//	MovieRating -> MOVIE_RATING
//	ERC20Token  -> E_R_C20_TOKEN
//
// Acronym runs are split letter by letter on purpose; existing frontends import
// these names.
func SymbolPrefix(contractName string) string {
	var b strings.Builder
	b.Grow(len(contractName) * 2)
	for i := 0; i < len(contractName); i++ {
		c := contractName[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteByte(c)
	}
	return strings.ToUpper(strings.TrimPrefix(b.String(), "_"))
}

// FileStem lowercases the first character of the contract name: MovieRating -> movieRating
func FileStem(contractName string) string {
	r, size := utf8.DecodeRuneInString(contractName)
	if r == utf8.RuneError {
		return contractName
	}
	return string(unicode.ToLower(r)) + contractName[size:]
}
