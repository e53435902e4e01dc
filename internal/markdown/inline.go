package markdown

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// ProcessLine applies the inline transforms to one line of content, in
// fixed order: bold, emphasis, hash substitution, letter stripping. The
// order matters — emphasis markers inside a bolded span are still found
// by the later pass. Pure function, safe on empty input.
func ProcessLine(line string) string {
	s := applyPairedMarkup(line, "**", "b")
	s = applyPairedMarkup(s, "__", "em")
	s = hashBracketed(s)
	return stripLettersBracketed(s)
}

// applyPairedMarkup splits text on every occurrence of delim and wraps
// the segments between the 1st/2nd, 3rd/4th, ... occurrences in
// <tag>...</tag>. A final segment left over by an unmatched delimiter is
// emitted unwrapped.
func applyPairedMarkup(text, delim, tag string) string {
	parts := strings.Split(text, delim)
	if len(parts) == 1 {
		return text
	}
	var b strings.Builder
	for i, part := range parts {
		if i%2 == 1 && i < len(parts)-1 {
			b.WriteString("<")
			b.WriteString(tag)
			b.WriteString(">")
			b.WriteString(part)
			b.WriteString("</")
			b.WriteString(tag)
			b.WriteString(">")
			continue
		}
		b.WriteString(part)
	}
	return b.String()
}

// hashBracketed replaces the first [[...]] span, delimiters included,
// with the lowercase hex MD5 digest of the span's content. Delimiter
// positions are located independently, not balanced: the span runs from
// the first "[[" to the first "]]", and a reversed pair hashes the empty
// string. Known-quirky, kept for output compatibility.
func hashBracketed(text string) string {
	opening := strings.Index(text, "[[")
	closing := strings.Index(text, "]]")
	if opening < 0 || closing < 0 {
		return text
	}
	sum := md5.Sum([]byte(sliceBetween(text, opening+2, closing)))
	return text[:opening] + hex.EncodeToString(sum[:]) + text[closing+2:]
}

// stripLettersBracketed removes every 'C' and 'c' from the first
// ((...)) span and drops the delimiters. Same positional first-index
// semantics as hashBracketed.
func stripLettersBracketed(text string) string {
	opening := strings.Index(text, "((")
	closing := strings.Index(text, "))")
	if opening < 0 || closing < 0 {
		return text
	}
	span := sliceBetween(text, opening+2, closing)
	span = strings.ReplaceAll(span, "C", "")
	span = strings.ReplaceAll(span, "c", "")
	return text[:opening] + span + text[closing+2:]
}

// sliceBetween is s[start:end] with Python slice semantics: crossed
// bounds yield the empty string instead of panicking.
func sliceBetween(s string, start, end int) string {
	if end < start {
		return ""
	}
	return s[start:end]
}
