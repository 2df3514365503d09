package rule

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/GrGLeo/dataguard/batch"
)

// length is the shared kernel for WithMinLength/WithMaxLength/WithLengthBetween/IsExactLength.
// Length is measured in UTF-8 code points, per the data model.
type length struct {
	counter
	name     string
	lo, hi   *int
	paramStr string
}

func newLength(sampleCap int, name string, lo, hi *int, paramStr string) *length {
	return &length{counter: newCounter(sampleCap), name: name, lo: lo, hi: hi, paramStr: paramStr}
}

func (k *length) Name() string       { return k.name }
func (k *length) Parameters() string { return k.paramStr }
func (*length) NeedsTwoPass() bool   { return false }
func (k *length) Finalize() Result   { return k.result() }

// ApplyBatch implements Kernel.
func (k *length) ApplyBatch(col *batch.Column, rowOffset int) *batch.Bitset {
	m := mask(col.Len)
	for i := 0; i < col.Len; i++ {
		pass := col.IsValid(i)
		if pass {
			n := utf8.RuneCountInString(col.StringAt(i))
			if k.lo != nil && n < *k.lo {
				pass = false
			}
			if k.hi != nil && n > *k.hi {
				pass = false
			}
		}
		if pass {
			m.Set(i)
		}
		k.record(rowOffset+i, pass, valueString(col, i))
	}
	return m
}

// NewWithMinLength builds a WithMinLength{n} kernel.
func NewWithMinLength(sampleCap, n int) Kernel {
	return newLength(sampleCap, "WithMinLength", &n, nil, fmt.Sprintf("[%d]", n))
}

// NewWithMaxLength builds a WithMaxLength{n} kernel.
func NewWithMaxLength(sampleCap, n int) Kernel {
	return newLength(sampleCap, "WithMaxLength", nil, &n, fmt.Sprintf("[%d]", n))
}

// NewWithLengthBetween builds a WithLengthBetween{lo, hi} kernel.
func NewWithLengthBetween(sampleCap, lo, hi int) Kernel {
	return newLength(sampleCap, "WithLengthBetween", &lo, &hi, fmt.Sprintf("[%d, %d]", lo, hi))
}

// NewIsExactLength builds an IsExactLength{n} kernel.
func NewIsExactLength(sampleCap, n int) Kernel {
	return newLength(sampleCap, "IsExactLength", &n, &n, fmt.Sprintf("[%d]", n))
}

// charClass is the shared kernel for the Unicode character-class
// predicates; an empty string fails all of them per the data model.
type charClass struct {
	counter
	name string
	ok   func(s string) bool
}

func newCharClass(sampleCap int, name string, ok func(s string) bool) *charClass {
	return &charClass{counter: newCounter(sampleCap), name: name, ok: ok}
}

func (k *charClass) Name() string       { return k.name }
func (*charClass) Parameters() string   { return "[]" }
func (*charClass) NeedsTwoPass() bool   { return false }
func (k *charClass) Finalize() Result   { return k.result() }

// ApplyBatch implements Kernel.
func (k *charClass) ApplyBatch(col *batch.Column, rowOffset int) *batch.Bitset {
	m := mask(col.Len)
	for i := 0; i < col.Len; i++ {
		pass := col.IsValid(i) && k.ok(col.StringAt(i))
		if pass {
			m.Set(i)
		}
		k.record(rowOffset+i, pass, valueString(col, i))
	}
	return m
}

func allRunes(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

// NewIsNumeric builds an IsNumeric kernel (every rune a Unicode digit).
func NewIsNumeric(sampleCap int) Kernel {
	return newCharClass(sampleCap, "IsNumeric", func(s string) bool {
		return allRunes(s, unicode.IsDigit)
	})
}

// NewIsAlpha builds an IsAlpha kernel (every rune a Unicode letter).
func NewIsAlpha(sampleCap int) Kernel {
	return newCharClass(sampleCap, "IsAlpha", func(s string) bool {
		return allRunes(s, unicode.IsLetter)
	})
}

// NewIsAlphanumeric builds an IsAlphanumeric kernel.
func NewIsAlphanumeric(sampleCap int) Kernel {
	return newCharClass(sampleCap, "IsAlphanumeric", func(s string) bool {
		return allRunes(s, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })
	})
}

func hasCasedRune(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsLower(r) {
			return true
		}
	}
	return false
}

// NewIsLowercase builds an IsLowercase kernel: no uppercase runes and at
// least one cased rune.
func NewIsLowercase(sampleCap int) Kernel {
	return newCharClass(sampleCap, "IsLowercase", func(s string) bool {
		return hasCasedRune(s) && s == strings.ToLower(s)
	})
}

// NewIsUppercase builds an IsUppercase kernel: no lowercase runes and at
// least one cased rune.
func NewIsUppercase(sampleCap int) Kernel {
	return newCharClass(sampleCap, "IsUppercase", func(s string) bool {
		return hasCasedRune(s) && s == strings.ToUpper(s)
	})
}

var urlSchemeRe = regexp.MustCompile(`^[a-z][a-z0-9+.-]*://`)

// NewIsUrl builds an IsUrl kernel: a scheme, a non-empty authority, and no
// embedded whitespace.
func NewIsUrl(sampleCap int) Kernel {
	return newCharClass(sampleCap, "IsUrl", func(s string) bool {
		if strings.ContainsAny(s, " \t\n\r") {
			return false
		}
		loc := urlSchemeRe.FindStringIndex(s)
		if loc == nil {
			return false
		}
		rest := s[loc[1]:]
		authorityEnd := strings.IndexAny(rest, "/?#")
		authority := rest
		if authorityEnd >= 0 {
			authority = rest[:authorityEnd]
		}
		return authority != ""
	})
}

// NewIsEmail builds an IsEmail kernel: one '@', non-empty local part, a
// domain of at least two dot-separated labels each at least two
// characters, and no consecutive dots.
func NewIsEmail(sampleCap int) Kernel {
	return newCharClass(sampleCap, "IsEmail", func(s string) bool {
		if strings.Contains(s, "..") {
			return false
		}
		at := strings.IndexByte(s, '@')
		if at <= 0 || at != strings.LastIndexByte(s, '@') {
			return false
		}
		local, domain := s[:at], s[at+1:]
		if local == "" || domain == "" {
			return false
		}
		labels := strings.Split(domain, ".")
		if len(labels) < 2 {
			return false
		}
		for _, label := range labels {
			if len(label) < 2 {
				return false
			}
		}
		return true
	})
}

var uuidRe = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// NewIsUuid builds an IsUuid kernel: 8-4-4-4-12 hex groups, case-insensitive.
func NewIsUuid(sampleCap int) Kernel {
	return newCharClass(sampleCap, "IsUuid", func(s string) bool {
		return uuidRe.MatchString(s)
	})
}

// Regex fails rows whose value does not fully match a compiled pattern
// (full-match semantics, implicit ^…$). Compiled once at plan
// finalization.
type Regex struct {
	counter
	pattern string
	re      *regexp.Regexp
}

// NewRegex compiles pattern (optionally case-insensitive) into a
// WithRegex kernel.
func NewRegex(sampleCap int, pattern string, caseInsensitive bool) (*Regex, error) {
	anchored := pattern
	if !strings.HasPrefix(anchored, "^") {
		anchored = "^(?:" + anchored + ")$"
	} else if !strings.HasSuffix(anchored, "$") {
		anchored = anchored + "$"
	}
	if caseInsensitive {
		anchored = "(?i)" + anchored
	}
	re, err := regexp.Compile(anchored)
	if err != nil {
		return nil, err
	}
	return &Regex{counter: newCounter(sampleCap), pattern: pattern, re: re}, nil
}

func (*Regex) Name() string       { return "WithRegex" }
func (k *Regex) Parameters() string { return fmt.Sprintf("[%q]", k.pattern) }
func (*Regex) NeedsTwoPass() bool { return false }
func (k *Regex) Finalize() Result { return k.result() }

// ApplyBatch implements Kernel.
func (k *Regex) ApplyBatch(col *batch.Column, rowOffset int) *batch.Bitset {
	m := mask(col.Len)
	for i := 0; i < col.Len; i++ {
		pass := col.IsValid(i) && k.re.MatchString(col.StringAt(i))
		if pass {
			m.Set(i)
		}
		k.record(rowOffset+i, pass, valueString(col, i))
	}
	return m
}

// In is byte-exact membership against a pre-hashed set, interned once at
// plan finalization.
type In struct {
	counter
	values []string
	set    map[string]struct{}
}

// NewIn interns values into a hash set for an IsIn kernel.
func NewIn(sampleCap int, values []string) *In {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return &In{counter: newCounter(sampleCap), values: values, set: set}
}

func (*In) Name() string     { return "IsIn" }
func (k *In) Parameters() string {
	return fmt.Sprintf("%q", k.values)
}
func (*In) NeedsTwoPass() bool { return false }
func (k *In) Finalize() Result { return k.result() }

// ApplyBatch implements Kernel.
func (k *In) ApplyBatch(col *batch.Column, rowOffset int) *batch.Bitset {
	m := mask(col.Len)
	for i := 0; i < col.Len; i++ {
		pass := false
		if col.IsValid(i) {
			_, pass = k.set[col.StringAt(i)]
		}
		if pass {
			m.Set(i)
		}
		k.record(rowOffset+i, pass, valueString(col, i))
	}
	return m
}
