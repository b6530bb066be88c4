package models

import "strings"

type LanguageKind int

const (
	LanguageRust LanguageKind = iota
	LanguagePython
	LanguageJavaScript
	LanguageTypeScript
	LanguageJava
	LanguageCSharp
	LanguageCPlusPlus
	LanguageGo
	LanguageOther
)

var languageNames = map[LanguageKind]string{
	LanguageRust:       "Rust",
	LanguagePython:     "Python",
	LanguageJavaScript: "JavaScript",
	LanguageTypeScript: "TypeScript",
	LanguageJava:       "Java",
	LanguageCSharp:     "C#",
	LanguageCPlusPlus:  "C++",
	LanguageGo:         "Go",
}

var languageAliases = map[string]LanguageKind{
	"rust":       LanguageRust,
	"python":     LanguagePython,
	"py":         LanguagePython,
	"javascript": LanguageJavaScript,
	"js":         LanguageJavaScript,
	"typescript": LanguageTypeScript,
	"ts":         LanguageTypeScript,
	"java":       LanguageJava,
	"csharp":     LanguageCSharp,
	"c#":         LanguageCSharp,
	"cplusplus":  LanguageCPlusPlus,
	"cpp":        LanguageCPlusPlus,
	"c++":        LanguageCPlusPlus,
	"go":         LanguageGo,
	"golang":     LanguageGo,
}

// Language is one of the known languages or Other with a free-form name.
type Language struct {
	Kind LanguageKind
	Name string // only set for LanguageOther
}

// Known returns the language for a closed-set kind.
func Known(kind LanguageKind) Language {
	return Language{Kind: kind}
}

// Other returns an open-variant language.
func Other(name string) Language {
	return Language{Kind: LanguageOther, Name: strings.TrimSpace(name)}
}

// ParseLanguage maps a name or alias onto a known language. Anything else
// becomes Other(name).
func ParseLanguage(s string) Language {
	key := strings.ToLower(strings.TrimSpace(s))
	if kind, ok := languageAliases[key]; ok {
		return Known(kind)
	}
	return Other(s)
}

func (l Language) IsOther() bool {
	return l.Kind == LanguageOther
}

func (l Language) String() string {
	if l.Kind == LanguageOther {
		if l.Name == "" {
			return "Other"
		}
		return l.Name
	}
	if name, ok := languageNames[l.Kind]; ok {
		return name
	}
	return "Other"
}

// MarshalText writes the display name, so Other carries its free-form name.
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Language) UnmarshalText(b []byte) error {
	name := strings.TrimSpace(string(b))
	if name == "" || strings.EqualFold(name, "other") {
		*l = Other("")
		return nil
	}
	*l = ParseLanguage(name)
	return nil
}
