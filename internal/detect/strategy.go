package detect

// Strategy identifies the method that determined a file's language.
type Strategy int

const (
	Filename Strategy = iota
	Shebang
	Extension
	Heuristics
	Classifier
)

func (s Strategy) String() string {
	switch s {
	case Filename:
		return "Filename"
	case Shebang:
		return "Shebang"
	case Extension:
		return "Extension"
	case Heuristics:
		return "Heuristics"
	case Classifier:
		return "Classifier"
	default:
		return "Unknown"
	}
}

// Type is a language's broad category per the linguist taxonomy.
type Type int

const (
	TypeUnknown Type = iota
	TypeData
	TypeProgramming
	TypeMarkup
	TypeProse
)

// LanguageType reports the category of a language name. Unrecognized
// names map to TypeUnknown.
func LanguageType(name string) Type {
	return languageType(name)
}
