package openai

import "strings"

// LabelKind discriminates the classifier outcome.
type LabelKind int

const (
	KindSmallTalk LabelKind = iota
	KindIrrelevant
	KindDepartment
)

// Label is the validated classifier output. Department carries the raw
// department name; the vocabulary is open, so any label the model emits that
// is not SMALL_TALK or Irrelevant is treated as a department.
type Label struct {
	Kind       LabelKind
	Department string
}

// ParseLabel validates a raw classifier response at the boundary. Empty or
// ambiguous responses are treated conservatively as irrelevant.
func ParseLabel(raw string) Label {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Label{Kind: KindIrrelevant}
	}
	if strings.EqualFold(raw, "SMALL_TALK") {
		return Label{Kind: KindSmallTalk}
	}
	if strings.EqualFold(raw, "Irrelevant") {
		return Label{Kind: KindIrrelevant}
	}
	return Label{Kind: KindDepartment, Department: raw}
}

// IsComplaint reports whether the label names a department.
func (l Label) IsComplaint() bool {
	return l.Kind == KindDepartment
}

// ExtractionIrrelevant reports whether an audio/image extraction result
// signals that no complaint was found.
func ExtractionIrrelevant(result string) bool {
	result = strings.TrimSpace(result)
	return result == "" || strings.Contains(strings.ToLower(result), "irrelevant")
}
