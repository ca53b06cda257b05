package core

import (
	"fmt"
	"strings"
)

// DocType selects the fixed template set used to assemble a proposal.
type DocType string

const (
	Talk     DocType = "talk"
	Course   DocType = "course"
	Activity DocType = "activity"
)

// DefaultDocType is active until the user picks another one.
const DefaultDocType = Talk

var docTypeLabels = map[DocType]string{
	Talk:     "演講",
	Course:   "課程",
	Activity: "活動",
}

// DocTypes returns every document type in display order.
func DocTypes() []DocType {
	return []DocType{Talk, Course, Activity}
}

// Label is the localized name printed in the document.
func (t DocType) Label() string {
	if l, ok := docTypeLabels[t]; ok {
		return l
	}
	return docTypeLabels[DefaultDocType]
}

// Valid reports whether t belongs to the closed enumeration.
func (t DocType) Valid() bool {
	_, ok := docTypeLabels[t]
	return ok
}

// ParseDocType accepts either the key ("talk") or the label ("演講").
// An empty string yields DefaultDocType.
func ParseDocType(s string) (DocType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultDocType, nil
	}
	for _, t := range DocTypes() {
		if strings.EqualFold(s, string(t)) || s == t.Label() {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDocType, s)
}
