package cmi

// Element names from the CMI 1.2 data model that the service persists. Every
// other element a player writes is dropped.
const (
	ElementLessonStatus   = "cmi.core.lesson_status"
	ElementLessonLocation = "cmi.core.lesson_location"
	ElementScoreRaw       = "cmi.core.score.raw"
	ElementSuspendData    = "cmi.suspend_data"
	ElementSessionTime    = "cmi.core.session_time"
	ElementExit           = "cmi.core.exit"
)

const (
	// maxSuspendData is the de facto CMI 1.2 limit for cmi.suspend_data.
	maxSuspendData = 4096
	maxDefault     = 255
)

var allowedElements = map[string]struct{}{
	ElementLessonStatus:   {},
	ElementLessonLocation: {},
	ElementScoreRaw:       {},
	ElementSuspendData:    {},
	ElementSessionTime:    {},
	ElementExit:           {},
}

// lessonStatusVocabulary is the CMI 1.2 enum; note "not attempted" is spelled
// with a space in the data model.
var lessonStatusVocabulary = map[string]struct{}{
	"passed":        {},
	"failed":        {},
	"completed":     {},
	"incomplete":    {},
	"browsed":       {},
	"not attempted": {},
}

// IsAllowed reports whether element is in the persisted allow-list.
func IsAllowed(element string) bool {
	_, ok := allowedElements[element]
	return ok
}

// MaxLen returns the per-element value length ceiling in characters.
func MaxLen(element string) int {
	if element == ElementSuspendData {
		return maxSuspendData
	}
	return maxDefault
}

// Validate checks one element/value pair against the allow-list, length limit,
// and (for lesson status) the 1.2 vocabulary. It returns the value to persist
// and whether the pair was accepted. Values are never truncated or coerced:
// an oversized or out-of-vocabulary value is rejected outright.
func Validate(element, value string) (string, bool) {
	if !IsAllowed(element) {
		return "", false
	}
	if len(value) > MaxLen(element) {
		return "", false
	}
	if element == ElementLessonStatus {
		if _, ok := lessonStatusVocabulary[value]; !ok {
			return "", false
		}
	}
	return value, true
}

// Filter validates every pair in values and returns only the accepted ones.
// Rejections are silent: a single noncompliant write must not break the rest
// of a learner's commit.
func Filter(values map[string]string) map[string]string {
	accepted := make(map[string]string, len(values))
	for element, value := range values {
		if normalized, ok := Validate(element, value); ok {
			accepted[element] = normalized
		}
	}
	return accepted
}

// IsTerminalStatus reports whether a lesson status value should transition an
// in-progress attempt to completed.
func IsTerminalStatus(value string) bool {
	switch value {
	case "completed", "passed", "failed":
		return true
	}
	return false
}
