package manifest

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// parserState is the explicit state machine threaded through the streaming
// pass. Context fields are set on open tags and cleared on the matching close
// tag; the first-item-ref fields latch the earliest candidate and never change
// afterwards.
type parserState struct {
	inOrganizations bool
	currentOrg      string
	currentResource string

	// defaultOrg is the identifier declared on <organizations default="...">,
	// empty when the attribute is absent.
	defaultOrg string

	// firstItemRefDefaultOrg is the identifierref of the first item seen
	// inside the default organization. With no default declared, the first
	// organization encountered counts as the default.
	firstItemRefDefaultOrg string

	// firstItemRefAny is the identifierref of the first item seen anywhere.
	firstItemRefAny string

	// firstOrg is the identifier of the first <organization> encountered,
	// used when no default attribute names one.
	firstOrg string
}

// ParseFile reads and parses the manifest at path.
// A manifest that cannot be read reports ErrMissingManifest.
func ParseFile(path string) (Parsed, error) {
	file, err := os.Open(path)
	if err != nil {
		return Parsed{}, fmt.Errorf("%w: %v", ErrMissingManifest, err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse performs a single streaming pass over manifest XML and resolves the
// default launch path plus the launchable SCO list. The pass builds three
// intermediate tables (resources by identifier, items in document order, and
// the organization defaults) which live only for the duration of the call.
// Parse is a pure function of its input: the same bytes always produce the
// same Parsed value.
func Parse(r io.Reader) (Parsed, error) {
	var state parserState
	var items []itemRef
	table := newResourceTable()

	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Parsed{}, fmt.Errorf("%w: %v", ErrMalformedXML, err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			// Namespace prefixes differ per authoring tool; match on the
			// local part only. encoding/xml hands self-closing elements to
			// us as a StartElement followed by its EndElement, so both
			// <resource/> and <resource></resource> land here.
			switch element.Name.Local {
			case "organizations":
				state.inOrganizations = true
				state.defaultOrg = attr(element, "default")
			case "organization":
				state.currentOrg = attr(element, "identifier")
				if state.firstOrg == "" {
					state.firstOrg = state.currentOrg
				}
			case "item":
				recordItem(&state, &items, element)
			case "resource":
				if identifier := attr(element, "identifier"); identifier != "" {
					table.upsert(identifier, resourceRecord{
						href:      attr(element, "href"),
						scormType: attr(element, "scormtype"),
					})
					state.currentResource = identifier
				}
			case "file":
				// Attributed to the open resource; stray <file> elements
				// outside any resource are ignored.
				if href := attr(element, "href"); href != "" && state.currentResource != "" {
					table.addFile(state.currentResource, href)
				}
			}
		case xml.EndElement:
			switch element.Name.Local {
			case "organization":
				state.currentOrg = ""
			case "organizations":
				state.inOrganizations = false
			case "resource":
				state.currentResource = ""
			}
		}
	}

	return resolve(state, items, table)
}

// recordItem captures an <item> element. Both identifier and identifierref
// must be present; anything else is silently skipped.
func recordItem(state *parserState, items *[]itemRef, element xml.StartElement) {
	identifier := attr(element, "identifier")
	ref := attr(element, "identifierref")
	if identifier == "" || ref == "" {
		return
	}

	if state.firstItemRefAny == "" {
		state.firstItemRefAny = ref
	}
	if state.firstItemRefDefaultOrg == "" && isDefaultOrg(state) {
		state.firstItemRefDefaultOrg = ref
	}

	*items = append(*items, itemRef{
		identifier: identifier,
		ref:        ref,
		parameters: attr(element, "parameters"),
		orgID:      state.currentOrg,
	})
}

// isDefaultOrg reports whether the current organization is the launch default.
// No declared default means the first organization found wins.
func isDefaultOrg(state *parserState) bool {
	if state.currentOrg == "" {
		return false
	}
	if state.defaultOrg != "" {
		return state.currentOrg == state.defaultOrg
	}
	return true
}

// attr returns the value of the named attribute, matching on the local name so
// prefixed forms like adlcp:scormtype are treated the same as bare ones.
func attr(element xml.StartElement, local string) string {
	for _, a := range element.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
