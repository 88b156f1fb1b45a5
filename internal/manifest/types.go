package manifest

// Parsed is the result of resolving one manifest. DefaultLaunch is always
// non-empty; a manifest with no resolvable launch path fails to parse instead.
type Parsed struct {
	// OrgIdentifier is the default organization's identifier, empty when the
	// manifest declares no organizations.
	OrgIdentifier string
	DefaultLaunch string
	SCOs          []SCO
}

// SCO describes one independently launchable item, in document order.
type SCO struct {
	Identifier string
	Href       string
	// Parameters is the optional launch query string; empty means absent.
	Parameters string
}

// itemRef records an <item> with both identifier and identifierref present.
// Items missing either attribute are never recorded.
type itemRef struct {
	identifier string
	ref        string
	parameters string
	orgID      string
}

// resourceRecord accumulates everything learned about one resource
// identifier, across however many <resource> blocks declared it.
type resourceRecord struct {
	href      string
	files     []string
	scormType string
}

// resourceTable keys records by identifier while remembering first-seen order,
// so the tier-3 launch fallback scans resources deterministically.
type resourceTable struct {
	records map[string]*resourceRecord
	order   []string
}

func newResourceTable() *resourceTable {
	return &resourceTable{records: make(map[string]*resourceRecord)}
}

func (t *resourceTable) upsert(identifier string, incoming resourceRecord) {
	existing, ok := t.records[identifier]
	if !ok {
		t.order = append(t.order, identifier)
		record := mergeResource(resourceRecord{}, incoming)
		t.records[identifier] = &record
		return
	}
	merged := mergeResource(*existing, incoming)
	*existing = merged
}

func (t *resourceTable) addFile(identifier, href string) {
	record, ok := t.records[identifier]
	if !ok {
		t.order = append(t.order, identifier)
		record = &resourceRecord{}
		t.records[identifier] = record
	}
	record.files = append(record.files, href)
}

// launchHref resolves the launch path for one resource reference: the direct
// href when present, else the first nested file href. Empty means unresolvable.
func (t *resourceTable) launchHref(identifier string) string {
	record, ok := t.records[identifier]
	if !ok {
		return ""
	}
	if record.href != "" {
		return record.href
	}
	if len(record.files) > 0 {
		return record.files[0]
	}
	return ""
}

// firstUsableHref scans resources in first-seen order for any usable launch
// path. Last-resort tier of the default-launch fallback.
func (t *resourceTable) firstUsableHref() string {
	for _, identifier := range t.order {
		if href := t.launchHref(identifier); href != "" {
			return href
		}
	}
	return ""
}
