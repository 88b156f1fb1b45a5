package manifest

// mergeResource combines two declarations of the same resource identifier.
// Split or duplicated <resource> blocks are a compatibility accommodation for
// noncompliant authoring tools, so duplicates merge instead of failing the
// manifest. Rules: href last-non-empty-wins, scorm type last-non-empty-wins,
// file lists concatenate in declaration order.
func mergeResource(existing, incoming resourceRecord) resourceRecord {
	merged := existing
	if incoming.href != "" {
		merged.href = incoming.href
	}
	if incoming.scormType != "" {
		merged.scormType = incoming.scormType
	}
	merged.files = append(merged.files, incoming.files...)
	return merged
}
