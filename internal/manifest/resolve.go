package manifest

// resolve applies the fallback policy to the intermediate tables built by the
// streaming pass.
//
// Default launch selection, first tier that yields a value wins:
//  1. first item ref recorded inside the default organization
//  2. first item ref recorded anywhere
//  3. first resource with a usable href, in first-seen order
//
// A candidate from tier 1 or 2 resolves through its referenced resource
// (direct href, else first nested file); when the referenced resource is
// missing or href-less the resolver still drops through to tier 3.
func resolve(state parserState, items []itemRef, table *resourceTable) (Parsed, error) {
	chosenRef := state.firstItemRefDefaultOrg
	if chosenRef == "" {
		chosenRef = state.firstItemRefAny
	}

	defaultLaunch := ""
	if chosenRef != "" {
		defaultLaunch = table.launchHref(chosenRef)
	}
	if defaultLaunch == "" {
		defaultLaunch = table.firstUsableHref()
	}
	if defaultLaunch == "" {
		return Parsed{}, ErrNoLaunchPath
	}

	// Items whose resource is missing or href-less drop out; a partially
	// broken manifest still ingests as long as something launches.
	scos := make([]SCO, 0, len(items))
	for _, item := range items {
		href := table.launchHref(item.ref)
		if href == "" {
			continue
		}
		scos = append(scos, SCO{
			Identifier: item.identifier,
			Href:       href,
			Parameters: item.parameters,
		})
	}

	org := state.defaultOrg
	if org == "" {
		org = state.firstOrg
	}

	return Parsed{OrgIdentifier: org, DefaultLaunch: defaultLaunch, SCOs: scos}, nil
}
