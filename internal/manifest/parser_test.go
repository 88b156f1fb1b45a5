package manifest_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"scormd/internal/manifest"
)

func parse(t *testing.T, xml string) manifest.Parsed {
	t.Helper()
	parsed, err := manifest.Parse(strings.NewReader(xml))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return parsed
}

func TestDefaultOrganizationWins(t *testing.T) {
	parsed := parse(t, `
<manifest>
  <organizations default="A">
    <organization identifier="B">
      <item identifier="IB" identifierref="RB"/>
    </organization>
    <organization identifier="A">
      <item identifier="I1" identifierref="R1"/>
    </organization>
  </organizations>
  <resources>
    <resource identifier="RB" href="b.html"/>
    <resource identifier="R1" href="a.html"/>
  </resources>
</manifest>`)

	if parsed.DefaultLaunch != "a.html" {
		t.Fatalf("expected default org item to win, got %q", parsed.DefaultLaunch)
	}
}

func TestFirstOrganizationWinsWithoutDefault(t *testing.T) {
	parsed := parse(t, `
<manifest>
  <organizations>
    <organization identifier="one">
      <item identifier="I1" identifierref="R1"/>
    </organization>
    <organization identifier="two">
      <item identifier="I2" identifierref="R2"/>
    </organization>
  </organizations>
  <resources>
    <resource identifier="R1" href="first.html"/>
    <resource identifier="R2" href="second.html"/>
  </resources>
</manifest>`)

	if parsed.DefaultLaunch != "first.html" {
		t.Fatalf("expected first organization's item, got %q", parsed.DefaultLaunch)
	}
}

func TestMissingResourceDropsSCOWithoutFailing(t *testing.T) {
	parsed := parse(t, `
<manifest>
  <organizations default="A">
    <organization identifier="A">
      <item identifier="I1" identifierref="GHOST"/>
      <item identifier="I2" identifierref="R2"/>
    </organization>
  </organizations>
  <resources>
    <resource identifier="R2" href="real.html"/>
  </resources>
</manifest>`)

	if parsed.DefaultLaunch != "real.html" {
		t.Fatalf("expected fallback past dangling ref, got %q", parsed.DefaultLaunch)
	}
	if len(parsed.SCOs) != 1 || parsed.SCOs[0].Identifier != "I2" {
		t.Fatalf("expected only resolvable item in SCO list, got %#v", parsed.SCOs)
	}
}

func TestNestedFileResolvesWhenHrefAbsent(t *testing.T) {
	parsed := parse(t, `
<manifest>
  <organizations>
    <organization identifier="A">
      <item identifier="I1" identifierref="R1"/>
    </organization>
  </organizations>
  <resources>
    <resource identifier="R1">
      <file href="index.html"/>
      <file href="style.css"/>
    </resource>
  </resources>
</manifest>`)

	if parsed.DefaultLaunch != "index.html" {
		t.Fatalf("expected first nested file href, got %q", parsed.DefaultLaunch)
	}
}

func TestDuplicateResourceBlocksMerge(t *testing.T) {
	parsed := parse(t, `
<manifest>
  <organizations>
    <organization identifier="A">
      <item identifier="I1" identifierref="R"/>
    </organization>
  </organizations>
  <resources>
    <resource identifier="R">
      <file href="a.js"/>
    </resource>
    <resource identifier="R" href="index.html"/>
  </resources>
</manifest>`)

	if parsed.DefaultLaunch != "index.html" {
		t.Fatalf("expected later href to win after merge, got %q", parsed.DefaultLaunch)
	}
}

func TestItemsWithoutIdentifierrefSkipped(t *testing.T) {
	parsed := parse(t, `
<manifest>
  <organizations>
    <organization identifier="A">
      <item identifier="folder"/>
      <item identifier="I1" identifierref="R1" parameters="?lang=en"/>
    </organization>
  </organizations>
  <resources>
    <resource identifier="R1" href="a.html"/>
  </resources>
</manifest>`)

	if len(parsed.SCOs) != 1 {
		t.Fatalf("expected 1 SCO, got %d", len(parsed.SCOs))
	}
	if parsed.SCOs[0].Parameters != "?lang=en" {
		t.Fatalf("parameters not carried: %#v", parsed.SCOs[0])
	}
}

func TestNamespacePrefixesIgnored(t *testing.T) {
	parsed := parse(t, `
<ims:manifest xmlns:ims="http://www.imsglobal.org/xsd/imscp_rootv1p1p2"
              xmlns:adlcp="http://www.adlnet.org/xsd/adlcp_rootv1p2">
  <ims:organizations default="A">
    <ims:organization identifier="A">
      <ims:item identifier="I1" identifierref="R1"/>
    </ims:organization>
  </ims:organizations>
  <ims:resources>
    <ims:resource identifier="R1" href="sco.html" adlcp:scormtype="sco"/>
  </ims:resources>
</ims:manifest>`)

	if parsed.DefaultLaunch != "sco.html" {
		t.Fatalf("expected prefixed manifest to parse, got %q", parsed.DefaultLaunch)
	}
}

func TestResourceOnlyManifestFallsBack(t *testing.T) {
	parsed := parse(t, `
<manifest>
  <resources>
    <resource identifier="R1"/>
    <resource identifier="R2" href="only.html"/>
  </resources>
</manifest>`)

	if parsed.DefaultLaunch != "only.html" {
		t.Fatalf("expected tier-3 resource fallback, got %q", parsed.DefaultLaunch)
	}
	if len(parsed.SCOs) != 0 {
		t.Fatalf("expected no SCOs without items, got %#v", parsed.SCOs)
	}
}

func TestDanglingDefaultItemFallsBackToResources(t *testing.T) {
	parsed := parse(t, `
<manifest>
  <organizations default="A">
    <organization identifier="A">
      <item identifier="I1" identifierref="NOWHERE"/>
    </organization>
  </organizations>
  <resources>
    <resource identifier="OTHER" href="rescue.html"/>
  </resources>
</manifest>`)

	if parsed.DefaultLaunch != "rescue.html" {
		t.Fatalf("expected resource-table rescue, got %q", parsed.DefaultLaunch)
	}
}

func TestNoLaunchPathFails(t *testing.T) {
	_, err := manifest.Parse(strings.NewReader(`
<manifest>
  <organizations/>
  <resources>
    <resource identifier="R1"/>
  </resources>
</manifest>`))
	if !errors.Is(err, manifest.ErrNoLaunchPath) {
		t.Fatalf("expected ErrNoLaunchPath, got %v", err)
	}
}

func TestMalformedXMLFails(t *testing.T) {
	_, err := manifest.Parse(strings.NewReader(`<manifest><organizations>`))
	if !errors.Is(err, manifest.ErrMalformedXML) {
		t.Fatalf("expected ErrMalformedXML, got %v", err)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	doc := `
<manifest>
  <organizations default="A">
    <organization identifier="A">
      <item identifier="I1" identifierref="R1"/>
      <item identifier="I2" identifierref="R2" parameters="?p=1"/>
    </organization>
  </organizations>
  <resources>
    <resource identifier="R1" href="a.html"/>
    <resource identifier="R2" href="b.html"/>
    <resource identifier="R3" href="c.html"/>
  </resources>
</manifest>`

	first := parse(t, doc)
	for i := 0; i < 10; i++ {
		again := parse(t, doc)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("parse not deterministic: %#v vs %#v", first, again)
		}
	}
}

func TestSCOOrderFollowsDocumentOrder(t *testing.T) {
	parsed := parse(t, `
<manifest>
  <organizations>
    <organization identifier="A">
      <item identifier="first" identifierref="R1"/>
    </organization>
    <organization identifier="B">
      <item identifier="second" identifierref="R2"/>
    </organization>
  </organizations>
  <item identifier="third" identifierref="R1"/>
  <resources>
    <resource identifier="R1" href="a.html"/>
    <resource identifier="R2" href="b.html"/>
  </resources>
</manifest>`)

	got := make([]string, 0, len(parsed.SCOs))
	for _, sco := range parsed.SCOs {
		got = append(got, sco.Identifier)
	}
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected SCO order: got %v want %v", got, want)
	}
}

func TestSelfClosingAndOpenCloseResourcesEquivalent(t *testing.T) {
	selfClosing := parse(t, `
<manifest>
  <organizations>
    <organization identifier="A"><item identifier="I" identifierref="R"/></organization>
  </organizations>
  <resources><resource identifier="R" href="x.html"/></resources>
</manifest>`)
	openClose := parse(t, `
<manifest>
  <organizations>
    <organization identifier="A"><item identifier="I" identifierref="R"></item></organization>
  </organizations>
  <resources><resource identifier="R" href="x.html"></resource></resources>
</manifest>`)

	if !reflect.DeepEqual(selfClosing, openClose) {
		t.Fatalf("forms differ: %#v vs %#v", selfClosing, openClose)
	}
}

func TestOrgIdentifierFollowsDefault(t *testing.T) {
	parsed := parse(t, `
<manifest>
  <organizations default="A">
    <organization identifier="B"><item identifier="IB" identifierref="R"/></organization>
    <organization identifier="A"><item identifier="IA" identifierref="R"/></organization>
  </organizations>
  <resources><resource identifier="R" href="x.html"/></resources>
</manifest>`)

	if parsed.OrgIdentifier != "A" {
		t.Fatalf("expected declared default org, got %q", parsed.OrgIdentifier)
	}

	parsed = parse(t, `
<manifest>
  <organizations>
    <organization identifier="only"><item identifier="I" identifierref="R"/></organization>
  </organizations>
  <resources><resource identifier="R" href="x.html"/></resources>
</manifest>`)

	if parsed.OrgIdentifier != "only" {
		t.Fatalf("expected first org without a default, got %q", parsed.OrgIdentifier)
	}
}
