// Package manifest locates and parses imsmanifest.xml descriptors and resolves
// which file inside a course package should launch.
//
// Authoring tools produce wildly inconsistent manifests: namespace prefixes
// vary, <resource> blocks get duplicated, launch hrefs live either on the
// resource or on a nested <file>, and the default organization may or may not
// be declared. The parser tolerates all of that: element and attribute names
// match on their local part only, duplicate resources merge rather than
// reject, and launch resolution walks a fixed fallback ladder until something
// usable turns up. Only a manifest that yields no launch path at all fails.
package manifest
