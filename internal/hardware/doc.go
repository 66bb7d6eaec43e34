// Package hardware parses raw hardware identifier strings such as
// "iPhone8,1" into a structured [Identifier].
//
// Three family rules are tried in a fixed order (phone, pod, pad). Each
// matches the whole string: the family keyword exactly as the platform
// emits it, then a major and a minor number separated by a comma. The
// first rule that matches wins. Anything else, including an empty string
// or a keyword without numbers, parses to [FamilyUnknown]; Parse never
// fails.
//
// Identifiers from device generations newer than these three families are
// reported as unknown.
package hardware
