package webhook

import (
	"regexp"
	"strings"
)

// implicitLicenses maps repository full names to the license identifiers a
// commit may carry in a "License:" trailer to be exempt from the CLA check.
//nolint: gochecknoglobals
var implicitLicenses = map[string][]string{
	"canonical/lxd":              {"Apache-2.0"},
	"canonical/lxd-ci":           {"Apache-2.0"},
	"canonical/lxd-imagebuilder": {"Apache-2.0"},
}

// licensePattern matches a license trailer line. Both the "License" and the
// "Licence" spelling are accepted, with an optional space after the colon.
//nolint: gochecknoglobals
var licensePattern = regexp.MustCompile(`^Licen[cs]e: ?(.+)$`)

// ImplicitLicense returns the license identifier a commit message carries in
// a trailer, if it is one of the licenses accepted for the repository, or ""
// otherwise. The first line of the message (the subject) is never considered
// a trailer; the first accepted trailer wins.
func ImplicitLicense(repo, message string) string {
	accepted, ok := implicitLicenses[repo]
	if !ok {
		return ""
	}

	first := true
	for line := range strings.SplitSeq(message, "\n") {
		if first {
			first = false

			continue
		}

		match := licensePattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if match == nil {
			continue
		}

		for _, license := range accepted {
			if match[1] == license {
				return license
			}
		}
	}

	return ""
}
