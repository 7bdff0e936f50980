package domain

// CommitAuthor is the transient, per-delivery record of one commit author on a
// pull request, keyed in the collector's map by lowercase author email.
type CommitAuthor struct {
	// Email is the lowercase commit author email.
	Email string `json:"email"`
	// Username is the GitHub login linked to the commit; empty for unlinked commits.
	Username string `json:"username,omitempty"`
	// Signed is mutated in place as compliance matching proceeds.
	Signed bool `json:"signed"`
}

// CLACheck holds the per-identifier compliance result of a CLA check. Each map
// is keyed by the original, unnormalized identifier supplied by the caller.
type CLACheck struct {
	Emails             map[string]bool `json:"emails"`
	GithubUsernames    map[string]bool `json:"github_usernames"`
	LaunchpadUsernames map[string]bool `json:"launchpad_usernames"`
}
