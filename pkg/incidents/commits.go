package incidents

import "strings"

const (
	// commitSeparator separates entries in the commit_list column
	commitSeparator = ";"

	// authorSeparator separates a commit message from its author
	authorSeparator = "@"
)

// curlyQuotes rewrites typographic double quotes to plain ones. The incident
// producer sometimes emits `@“` which otherwise breaks the author split.
// TODO: drop once the producer stops emitting typographic quotes in commit_list.
var curlyQuotes = strings.NewReplacer("“", `"`, "”", `"`)

// ParseCommits parses a commit log of the form "sha:message@author;...".
//
// The sha is everything before the first ":" (empty when there is none) and
// the author is everything after the last "@" in the remainder (empty when
// there is none). A message that itself contains "@" is therefore split at
// its last "@"; that is the grammar, not a bug. Empty items are skipped and
// input order is preserved. The result is never nil.
func ParseCommits(raw string) []CommitEntry {
	commits := make([]CommitEntry, 0)
	if isMissing(raw) {
		return commits
	}

	for _, item := range strings.Split(raw, commitSeparator) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		commits = append(commits, parseCommit(item))
	}

	return commits
}

func parseCommit(item string) CommitEntry {
	sha, remainder, found := strings.Cut(item, ":")
	if !found {
		sha, remainder = "", item
	}

	remainder = curlyQuotes.Replace(remainder)

	message, author := remainder, ""
	if idx := strings.LastIndex(remainder, authorSeparator); idx >= 0 {
		message, author = remainder[:idx], remainder[idx+len(authorSeparator):]
	}

	return CommitEntry{
		SHA:     strings.TrimSpace(sha),
		Message: strings.TrimSpace(message),
		Author:  strings.TrimSpace(author),
	}
}

// ShortSHA returns the first seven characters of a commit SHA.
func ShortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
