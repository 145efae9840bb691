package collect

import "sort"

// loggedInUsers returns the deduplicated, sorted set of login names, or
// nil when the utmp-style source is unreadable.
func (c *Collector) loggedInUsers() []string {
	stats, err := c.users()
	if err != nil {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	for _, u := range stats {
		if u.User == "" || seen[u.User] {
			continue
		}
		seen[u.User] = true
		names = append(names, u.User)
	}
	sort.Strings(names)
	return names
}
