package tokens

import "sort"

// detectCycle follows alias chains (each alias names exactly one target) and
// returns the first loop found as from -> ... -> from, or nil. Chains are
// started in lexical order so the report is stable.
func detectCycle(aliases map[string]string) []string {
	const (
		unseen = iota
		onChain
		done
	)
	state := make(map[string]int, len(aliases))

	starts := make([]string, 0, len(aliases))
	for from := range aliases {
		starts = append(starts, from)
	}
	sort.Strings(starts)

	for _, start := range starts {
		if state[start] == done {
			continue
		}

		var chain []string
		pos := make(map[string]int)
		node := start
		for {
			if state[node] == done {
				break
			}
			if at, looped := pos[node]; looped {
				return append(append([]string(nil), chain[at:]...), node)
			}
			pos[node] = len(chain)
			state[node] = onChain
			chain = append(chain, node)

			next, isAlias := aliases[node]
			if !isAlias {
				break
			}
			node = next
		}
		for _, n := range chain {
			state[n] = done
		}
	}
	return nil
}
