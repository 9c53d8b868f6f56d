package utils

import "sort"

/**************************************************************************************************
** SortedKeys returns the keys of a string-keyed map in ascending order. The planner iterates
** maps through this everywhere ordering is observable, so plan output is stable across runs.
**
** @param m - Map to read keys from
** @return []string - Keys in ascending lexicographic order
**************************************************************************************************/
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
