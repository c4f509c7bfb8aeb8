// Package towers holds repair-priority logic used to demonstrate entity
// mocks: structurally similar towers stay distinguishable because every mock
// carries a synthesized unique id.
package towers

import "github.com/toejough/strictmock"

// MostDamaged returns the id of the tower with the lowest hits.
// Returns "" for an empty slice.
func MostDamaged(towers []*strictmock.Mock) string {
	worstID := ""
	worstHits := -1

	for _, tower := range towers {
		hits, _ := tower.Get("hits").(int)
		if worstHits < 0 || hits < worstHits {
			worstHits = hits
			worstID, _ = tower.Get("id").(string)
		}
	}

	return worstID
}
