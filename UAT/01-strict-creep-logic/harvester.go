// Package harvester is a small slice of colony logic used to demonstrate
// strict mocking: it reads exactly the creep properties it needs, so tests
// supply exactly those and nothing else.
package harvester

import "github.com/toejough/strictmock"

// Run decides what a harvester creep should do this tick. It touches the
// creep's store, its target source, and its say method.
func Run(creep *strictmock.Mock) string {
	free, _ := creep.GetMock("store").Call("getFreeCapacity")[0].(int)
	if free == 0 {
		creep.Call("say", "full")

		return "deliver"
	}

	sourceID, _ := creep.GetMock("memory").Get("sourceId").(string)
	if sourceID == "" {
		return "idle"
	}

	creep.Call("say", "mining")

	return "harvest " + sourceID
}
