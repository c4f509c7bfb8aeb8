// Package tick holds per-tick orchestration logic used to demonstrate
// environment mocks: globals and constructors live in an explicit Env rather
// than the process namespace.
package tick

import "github.com/toejough/strictmock"

// RallyPoint reads the current tick from the Game global and constructs a
// rally position in the given room via the RoomPosition constructor.
func RallyPoint(env *strictmock.Env, roomName string) (int, *strictmock.Mock) {
	game := env.Global("Game")
	time, _ := game.Get("time").(int)

	ctor := env.Constructor(strictmock.RoomPositionSlot)

	pos, _ := ctor.Call(25, 25, roomName)[0].(*strictmock.Mock)

	return time, pos
}
