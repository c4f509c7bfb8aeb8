package harvester_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive

	"github.com/toejough/strictmock"
	harvester "github.com/toejough/strictmock/UAT/01-strict-creep-logic"
)

func TestRun_Harvesting(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	creep := strictmock.MockInstanceOf(strictmock.Tree{
		"store": strictmock.Tree{
			"getFreeCapacity": func() int { return 50 },
		},
		"memory": strictmock.Tree{"sourceId": "src-1"},
		"say":    func(string) {},
	}, false)

	g.Expect(harvester.Run(creep)).To(Equal("harvest src-1"))

	// The say spy recorded the announcement.
	g.Expect(creep.GetSpy("say").Calls()).To(HaveLen(1))
	g.Expect(creep.GetSpy("say").Calls()[0][0]).To(Equal("mining"))
}

func TestRun_FullStoreDelivers(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	creep := strictmock.MockInstanceOf(strictmock.Tree{
		"store": strictmock.Tree{
			"getFreeCapacity": func() int { return 0 },
		},
		"say": func(string) {},
	}, false)

	// Run never touches memory on the full-store path, so leaving it unmocked
	// is safe: that is the whole point of strict mode.
	g.Expect(harvester.Run(creep)).To(Equal("deliver"))
}

func TestRun_UnmockedAccessFailsLoudly(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	// Store is mocked, memory is not. The harvest path will reach for
	// memory.sourceId and must fail with the exact path.
	creep := strictmock.MockInstanceOf(strictmock.Tree{
		"store": strictmock.Tree{
			"getFreeCapacity": func() int { return 50 },
		},
	}, false)

	g.Expect(func() { harvester.Run(creep) }).To(PanicWith(MatchError(ContainSubstring(`"memory"`))))
}

func TestRun_StubbedCapacityChangesTheDecision(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	creep := strictmock.MockInstanceOf(strictmock.Tree{
		"store": strictmock.Tree{
			"getFreeCapacity": func() int { return 50 },
		},
		"say": func(string) {},
	}, false)

	// Reconfigure the spy after construction: the stub wins over the
	// override's own logic.
	creep.GetMock("store").GetSpy("getFreeCapacity").SetReturn(0)

	g.Expect(harvester.Run(creep)).To(Equal("deliver"))
}
