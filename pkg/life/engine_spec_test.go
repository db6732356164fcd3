package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"bitlife/pkg/life"
)

var _ = Describe("Engine", func() {
	var e *life.Engine

	BeforeEach(func() {
		var err error
		e, err = life.New(12, 10, life.AllDead())
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("still lifes", func() {
		It("keeps a block unchanged", func() {
			e.SetCells([]life.Cell{{Row: 4, Col: 4}, {Row: 4, Col: 5}, {Row: 5, Col: 4}, {Row: 5, Col: 5}})
			before := e.View().Snapshot().Bytes()
			e.SetTicks(5)
			e.Update()
			Expect(e.View().Bytes()).To(Equal(before))
			Expect(e.Generation()).To(BeEquivalentTo(5))
		})

		It("keeps a block that straddles the corner", func() {
			e.SetCells([]life.Cell{{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 0}})
			e.Update()
			Expect(e.Population()).To(Equal(4))
			Expect(e.Alive(9, 11)).To(BeTrue())
			Expect(e.Alive(0, 0)).To(BeTrue())
		})
	})

	Describe("the transition rule", func() {
		It("kills a lonely cell", func() {
			e.ToggleCell(3, 3)
			e.Update()
			Expect(e.Population()).To(BeZero())
		})

		It("births a cell with exactly three neighbours", func() {
			e.SetCells([]life.Cell{{Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 2}})
			e.Update()
			Expect(e.Alive(3, 3)).To(BeTrue())
			Expect(e.Population()).To(Equal(4))
		})

		It("kills an overcrowded centre", func() {
			e.SetCells([]life.Cell{
				{Row: 4, Col: 4},
				{Row: 3, Col: 4}, {Row: 5, Col: 4}, {Row: 4, Col: 3}, {Row: 4, Col: 5},
			})
			e.Update()
			Expect(e.Alive(4, 4)).To(BeFalse())
		})
	})

	Describe("stamping", func() {
		DescribeTable("wraps every offset into the grid",
			func(kind life.Pattern, row, col int) {
				e2, err := life.New(15, 15, life.AllDead())
				Expect(err).NotTo(HaveOccurred())
				e2.StampPattern(kind, row, col)
				Expect(e2.Population()).To(Equal(len(kind.Offsets())))
			},
			Entry("glider at origin", life.Glider, 0, 0),
			Entry("glider past the far edge", life.Glider, 29, 44),
			Entry("pulsar at origin", life.Pulsar, 0, 0),
			Entry("pulsar at negative anchor", life.Pulsar, -3, -20),
		)

		It("is idempotent", func() {
			e.StampPattern(life.Glider, 1, 1)
			once := e.View().Snapshot().Bytes()
			e.StampPattern(life.Glider, 1, 1)
			Expect(e.View().Bytes()).To(Equal(once))
		})
	})

	Describe("views", func() {
		It("reports the engine dimensions", func() {
			v := e.View()
			Expect(v.Width()).To(Equal(12))
			Expect(v.Height()).To(Equal(10))
			Expect(v.ByteLength()).To(Equal(15))
		})

		It("must be refetched after Update", func() {
			e.StampPattern(life.Glider, 0, 0)
			e.Update()
			fresh := e.View()
			Expect(fresh.AliveAt(0)).To(Equal(e.Alive(0, 0)))
			Expect(fresh.Bytes()).To(HaveLen(15))
		})

		It("rejects mismatched external buffers", func() {
			_, err := life.NewView(make([]byte, 3), 5, 5)
			Expect(err).To(MatchError(life.ErrInvalidDimensions))
		})
	})
})
