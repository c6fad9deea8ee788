package host_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/screensavers/internal/gfx"
	"github.com/san-kum/screensavers/internal/host"
	"github.com/san-kum/screensavers/internal/render"
)

var _ = Describe("Menu", func() {
	menu := host.Menu{Width: width, Height: height}

	It("draws the selection, both arrows and the start button", func() {
		rec := render.NewRecorder(width, height)
		menu.Draw(rec, "Fish Tank")

		Expect(rec.LastClear).To(Equal(gfx.Hex("#444")))
		Expect(rec.Texts).To(Equal([]string{"Fish Tank", "Start"}))
		Expect(rec.Counts[render.OpFillPolygon]).To(Equal(2))
		Expect(rec.Counts[render.OpFillRect]).To(Equal(1))
		Expect(rec.Colors).To(ContainElement(gfx.Hex("#888")))
	})

	DescribeTable("hit tests",
		func(x, y float64, want host.Region) {
			Expect(menu.HitTest(x, y)).To(Equal(want))
		},
		Entry("left arrow tip", 40.0, 300.0, host.RegionPrev),
		Entry("left arrow base corner", 80.0, 260.0, host.RegionPrev),
		Entry("right arrow", 740.0, 340.0, host.RegionNext),
		Entry("start button corner", 320.0, 500.0, host.RegionStart),
		Entry("start button far corner", 480.0, 580.0, host.RegionStart),
		Entry("just below the button", 400.0, 581.0, host.RegionNone),
		Entry("above the arrows", 60.0, 259.0, host.RegionNone),
		Entry("canvas center", 400.0, 300.0, host.RegionNone),
	)
})
