package host_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/screensavers/internal/host"
	"github.com/san-kum/screensavers/internal/render"
	"github.com/san-kum/screensavers/internal/savers"
)

var _ = Describe("Router", func() {
	var (
		saver  *clickSaver
		h      *host.Host
		router *host.Router
	)

	BeforeEach(func() {
		saver = &clickSaver{name: "Clicks"}
		h = host.New(savers.NewRegistry(saver, quietSaver{}, &clickSaver{name: "Other"}), width, height)
		router = host.NewRouter(h)
	})

	Context("while idle", func() {
		It("navigates with the arrow keys", func() {
			router.OnKeyDown(host.ArrowLeft)
			Expect(h.Runtime.Selected).To(Equal(2))
			router.OnKeyDown(host.ArrowRight)
			router.OnKeyDown(host.ArrowRight)
			Expect(h.Runtime.Selected).To(Equal(1))
		})

		DescribeTable("launches on",
			func(k host.Key) {
				router.OnKeyDown(k)
				Expect(h.Running()).To(BeTrue())
				Expect(h.Runtime.Active).To(Equal(0))
			},
			Entry("Space", host.Space),
			Entry("Enter", host.Enter),
		)

		It("ignores Escape and unknown keys", func() {
			router.OnKeyDown(host.Escape)
			router.OnKeyDown(host.Key("KeyQ"))
			Expect(h.Running()).To(BeFalse())
			Expect(h.Runtime.Selected).To(Equal(0))
		})

		It("navigates with the arrow buttons", func() {
			router.OnLeftClick(60, height/2)
			Expect(h.Runtime.Selected).To(Equal(2))
			router.OnLeftClick(width-60, height/2+40)
			Expect(h.Runtime.Selected).To(Equal(0))
		})

		It("launches from the start button", func() {
			router.OnLeftClick(width/2, height-60)
			Expect(h.Running()).To(BeTrue())
			Expect(saver.setups).To(Equal(1))
		})

		It("ignores clicks elsewhere and right clicks", func() {
			router.OnLeftClick(width/2, height/2)
			router.OnLeftClick(10, 10)
			router.OnRightClick(width/2, height-60)
			Expect(h.Running()).To(BeFalse())
			Expect(h.Runtime.Selected).To(Equal(0))
		})
	})

	Context("while running", func() {
		BeforeEach(func() {
			router.OnKeyDown(host.Enter)
		})

		It("routes clicks to the simulation only", func() {
			router.OnLeftClick(60, height/2)
			router.OnRightClick(width/2, height-60)
			Expect(saver.last.clicks).To(Equal([]click{
				{x: 60, y: height / 2},
				{x: width / 2, y: height - 60, right: true},
			}))
			Expect(h.Runtime.Selected).To(Equal(0))
			Expect(saver.setups).To(Equal(1))
		})

		It("ignores navigation and launch keys", func() {
			router.OnKeyDown(host.ArrowRight)
			router.OnKeyDown(host.Enter)
			Expect(h.Runtime.Selected).To(Equal(0))
			Expect(saver.setups).To(Equal(1))
		})

		It("leaves on Escape and stops routing clicks", func() {
			sim := saver.last
			router.OnKeyDown(host.Escape)
			Expect(h.Running()).To(BeFalse())

			h.Tick(render.NewRecorder(width, height))
			router.OnRightClick(1, 1)
			Expect(sim.clicks).To(BeEmpty())
		})
	})
})
