package chart_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/anomalyplay/internal/chart"
	"github.com/san-kum/anomalyplay/internal/dataset"
)

func yearly(from, to int) dataset.Dataset {
	d := make(dataset.Dataset, 0, to-from+1)
	for y := from; y <= to; y++ {
		d = append(d, dataset.DataPoint{Year: y, Mean: float64(y-from) * 0.01})
	}
	return d
}

var _ = Describe("Playback", func() {
	var (
		c   *chart.Controller
		eff chart.Effects
	)

	BeforeEach(func() {
		c = chart.New(chart.DefaultOptions())
		Expect(c.Load(yearly(1880, 1900))).To(Succeed())
	})

	runToCompletion := func(gen int) []int {
		var shown []int
		for i := 0; i < 1000 && c.State() == chart.Playing; i++ {
			c.Update(chart.TickMsg{Gen: gen})
			shown = append(shown, c.Playhead())
		}
		return shown
	}

	Context("when Play is clicked from an earlier year", func() {
		BeforeEach(func() {
			c.Update(chart.SeekMsg{Year: 1890})
			eff = c.Update(chart.PlayMsg{})
		})

		It("switches the controls", func() {
			Expect(eff.StartTimer).To(BeTrue())
			Expect(c.State()).To(Equal(chart.Playing))
			Expect(c.Controls()).To(Equal(chart.Controls{PauseEnabled: true}))
		})

		It("visits every remaining year once in ascending order", func() {
			Expect(runToCompletion(eff.Gen)).To(Equal([]int{
				1890, 1891, 1892, 1893, 1894, 1895, 1896, 1897, 1898, 1899, 1900,
			}))
			Expect(c.State()).To(Equal(chart.Idle))
			Expect(c.Controls().PlayEnabled).To(BeTrue())
		})

		It("keeps the rendered set equal to the filtered dataset on every tick", func() {
			for c.State() == chart.Playing {
				c.Update(chart.TickMsg{Gen: eff.Gen})
				Expect(c.Scene().Markers).To(HaveLen(c.Playhead() - 1880 + 1))
				Expect(c.Visible()).To(Equal(c.Dataset().Filter(c.Playhead())))
			}
		})

		Context("and then paused", func() {
			BeforeEach(func() {
				c.Update(chart.TickMsg{Gen: eff.Gen})
				c.Update(chart.TickMsg{Gen: eff.Gen})
				Expect(c.Update(chart.PauseMsg{}).StopTimer).To(BeTrue())
			})

			It("freezes on the last rendered frame", func() {
				Expect(c.Playhead()).To(Equal(1891))
				c.Update(chart.TickMsg{Gen: eff.Gen})
				c.Update(chart.TickMsg{Gen: eff.Gen})
				Expect(c.Playhead()).To(Equal(1891))
				Expect(c.State()).To(Equal(chart.Idle))
			})

			It("resumes from the slider year with a new timer", func() {
				resumed := c.Update(chart.PlayMsg{})
				Expect(resumed.Gen).NotTo(Equal(eff.Gen))
				Expect(runToCompletion(resumed.Gen)).To(HaveLen(10))
			})
		})
	})

	Context("when Play is clicked at the terminal year", func() {
		It("completes after one tick", func() {
			eff = c.Update(chart.PlayMsg{})
			Expect(runToCompletion(eff.Gen)).To(Equal([]int{1900}))
			Expect(c.Controls()).To(Equal(chart.Controls{PlayEnabled: true}))
		})
	})

	Context("when the dataset is empty", func() {
		It("skips rendering instead of failing later", func() {
			empty := chart.New(chart.DefaultOptions())
			Expect(empty.Load(dataset.Dataset{})).To(MatchError(dataset.ErrEmptyDataset))
			Expect(empty.Update(chart.PlayMsg{}).StartTimer).To(BeFalse())
			Expect(empty.Message()).NotTo(BeEmpty())
		})
	})
})
