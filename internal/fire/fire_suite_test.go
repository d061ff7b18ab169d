package fire_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bunit/internal/fire"
)

func TestFireSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Fire Engine Suite")
}

type zeroSource struct{}

func (zeroSource) Float64() float64 { return 0 }

func heatSum(s *fire.Sim) int {
	sum := 0
	for _, v := range s.Buffer() {
		sum += v
	}
	return sum
}

var _ = Describe("Diffusion", func() {
	var sim *fire.Sim

	BeforeEach(func() {
		var err error
		sim, err = fire.NewWithSource(9, 3, zeroSource{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("keeps every read of the sweep inside the buffer", func() {
		// The last visible index exercises the deepest forward reads.
		last := sim.Size() - 1
		Expect(last + sim.Width() + 1).To(Equal(len(sim.Buffer()) - 1))
	})

	Context("with a single hot cell and injection disabled", func() {
		BeforeEach(func() {
			sim.Buffer()[20] = fire.SeedHeat
		})

		It("never increases total heat", func() {
			prev := heatSum(sim)
			for pass := 0; pass < 50; pass++ {
				sim.Diffuse()
				cur := heatSum(sim)
				Expect(cur).To(BeNumerically("<=", prev))
				prev = cur
			}
		})

		It("cools to zero within passes proportional to the buffer size", func() {
			bound := 10 * len(sim.Buffer())
			for pass := 0; pass < bound && heatSum(sim) > 0; pass++ {
				sim.Diffuse()
			}
			Expect(heatSum(sim)).To(BeZero())
		})
	})

	Context("with continuous injection", func() {
		It("keeps every cell non-negative across many frames", func() {
			s, err := fire.New(45, 13)
			Expect(err).NotTo(HaveOccurred())
			for frame := 0; frame < 300; frame++ {
				s.Step()
			}
			for _, v := range s.Buffer() {
				Expect(v).To(BeNumerically(">=", 0))
			}
		})

		It("never lets heat past the seed value", func() {
			s, err := fire.New(45, 13)
			Expect(err).NotTo(HaveOccurred())
			for frame := 0; frame < 300; frame++ {
				s.Step()
				for _, v := range s.Buffer() {
					Expect(v).To(BeNumerically("<=", fire.SeedHeat))
				}
			}
		})
	})
})
