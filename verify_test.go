package mkp

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Verify", func() {
	var inst *Instance

	BeforeEach(func() {
		var err error
		inst, err = NewInstance([]int{4, 5, 3}, [][]int{{2, 3, 1}, {3, 1, 2}}, []int{4, 4})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should accept a consistent solution", func() {
		sol := NewSolution(inst, "greedy", []int{2, 3}, 8, []int{0, 1})
		Expect(sol.Utilization).To(Equal([]string{"100.00%", "75.00%"}))
		Expect(Verify(inst, sol)).To(Succeed())
	})

	It("should accept the empty solution", func() {
		Expect(Verify(inst, &Solution{})).To(Succeed())
	})

	It("should skip remaining and utilization when absent", func() {
		Expect(Verify(inst, &Solution{PickedItems: []int{1}, TotalProfit: 4})).To(Succeed())
	})

	DescribeTable("should reject",
		func(sol *Solution, message string) {
			Expect(Verify(inst, sol)).To(MatchError(ContainSubstring(message)))
		},
		Entry("unknown ids", &Solution{PickedItems: []int{4}}, "item 4 does not exist"),
		Entry("id zero", &Solution{PickedItems: []int{0}}, "item 0 does not exist"),
		Entry("repeated ids", &Solution{PickedItems: []int{3, 3}, TotalProfit: 6}, "item 3 picked twice"),
		Entry("a wrong profit", &Solution{PickedItems: []int{3}, TotalProfit: 4}, "profit of 3 but 4"),
		Entry("an infeasible pick", &Solution{PickedItems: []int{1, 2}, TotalProfit: 9}, "dimension 1 uses 5"),
		Entry("wrong remaining capacity", &Solution{PickedItems: []int{3}, TotalProfit: 3, Remaining: []int{3, 3}},
			"dimension 2 has 2 left"),
		Entry("a short remaining vector", &Solution{PickedItems: []int{3}, TotalProfit: 3, Remaining: []int{3}},
			"1 remaining capacities"),
		Entry("wrong utilization", &Solution{PickedItems: []int{3}, TotalProfit: 3, Utilization: []string{"25.00%", "25.00%"}},
			"dimension 2 is utilized 50.00%"),
	)
})
