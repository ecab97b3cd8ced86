package mkp

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"

	juju "github.com/juju/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func parse(text string) (*Instance, error) {
	return ParseInstance(strings.NewReader(text))
}

func expectMalformed(err error, line int) {
	GinkgoHelper()
	Expect(err).To(HaveOccurred())
	Expect(errors.Is(err, ErrMalformedInstance)).To(BeTrue())
	var malformedErr *MalformedInstanceError
	Expect(errors.As(err, &malformedErr)).To(BeTrue())
	Expect(malformedErr.Line).To(Equal(line))
}

var _ = Describe("ParseInstance", func() {
	Context("with a well formed input", func() {
		It("should build items with 1-based ids and efficiencies", func() {
			inst, err := parse("3 2 0 8\n4 5 3\n2 3 1\n3 1 2\n4 4\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.N).To(Equal(3))
			Expect(inst.M).To(Equal(2))
			Expect(inst.Optimum).To(Equal(8))
			Expect(inst.Capacity).To(Equal([]int{4, 4}))
			Expect(inst.Items).To(HaveLen(3))

			Expect(inst.Items[0].ID).To(Equal(1))
			Expect(inst.Items[0].Weights).To(Equal([]int{2, 3}))
			Expect(inst.Items[0].Efficiency).To(BeNumerically("~", 0.8, 1e-9))
			Expect(inst.Items[1].Efficiency).To(BeNumerically("~", 1.25, 1e-9))
			Expect(inst.Items[2].Efficiency).To(BeNumerically("~", 1.0, 1e-9))
		})

		It("should treat items without weight as most efficient", func() {
			inst, err := parse("2 1 0 0\n0 3\n0 1\n5\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Items[0].Degenerate()).To(BeTrue())
			Expect(math.IsInf(inst.Items[0].Efficiency, 1)).To(BeTrue())
			Expect(MoreEfficient(inst.Items[0], inst.Items[1])).To(BeTrue())
		})

		It("should tolerate trailing empty lines and extra spacing", func() {
			inst, err := parse("  2 1 0 0 \n6\t5\n1  1\n10\n\n\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Profits).To(Equal([]int{6, 5}))
		})

		It("should accept an instance without items", func() {
			inst, err := parse("0 1 0 0\n\n\n7\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Items).To(BeEmpty())
			Expect(inst.Capacity).To(Equal([]int{7}))
		})

		It("should survive a round trip through WriteText", func() {
			inst, err := parse("3 1 0 14\n10 7 7\n5 3 3\n6\n")
			Expect(err).NotTo(HaveOccurred())
			var buf bytes.Buffer
			Expect(inst.WriteText(&buf)).To(Succeed())
			Expect(buf.String()).To(Equal("3 1 0 14\n10 7 7\n5 3 3\n6\n"))

			again, err := ParseInstance(&buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Profits).To(Equal(inst.Profits))
			Expect(again.Weights).To(Equal(inst.Weights))
			Expect(again.Capacity).To(Equal(inst.Capacity))
		})
	})

	Context("with a malformed input", func() {
		It("should reject an empty input", func() {
			_, err := parse("")
			expectMalformed(err, 1)
		})

		It("should reject a short header", func() {
			_, err := parse("3 1\n1 2 3\n1 1 1\n5\n")
			expectMalformed(err, 1)
		})

		It("should reject non-integer tokens", func() {
			_, err := parse("2 1 0 0\n1 x\n1 1\n5\n")
			expectMalformed(err, 2)
		})

		It("should reject negative integers", func() {
			_, err := parse("2 1 0 0\n1 2\n1 -1\n5\n")
			expectMalformed(err, 3)
		})

		It("should reject a profit line of the wrong length", func() {
			_, err := parse("3 1 0 0\n1 2\n1 1 1\n5\n")
			expectMalformed(err, 2)
		})

		It("should reject a weight row of the wrong length", func() {
			_, err := parse("2 2 0 0\n1 2\n1 1\n1\n5 5\n")
			expectMalformed(err, 4)
		})

		It("should reject a capacity line of the wrong length", func() {
			_, err := parse("2 2 0 0\n1 2\n1 1\n1 1\n5\n")
			expectMalformed(err, 5)
		})

		It("should reject missing lines", func() {
			_, err := parse("2 2 0 0\n1 2\n1 1\n")
			expectMalformed(err, 4)
		})

		It("should reject a dimension count beyond the input", func() {
			_, err := parse("2 100 0 0\n1 2\n1 1\n")
			expectMalformed(err, 4)
		})

		It("should reject content after the capacities", func() {
			_, err := parse("1 1 0 0\n1\n1\n5\n9\n")
			expectMalformed(err, 5)
		})

		It("should reject blank lines in between", func() {
			_, err := parse("1 1 0 0\n\n1\n1\n5\n")
			expectMalformed(err, 2)
		})
	})
})

var _ = Describe("NewInstance", func() {
	It("should reject mismatching dimensions without a line hint", func() {
		_, err := NewInstance([]int{1, 2}, [][]int{{1, 1}}, []int{3, 3})
		expectMalformed(err, 0)

		_, err = NewInstance([]int{1, 2}, [][]int{{1}}, []int{3})
		expectMalformed(err, 0)

		_, err = NewInstance([]int{-1}, [][]int{{1}}, []int{3})
		expectMalformed(err, 0)
	})

	It("should look items up by id", func() {
		inst, err := NewInstance([]int{1, 2}, [][]int{{1, 1}}, []int{3})
		Expect(err).NotTo(HaveOccurred())
		item, ok := inst.Item(2)
		Expect(ok).To(BeTrue())
		Expect(item.Profit).To(Equal(2))
		_, ok = inst.Item(0)
		Expect(ok).To(BeFalse())
		_, ok = inst.Item(3)
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("ParseORLibrary", func() {
	It("should read several problems with wrapped lines", func() {
		input := "2\n3 2 8\n4 5\n3\n2 3 1\n3 1 2 4 4\n" +
			"2 1 0\n  6 5\n1 1 10\n"
		instances, err := ParseORLibrary(strings.NewReader(input))
		Expect(err).NotTo(HaveOccurred())
		Expect(instances).To(HaveLen(2))
		Expect(instances[0].Profits).To(Equal([]int{4, 5, 3}))
		Expect(instances[0].Weights).To(Equal([][]int{{2, 3, 1}, {3, 1, 2}}))
		Expect(instances[0].Capacity).To(Equal([]int{4, 4}))
		Expect(instances[0].Optimum).To(Equal(8))
		Expect(instances[1].Capacity).To(Equal([]int{10}))
	})

	It("should report truncated problems", func() {
		_, err := ParseORLibrary(strings.NewReader("1\n3 1 0\n1 2 3\n1 1\n"))
		expectMalformed(err, 4)
	})

	It("should report trailing content", func() {
		_, err := ParseORLibrary(strings.NewReader("1\n1 1 0\n1\n1\n5\n6\n"))
		expectMalformed(err, 6)
	})
})

var _ = Describe("LoadInstance", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should load text files and name instances after them", func() {
		path := filepath.Join(dir, "s1.txt")
		Expect(os.WriteFile(path, []byte("3 1 0 0\n6 5 4\n1 1 1\n10\n"), 0644)).To(Succeed())
		inst, err := LoadInstance(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(inst.Name).To(Equal("s1"))
		Expect(inst.Items).To(HaveLen(3))
	})

	It("should load JSON documents with their solutions", func() {
		inst, err := NewInstance([]int{6, 5, 4}, [][]int{{1, 1, 1}}, []int{10})
		Expect(err).NotTo(HaveOccurred())
		inst.Name = "doc"
		inst.Solutions = []*Solution{NewSolution(inst, "greedy", []int{1, 2, 3}, 15, []int{7})}
		path := filepath.Join(dir, "doc.json")
		Expect(WriteJSON(path, inst)).To(Succeed())

		content, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(ContainSubstring(`"profits": [6,5,4]`))

		loaded, err := LoadInstance(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Name).To(Equal("doc"))
		Expect(loaded.Items).To(HaveLen(3))
		Expect(loaded.Solutions).To(HaveLen(1))
		Expect(loaded.Solutions[0].PickedItems).To(Equal([]int{1, 2, 3}))
		Expect(Verify(loaded, loaded.Solutions[0])).To(Succeed())
	})

	It("should annotate malformed files with their path", func() {
		path := filepath.Join(dir, "bad.txt")
		Expect(os.WriteFile(path, []byte("1 1 0 0\nx\n1\n1\n"), 0644)).To(Succeed())
		_, err := LoadInstance(path)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(path))
		cause, ok := juju.Cause(err).(*MalformedInstanceError)
		Expect(ok).To(BeTrue())
		Expect(cause.Line).To(Equal(2))
	})

	It("should reject JSON documents that do not validate", func() {
		path := filepath.Join(dir, "bad.json")
		Expect(os.WriteFile(path, []byte(`{"n": 2, "m": 1, "profits": [1], "weights": [[1, 1]], "capacity": [3]}`), 0644)).To(Succeed())
		_, err := LoadInstance(path)
		Expect(err).To(HaveOccurred())
		_, ok := juju.Cause(err).(*MalformedInstanceError)
		Expect(ok).To(BeTrue())
	})

	It("should report missing files", func() {
		_, err := LoadInstance(filepath.Join(dir, "missing.txt"))
		Expect(err).To(HaveOccurred())
		Expect(os.IsNotExist(juju.Cause(err))).To(BeTrue())
	})
})
