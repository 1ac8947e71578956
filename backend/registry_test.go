package backend

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestActiveBeforeSelect(t *testing.T) {
	g := NewWithT(t)
	reset()

	_, err := Active()
	g.Expect(err).To(MatchError(ErrUnselected))

	_, err = Name()
	g.Expect(err).To(MatchError(ErrUnselected))
}

func TestSelectDense(t *testing.T) {
	g := NewWithT(t)
	reset()

	g.Expect(Select(DenseName)).To(Succeed())

	ops, err := Active()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ops.Name()).To(Equal(DenseName))

	name, err := Name()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(name).To(Equal(DenseName))

	v := ops.FromSlice([]float64{1, 2, 3})
	g.Expect(v.Len()).To(Equal(3))
	g.Expect(ops.ToSlice(v)).To(Equal([]float64{1, 2, 3}))
}

func TestSelectDual(t *testing.T) {
	g := NewWithT(t)
	reset()

	g.Expect(Select(DualName)).To(Succeed())

	ops, err := Active()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ops.Name()).To(Equal(DualName))

	v := ops.FromSlice([]float64{1, 2, 3})
	g.Expect(v.Len()).To(Equal(3))
	g.Expect(ops.ToSlice(v)).To(Equal([]float64{1, 2, 3}))
}

func TestSelectUnknownLeavesSelectionUntouched(t *testing.T) {
	g := NewWithT(t)
	reset()

	g.Expect(Select(DenseName)).To(Succeed())

	err := Select("torch")
	g.Expect(err).To(MatchError(ErrUnsupported))
	g.Expect(err.Error()).To(ContainSubstring("torch"))

	name, err := Name()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(name).To(Equal(DenseName))
}

func TestReselectSameNameIsNoOp(t *testing.T) {
	g := NewWithT(t)
	reset()

	g.Expect(Select(DualName)).To(Succeed())
	g.Expect(Select(DualName)).To(Succeed())

	name, err := Name()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(name).To(Equal(DualName))
}

func TestReselectSwitchesSubstrate(t *testing.T) {
	g := NewWithT(t)
	reset()

	g.Expect(Select(DenseName)).To(Succeed())
	before, _ := Active()

	g.Expect(Select(DualName)).To(Succeed())
	after, _ := Active()

	g.Expect(before.Name()).To(Equal(DenseName))
	g.Expect(after.Name()).To(Equal(DualName))
}

func TestNames(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Names()).To(Equal([]string{DenseName, DualName}))
}

func TestInjectableConstructors(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Dense().Name()).To(Equal(DenseName))
	g.Expect(Dual().Name()).To(Equal(DualName))
}
