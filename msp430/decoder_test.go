package msp430_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/msp430dis/msp430"
)

var _ = Describe("Decode", func() {
	It("rejects buffers shorter than one word", func() {
		_, err := msp430.Decode([]byte{0x00})
		Expect(err).To(Equal(msp430.ErrMissingInstruction))
	})

	It("rejects an empty buffer", func() {
		_, err := msp430.Decode(nil)
		Expect(err).To(Equal(msp430.ErrMissingInstruction))
	})

	Describe("conditional jumps", func() {
		It("decodes jnz with a zero offset", func() {
			inst, err := msp430.Decode([]byte{0x00, 0x20})
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Op).To(Equal(msp430.OpJnz))
			Expect(inst.JumpOffset).To(Equal(int16(0)))
			Expect(inst.Size()).To(Equal(2))
			Expect(inst.String()).To(Equal("jnz #0x0"))
		})

		It("decodes jnz with a negative offset using two's complement", func() {
			inst, err := msp430.Decode([]byte{0xf9, 0x23})
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Op).To(Equal(msp430.OpJnz))
			Expect(inst.JumpOffset).To(Equal(int16(-7)))
			Expect(inst.Size()).To(Equal(2))
		})

		It("decodes every condition code", func() {
			cases := []struct {
				bytes []byte
				op    msp430.Op
			}{
				{[]byte{0x00, 0x20}, msp430.OpJnz},
				{[]byte{0x00, 0x24}, msp430.OpJz},
				{[]byte{0x00, 0x28}, msp430.OpJlo},
				{[]byte{0x00, 0x2c}, msp430.OpJc},
				{[]byte{0x00, 0x30}, msp430.OpJn},
				{[]byte{0x00, 0x34}, msp430.OpJge},
				{[]byte{0x00, 0x38}, msp430.OpJl},
				{[]byte{0x00, 0x3c}, msp430.OpJmp},
			}

			for _, c := range cases {
				inst, err := msp430.Decode(c.bytes)
				Expect(err).NotTo(HaveOccurred())
				Expect(inst.Op).To(Equal(c.op))
				Expect(inst.JumpOffset).To(Equal(int16(0)))
			}
		})
	})

	Describe("single-operand instructions", func() {
		It("decodes rrc with a register-direct source", func() {
			inst, err := msp430.Decode([]byte{0x09, 0x10})
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Op).To(Equal(msp430.OpRrc))
			Expect(inst.Source).To(Equal(msp430.Operand{Kind: msp430.KindRegisterDirect, Register: 9}))
			Expect(inst.HasWidth).To(BeTrue())
			Expect(inst.Width).To(Equal(msp430.Word))
			Expect(inst.Size()).To(Equal(2))
			Expect(inst.String()).To(Equal("rrc r9"))
		})

		It("decodes rrc with an indexed source needing an extension word", func() {
			inst, err := msp430.Decode([]byte{0x19, 0x10, 0xfb, 0xff})
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Op).To(Equal(msp430.OpRrc))
			Expect(inst.Source).To(Equal(msp430.Operand{Kind: msp430.KindIndexed, Register: 9, Displacement: -5}))
			Expect(inst.Size()).To(Equal(4))
		})

		It("decodes reti without touching the source fields", func() {
			inst, err := msp430.Decode([]byte{0x00, 0x13})
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Op).To(Equal(msp430.OpReti))
			Expect(inst.Size()).To(Equal(2))
			Expect(inst.String()).To(Equal("reti"))
		})

		It("decodes push with an absolute source", func() {
			inst, err := msp430.Decode([]byte{0x12, 0x12, 0x00, 0x44})
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Op).To(Equal(msp430.OpPush))
			Expect(inst.Source).To(Equal(msp430.Operand{Kind: msp430.KindAbsolute, Imm: 0x4400}))
			Expect(inst.Size()).To(Equal(4))
			Expect(inst.String()).To(Equal("push &0x4400"))
		})

		It("decodes call with an immediate source", func() {
			inst, err := msp430.Decode([]byte{0xb0, 0x12, 0x02, 0x00})
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Op).To(Equal(msp430.OpCall))
			Expect(inst.Source).To(Equal(msp430.Operand{Kind: msp430.KindImmediate, Imm: 2}))
			Expect(inst.Size()).To(Equal(4))
			Expect(inst.String()).To(Equal("call #0x2"))
		})

		It("rejects single-operand opcode 7", func() {
			_, err := msp430.Decode([]byte{0x80, 0x03})
			Expect(err).To(BeAssignableToTypeOf(&msp430.InvalidOpcodeError{}))
		})
	})

	Describe("two-operand instructions", func() {
		It("decodes mov between two registers without emulating it", func() {
			inst, err := msp430.Decode([]byte{0x0f, 0x4f})
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Op).To(Equal(msp430.OpMov))
			Expect(inst.Source).To(Equal(msp430.Operand{Kind: msp430.KindRegisterDirect, Register: 15}))
			Expect(inst.Destination).To(Equal(msp430.Operand{Kind: msp430.KindRegisterDirect, Register: 15}))
			Expect(inst.Size()).To(Equal(2))
		})
	})

	Describe("emulation", func() {
		It("rewrites mov #0, r3 into nop", func() {
			inst, err := msp430.Decode([]byte{0x03, 0x43})
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Op).To(Equal(msp430.OpNop))
			Expect(inst.Size()).To(Equal(2))
			Expect(inst.String()).To(Equal("nop"))
		})
	})

	Describe("error surfacing", func() {
		It("propagates a missing source extension word", func() {
			_, err := msp430.Decode([]byte{0x10, 0x40})
			Expect(err).To(Equal(msp430.ErrMissingSource))
		})

		It("propagates a missing destination extension word", func() {
			_, err := msp430.Decode([]byte{0x80, 0x40})
			Expect(err).To(Equal(msp430.ErrMissingDestination))
		})
	})

	Describe("size law", func() {
		It("never reports a size larger than the input, and trailing bytes never matter", func() {
			data := []byte{0x19, 0x10, 0xfb, 0xff, 0xaa, 0xbb, 0xcc}
			inst, err := msp430.Decode(data)
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Size()).To(BeNumerically("<=", len(data)))
			Expect([]int{2, 4, 6}).To(ContainElement(inst.Size()))

			again, err := msp430.Decode(data[:inst.Size()])
			Expect(err).NotTo(HaveOccurred())
			Expect(again.String()).To(Equal(inst.String()))
		})
	})
})
