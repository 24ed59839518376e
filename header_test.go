package ppm

import (
	"io"
	"testing"
	"testing/iotest"

	"go.viam.com/test"
)

func TestHeaderReader(t *testing.T) {
	got, err := io.ReadAll(NewHeaderReader(HeaderFor(MustNewCanvas(5, 3))))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(got), test.ShouldEqual, "P3\n5 3\n255\n")
}

func TestHeaderReaderOneByte(t *testing.T) {
	h := Header{Width: 1024, Height: 768, MaxValue: MaxValue}
	got, err := io.ReadAll(iotest.OneByteReader(NewHeaderReader(h)))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(got), test.ShouldEqual, "P3\n1024 768\n255\n")
	test.That(t, string(got), test.ShouldEqual, h.String())
}

func TestHeaderReaderStates(t *testing.T) {
	r := NewHeaderReader(Header{Width: 12, Height: 7, MaxValue: MaxValue})
	test.That(t, r.State(), test.ShouldEqual, StateMagic)

	for _, step := range []struct {
		size  int
		want  string
		state HeaderState
	}{
		{2, "P3", StateMagic},
		{1, "\n", StateWidth},
		{1, "1", StateWidth},
		{2, "2 ", StateHeight},
		{4, "7\n25", StateMaxValue},
		{10, "5\n", StateFinished},
	} {
		p := make([]byte, step.size)
		n, err := r.Read(p)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, string(p[:n]), test.ShouldEqual, step.want)
		test.That(t, r.State(), test.ShouldEqual, step.state)
	}

	n, err := r.Read(make([]byte, 8))
	test.That(t, n, test.ShouldEqual, 0)
	test.That(t, err, test.ShouldEqual, io.EOF)
	test.That(t, StateFinished.String(), test.ShouldEqual, "finished")
}

func TestHeaderReaderContract(t *testing.T) {
	h := Header{Width: 900, Height: 550, MaxValue: MaxValue}
	test.That(t, iotest.TestReader(NewHeaderReader(h), []byte(h.String())), test.ShouldBeNil)
}
