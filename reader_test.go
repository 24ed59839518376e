package ppm

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"go.viam.com/test"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func readAll(t *testing.T, c *Canvas, opts ...Option) string {
	t.Helper()
	r, err := NewReader(c, opts...)
	test.That(t, err, test.ShouldBeNil)
	out, err := io.ReadAll(r)
	test.That(t, err, test.ShouldBeNil)
	return string(out)
}

func TestReaderHeader(t *testing.T) {
	out := readAll(t, MustNewCanvas(5, 3))
	test.That(t, out, test.ShouldStartWith, "P3\n5 3\n255\n")
}

func TestReaderPixelData(t *testing.T) {
	c := MustNewCanvas(5, 3)
	c.WritePixel(0, 0, NewColor(1.5, 0, 0))
	c.WritePixel(2, 1, NewColor(0, 0.5, 0))
	c.WritePixel(4, 2, NewColor(-0.5, 0, 1.0))

	test.That(t, readAll(t, c), test.ShouldEqual, `P3
5 3
255
255 0 0 0 0 0 0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 128 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0 0 0 0 0 0 255
`)
}

func TestReaderSplitsLongLines(t *testing.T) {
	c := MustNewCanvas(10, 2)
	c.Fill(NewColor(1, 0.8, 0.6))

	core, logs := observer.New(zap.DebugLevel)
	test.That(t, readAll(t, c, WithLogger(zap.New(core))), test.ShouldEqual, `P3
10 2
255
255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204
153 255 204 153 255 204 153 255 204 153 255 204 153
255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204
153 255 204 153 255 204 153 255 204 153 255 204 153
`)
	test.That(t, logs.FilterMessage("splitting long row").Len(), test.ShouldEqual, 2)
}

func TestReaderEndsWithNewline(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {5, 3}, {10, 2}, {37, 4}} {
		out := readAll(t, MustNewCanvas(dims[0], dims[1]))
		test.That(t, out[len(out)-1], test.ShouldEqual, byte('\n'))
		test.That(t, out, test.ShouldNotEndWith, "\n\n")
	}
}

func TestReaderLineInvariants(t *testing.T) {
	c := MustNewCanvas(41, 7)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			c.WritePixel(x, y, NewColor(float64(x)/40, float64(y)/6, -float64(x*y)))
		}
	}
	out := readAll(t, c)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	values := 0
	for _, line := range lines[3:] {
		test.That(t, len(line), test.ShouldBeLessThanOrEqualTo, LineLimit)
		for _, f := range strings.Fields(line) {
			test.That(t, f, test.ShouldNotContainSubstring, "-")
			test.That(t, len(f), test.ShouldBeLessThanOrEqualTo, 3)
			values++
		}
	}
	test.That(t, values, test.ShouldEqual, 41*7*3)
}

func TestReaderSmallReads(t *testing.T) {
	c := MustNewCanvas(10, 2)
	c.Fill(NewColor(1, 0.8, 0.6))
	want, err := EncodeToBytes(c)
	test.That(t, err, test.ShouldBeNil)

	r, err := NewReader(c)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, r.Len(), test.ShouldEqual, len(want))
	got, err := io.ReadAll(iotest.OneByteReader(r))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, got, test.ShouldResemble, want)
	test.That(t, r.Len(), test.ShouldEqual, 0)

	r, err = NewReader(c)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, iotest.TestReader(r, want), test.ShouldBeNil)
}

func TestReaderWriteTo(t *testing.T) {
	c := MustNewCanvas(3, 1)
	r, err := NewReader(c)
	test.That(t, err, test.ShouldBeNil)

	head := make([]byte, 3)
	_, err = io.ReadFull(r, head)
	test.That(t, err, test.ShouldBeNil)

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, int64(len("3 1\n255\n0 0 0 0 0 0 0 0 0\n")))
	test.That(t, string(head)+buf.String(), test.ShouldEqual, "P3\n3 1\n255\n0 0 0 0 0 0 0 0 0\n")
}

func TestReaderLineLimitOption(t *testing.T) {
	c := MustNewCanvas(2, 1)
	c.Fill(White)
	test.That(t, readAll(t, c, WithLineLimit(8)), test.ShouldEqual, "P3\n2 1\n255\n255 255\n255 255\n255 255\n")

	_, err := NewReader(c, WithLineLimit(0))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, readAll(t, c, WithLogger(nil)), test.ShouldEqual, "P3\n2 1\n255\n255 255 255 255 255 255\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncode(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 255, G: 128, B: 1, A: 255})

	var buf bytes.Buffer
	test.That(t, Encode(&buf, img), test.ShouldBeNil)
	test.That(t, buf.String(), test.ShouldEqual, "P3\n2 1\n255\n255 128 1 0 0 0\n")

	c := MustNewCanvas(2, 1)
	c.WritePixel(0, 0, NewColor(1, 128.0/255, 1.0/255))
	buf.Reset()
	test.That(t, Encode(&buf, c), test.ShouldBeNil)
	test.That(t, buf.String(), test.ShouldEqual, "P3\n2 1\n255\n255 128 1 0 0 0\n")

	err := Encode(failingWriter{}, c)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "disk full")

	err = Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	test.That(t, errors.Is(err, ErrZeroArea), test.ShouldBeTrue)
}
