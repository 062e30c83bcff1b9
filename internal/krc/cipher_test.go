package krc

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

func TestDeobfuscate_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 1000} {
		in := make([]byte, n)
		for i := range in {
			in[i] = byte(rng.UintN(256))
		}

		out := Deobfuscate(Deobfuscate(in))
		if !bytes.Equal(out, in) {
			t.Errorf("len %d: double Deobfuscate did not return the input", n)
		}
	}
}

func TestDeobfuscate_KnownBytes(t *testing.T) {
	// Zero bytes expose the key itself.
	got := Deobfuscate(make([]byte, 18))

	want := []byte{
		'@', 'G', 'a', 'w', '^', '2', 't', 'G',
		'Q', '6', '1', '-', 0xce, 0xd2, 'n', 'i',
		'@', 'G',
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Deobfuscate(zeros) = % x, want % x", got, want)
	}
}

func TestDeobfuscate_DoesNotModifyInput(t *testing.T) {
	in := []byte{1, 2, 3}
	_ = Deobfuscate(in)
	if !bytes.Equal(in, []byte{1, 2, 3}) {
		t.Errorf("input modified: %v", in)
	}
}

func TestDeobfuscate_Empty(t *testing.T) {
	if got := Deobfuscate(nil); len(got) != 0 {
		t.Errorf("Deobfuscate(nil) = %v, want empty", got)
	}
}
