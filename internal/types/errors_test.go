package types

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestCodecError_Is(t *testing.T) {
	err := &CodecError{Kind: DecompressionFailed, Path: "a.krc", Err: io.ErrUnexpectedEOF}

	if !errors.Is(err, ErrDecompressionFailed) {
		t.Error("errors.Is(err, ErrDecompressionFailed) = false")
	}
	if errors.Is(err, ErrTranslationParseFailed) {
		t.Error("errors.Is(err, ErrTranslationParseFailed) = true for decompression error")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("cause not reachable through errors.Is")
	}

	msg := err.Error()
	for _, want := range []string{"a.krc", "decompression failed", "unexpected EOF"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q should contain %q", msg, want)
		}
	}
}

func TestCodecError_TranslationKind(t *testing.T) {
	err := error(&CodecError{Kind: TranslationParseFailed})

	if !errors.Is(err, ErrTranslationParseFailed) {
		t.Error("errors.Is(err, ErrTranslationParseFailed) = false")
	}
	if err.Error() != "translation parse failed" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestLineParseError(t *testing.T) {
	cause := errors.New("boom")
	err := &LineParseError{Line: 7, Reason: "bad timing", Err: cause}

	if !strings.Contains(err.Error(), "line 7") || !strings.Contains(err.Error(), "bad timing") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap did not expose the cause")
	}

	bare := &LineParseError{Line: 2, Reason: "no closing bracket"}
	if bare.Error() != "line 2: no closing bracket" {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestWarning_String(t *testing.T) {
	w := Warning{Stage: "line", Message: "dropped", Line: 3}
	if w.String() != "line (at line 3): dropped" {
		t.Errorf("String() = %q", w.String())
	}

	w = Warning{Stage: "translation", Message: "bad json"}
	if w.String() != "translation: bad json" {
		t.Errorf("String() = %q", w.String())
	}
}

func TestUnsupportedFormatError(t *testing.T) {
	err := &UnsupportedFormatError{Path: "x.lrc", Reason: "unsupported file format"}
	msg := err.Error()
	if !strings.Contains(msg, "x.lrc") || !strings.Contains(msg, "unsupported format") {
		t.Errorf("Error() = %q", msg)
	}
}
