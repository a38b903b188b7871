package request_test

import (
	"testing"

	"github.com/adamwoolhether/netcall/request"
)

func TestFileAttachment_Equal(t *testing.T) {
	bytes1 := []byte{1, 2, 3, 4}
	bytes2 := []byte{1, 2, 3, 4}

	testCases := map[string]struct {
		a, b request.FileAttachment
		exp  bool
	}{
		"distinctAllocationsSameBytes": {
			a:   request.FileAttachment{FileName: "f.bin", ContentType: "application/octet-stream", Content: bytes1},
			b:   request.FileAttachment{FileName: "f.bin", ContentType: "application/octet-stream", Content: bytes2},
			exp: true,
		},
		"differentBytes": {
			a:   request.FileAttachment{FileName: "f.bin", ContentType: "application/octet-stream", Content: []byte{1, 2, 3}},
			b:   request.FileAttachment{FileName: "f.bin", ContentType: "application/octet-stream", Content: []byte{1, 2, 4}},
			exp: false,
		},
		"sameSizeDifferentBytes": {
			a:   request.FileAttachment{FileName: "f.bin", ContentType: "text/plain", Content: []byte("abc")},
			b:   request.FileAttachment{FileName: "f.bin", ContentType: "text/plain", Content: []byte("abd")},
			exp: false,
		},
		"differentName": {
			a:   request.FileAttachment{FileName: "a.txt", ContentType: "text/plain", Content: []byte("x")},
			b:   request.FileAttachment{FileName: "b.txt", ContentType: "text/plain", Content: []byte("x")},
			exp: false,
		},
		"differentContentType": {
			a:   request.FileAttachment{FileName: "a", ContentType: "text/plain", Content: []byte("x")},
			b:   request.FileAttachment{FileName: "a", ContentType: "text/html", Content: []byte("x")},
			exp: false,
		},
		"emptyAndNilContent": {
			a:   request.FileAttachment{FileName: "a", ContentType: "text/plain", Content: nil},
			b:   request.FileAttachment{FileName: "a", ContentType: "text/plain", Content: []byte{}},
			exp: true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.exp {
				t.Errorf("exp Equal %v, got %v", tc.exp, got)
			}
			if got := tc.b.Equal(tc.a); got != tc.exp {
				t.Errorf("exp symmetric Equal %v, got %v", tc.exp, got)
			}
			if tc.exp && tc.a.Hash() != tc.b.Hash() {
				t.Errorf("equal attachments hashed differently: %d != %d", tc.a.Hash(), tc.b.Hash())
			}
		})
	}
}

func TestFileAttachment_HashSeparatesFields(t *testing.T) {
	a := request.FileAttachment{FileName: "ab", ContentType: "c"}
	b := request.FileAttachment{FileName: "a", ContentType: "bc"}

	if a.Hash() == b.Hash() {
		t.Error("exp different hashes for shifted field boundaries")
	}
}

func TestNewFileAttachment_CopiesContent(t *testing.T) {
	content := []byte("data")
	f := request.NewFileAttachment("d.txt", "text/plain", content)

	content[0] = 'X'

	if string(f.Content) != "data" {
		t.Errorf("exp copied content, got %q", f.Content)
	}
	if f.Size() != 4 {
		t.Errorf("exp size 4, got %d", f.Size())
	}
}

func TestMethods(t *testing.T) {
	exp := []string{"GET", "POST", "PUT", "PATCH", "DELETE"}
	got := request.Methods()

	if len(got) != len(exp) {
		t.Fatalf("exp %d methods, got %d", len(exp), len(got))
	}
	for i, m := range got {
		if m.String() != exp[i] {
			t.Errorf("exp method %q at %d, got %q", exp[i], i, m)
		}
	}
}
