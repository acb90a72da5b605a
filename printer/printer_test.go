package printer

import (
	"reflect"
	"testing"
)

func TestLpArgs(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "defaults",
			opts: Options{},
			want: []string{"-o", "sides=one-sided", "-o", "print-color-mode=monochrome", "out.pdf"},
		},
		{
			name: "full job",
			opts: Options{Printer: "office", Duplex: true, Color: true, Copies: 3, Pages: "1-4,7"},
			want: []string{
				"-d", "office",
				"-n", "3",
				"-P", "1-4,7",
				"-o", "sides=two-sided-long-edge",
				"-o", "print-color-mode=color",
				"out.pdf",
			},
		},
		{
			name: "single copy omits count",
			opts: Options{Copies: 1},
			want: []string{"-o", "sides=one-sided", "-o", "print-color-mode=monochrome", "out.pdf"},
		},
		{
			name: "duplex monochrome",
			opts: Options{Duplex: true},
			want: []string{"-o", "sides=two-sided-long-edge", "-o", "print-color-mode=monochrome", "out.pdf"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := lpArgs("out.pdf", tc.opts)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("lpArgs() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLprArgs(t *testing.T) {
	got := lprArgs("out.pdf", Options{Printer: "office", Duplex: true, Copies: 2})
	want := []string{"-P", "office", "-#", "2", "-o", "sides=two-sided-long-edge", "out.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lprArgs() = %v, want %v", got, want)
	}

	got = lprArgs("out.pdf", Options{})
	want = []string{"out.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lprArgs() = %v, want %v", got, want)
	}
}
