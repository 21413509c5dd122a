package bytesize

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name  string `json:"name"`
	Input uint64 `json:"input"`
	SI    string `json:"si"`
	IEC   string `json:"iec"`
}

const goldenPath = "../data/golden/bytesize.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			if got := Bytes(tc.Input); got != tc.SI {
				t.Errorf("Bytes(%d) = %q, want %q", tc.Input, got, tc.SI)
			}
			if got := IBytes(tc.Input); got != tc.IEC {
				t.Errorf("IBytes(%d) = %q, want %q", tc.Input, got, tc.IEC)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	inputs := []struct {
		name  string
		value uint64
	}{
		{"zero", 0},
		{"one", 1},
		{"below si base", 999},
		{"si base", 1000},
		{"below iec base", 1023},
		{"iec base", 1024},
		{"kibi and a half", 1536},
		{"megabyte", 1000000},
		{"classic sample", 82854982},
		{"gibibyte", 1073741824},
		{"tebibyte", 1099511627776},
		{"max uint64", 18446744073709551615},
	}

	cases := make([]goldenCase, 0, len(inputs))
	for _, in := range inputs {
		in := in
		cases = append(cases, goldenCase{
			Name:  in.name,
			Input: in.value,
			SI:    Bytes(in.value),
			IEC:   IBytes(in.value),
		})
	}

	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden cases: %v", err)
	}
	if err := os.WriteFile(goldenPath, append(data, '\n'), 0o644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}
	t.Logf("wrote %d cases to %s", len(cases), goldenPath)
}
