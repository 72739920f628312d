package outerspace

import (
	"os"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const fixturesPath = "testdata/cases.json"

type fixture struct {
	Op     string `json:"op"`
	In     string `json:"in"`
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
	Out    string `json:"out"`
}

func loadFixtures(path string) ([]fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read fixtures")
	}

	var out []fixture
	if err := json.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "decode "+path)
	}

	return out, nil
}

func (f fixture) apply() (string, []byte, error) {
	in := []byte(f.In)
	switch f.Op {
	case "wrap":
		return WrapNonWhitespace(f.In, f.Prefix, f.Suffix),
			WrapNonWhitespaceBytes(in, []byte(f.Prefix), []byte(f.Suffix)), nil
	case "prefix":
		return PrefixNonWhitespace(f.In, f.Prefix), PrefixNonWhitespaceBytes(in, []byte(f.Prefix)), nil
	case "suffix":
		return SuffixNonWhitespace(f.In, f.Suffix), SuffixNonWhitespaceBytes(in, []byte(f.Suffix)), nil
	}

	return "", nil, errors.Errorf("unknown op %q", f.Op)
}

func (f fixture) check() error {
	got, gotBytes, err := f.apply()
	if err != nil {
		return err
	}

	if got != f.Out {
		return errors.Errorf("%s(%q): got %q, want %q", f.Op, f.In, got, f.Out)
	}

	if string(gotBytes) != f.Out {
		return errors.Errorf("%s bytes(%q): got %q, want %q", f.Op, f.In, gotBytes, f.Out)
	}

	return nil
}

func TestFixtures(t *testing.T) {
	cases, err := loadFixtures(fixturesPath)
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		require.NoError(t, c.check())
	}
}

func TestFixtureUnknownOp(t *testing.T) {
	err := fixture{Op: "center"}.check()
	require.Error(t, err)
	require.Contains(t, err.Error(), "center")
}
