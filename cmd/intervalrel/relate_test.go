package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/interval/pkg/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const genes = `intervals:
- name: a
  interval: "[1,10]"
- name: b
  interval: "[10,11]"
- name: c
  interval: "[1,11)"
`

func TestRelatePair(t *testing.T) {
	cases := map[string]struct {
		a, b        string
		expected    string
		expectedErr bool
	}{
		"Overlaps": {
			a:        "[1,10]",
			b:        "[10,11]",
			expected: "[1,10] overlaps-beginning-of [10,11]\n  overlaps\n",
		},
		"Meets": {
			a:        "[1,11)",
			b:        "[11,12)",
			expected: "[1,11) meets-beginning-of [11,12)\n  less-or-equal\n",
		},
		"During": {
			a:        "2-10",
			b:        "1-11",
			expected: "[2,10] during [1,11]\n  between, overlaps\n",
		},
		"Invalid": {
			a:           "[1,10]",
			b:           "[x,11]",
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := relatePair(&buf, interval.ParseInt[int64], tc.a, tc.b)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, buf.String()); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestRelateConfig(t *testing.T) {
	cfg, err := decodeConfig(strings.NewReader(genes))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, relateConfig(&buf, interval.ParseInt[int64], cfg, nil))
	expected := []string{
		"a overlaps-beginning-of b",
		"a equal c",
		"b overlaps-end-of a",
		"b overlaps-end-of c",
		"c equal a",
		"c overlaps-beginning-of b",
	}
	if diff := cmp.Diff(expected, strings.Split(strings.TrimSpace(buf.String()), "\n")); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}

	buf.Reset()
	rel := interval.Equal
	require.NoError(t, relateConfig(&buf, interval.ParseInt[int64], cfg, &rel))
	assert.Equal(t, "a equal c\nc equal a\n", buf.String())
}

func TestDecodeConfigErrors(t *testing.T) {
	cases := map[string]string{
		"NoName":       "intervals:\n- interval: \"[1,2]\"\n",
		"Duplicate":    "intervals:\n- name: a\n  interval: \"[1,2]\"\n- name: a\n  interval: \"[3,4]\"\n",
		"UnknownField": "intervals:\n- name: a\n  range: \"[1,2]\"\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decodeConfig(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranges.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`intervals:
- name: lan
  interval: 10.0.0.0/24
- name: dhcp
  interval: 10.0.0.100-10.0.0.200
`), 0o600))

	var buf bytes.Buffer
	require.NoError(t, run(&buf, interval.ParseAddr, path, "contains", nil))
	assert.Equal(t, "lan contains dhcp\n", buf.String())

	assert.Error(t, run(&buf, interval.ParseAddr, path, "inside", nil))
	assert.Error(t, run(&buf, interval.ParseAddr, filepath.Join(t.TempDir(), "missing.yaml"), "", nil))
}
