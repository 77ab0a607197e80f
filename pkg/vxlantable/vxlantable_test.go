package vxlantable

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/henderiw/interval/pkg/intervaltable"
	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"
)

func TestNew(t *testing.T) {
	cases := map[string]struct {
		offset, max uint32
		expectedErr bool
	}{
		"Normal":   {offset: 10000, max: 10010},
		"TooLarge": {offset: 1, max: MaxVNI + 1, expectedErr: true},
		"Reversed": {offset: 20, max: 10, expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(tc.offset, tc.max)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClaim(t *testing.T) {
	r, err := New(10000, 10002)
	assert.NoError(t, err)

	assert.NoError(t, r.Claim(10001, labels.Set{"tenant": "a"}))
	assert.Error(t, r.Claim(10001, labels.Set{}))
	assert.Error(t, r.Claim(9999, labels.Set{}))
	assert.True(t, r.Has(10001))
	assert.False(t, r.IsFree(10001))

	for _, want := range []uint32{10000, 10002} {
		id, err := r.ClaimDynamic(labels.Set{})
		assert.NoError(t, err)
		assert.Equal(t, want, id)
	}
	_, err = r.FindFree()
	assert.True(t, errors.Is(err, intervaltable.ErrExhausted))
	assert.Equal(t, 3, r.Count())

	assert.NoError(t, r.Update(10001, labels.Set{"tenant": "b"}))
	e, err := r.Get(10001)
	assert.NoError(t, err)
	assert.Equal(t, "b", e.Labels()["tenant"])

	assert.NoError(t, r.Release(10001))
	id, err := r.FindFree()
	assert.NoError(t, err)
	assert.Equal(t, uint32(10001), id)
	assert.Equal(t, 2, len(r.GetAll()))
}

func TestClaimSize(t *testing.T) {
	r, err := New(10000, 10099)
	assert.NoError(t, err)
	assert.NoError(t, r.Claim(10005, labels.Set{}))

	iv, err := r.ClaimSize(10, labels.Set{"tenant": "a"})
	assert.NoError(t, err)
	assert.Equal(t, "[10006,10015]", iv.String())

	assert.True(t, r.Has(10010))
	e, err := r.Get(10010)
	assert.NoError(t, err)
	assert.Equal(t, "a", e.Labels()["tenant"])

	// the block is released as a whole, not per VNI
	assert.Error(t, r.Release(10010))
	assert.True(t, r.Has(10005))

	_, err = r.ClaimSize(100, labels.Set{})
	assert.True(t, errors.Is(err, intervaltable.ErrExhausted))
}
