/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package handle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/facet"
	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/handle"
	"dirpx.dev/facet/ref"
)

type blob struct {
	ref.Copyable
	data      []byte
	destroyed *int
}

var (
	blobFacet = facet.MustRegister[*blob](apis.NewFacet("handletest.blob"))
	blobChain = ref.CopyChain(blobFacet)
)

func newBlob(data []byte, destroyed *int) *blob {
	b := &blob{data: append([]byte(nil), data...), destroyed: destroyed}
	b.InitCopyable(b, blobChain, func() (apis.Ref, error) {
		return newBlob(b.data, b.destroyed), nil
	}, ref.WithDestroy(func() {
		if b.destroyed != nil {
			*b.destroyed++
		}
	}))
	return b
}

func TestAdopt_NoIncrement(t *testing.T) {
	b := newBlob([]byte("x"), nil)
	h := handle.Adopt(b)
	assert.True(t, h.Valid())
	assert.Equal(t, uint64(1), h.Count())
	assert.Same(t, b, h.Get())
}

func TestAdopt_Nil(t *testing.T) {
	h := handle.Adopt[*blob](nil)
	assert.False(t, h.Valid())
	assert.Zero(t, h.Count())
	assert.NotPanics(t, h.Close)
}

func TestCopies_IncrementAndRestore(t *testing.T) {
	destroyed := 0
	h := handle.Adopt(newBlob([]byte("x"), &destroyed))
	defer h.Close()

	const n = 5
	copies := make([]*handle.Handle[*blob], n)
	for i := range copies {
		copies[i] = h.Clone()
		assert.Equal(t, uint64(i+2), h.Count())
	}
	for _, c := range copies {
		c.Close()
	}
	assert.Equal(t, uint64(1), h.Count())
	assert.Zero(t, destroyed)

	s := handle.Share(h.Get())
	assert.Equal(t, uint64(2), h.Count())
	s.Close()
	s.Close()
	assert.Equal(t, uint64(1), h.Count())
}

func TestMove_TransfersWithoutCountChange(t *testing.T) {
	b := newBlob([]byte("x"), nil)
	src := handle.Adopt(b)
	before := b.Count()

	dst := src.Move()
	assert.False(t, src.Valid())
	assert.Nil(t, src.Get())
	assert.Same(t, b, dst.Get())
	assert.Equal(t, before, b.Count())
	dst.Close()
}

func TestClose_DestroysLastOwner(t *testing.T) {
	destroyed := 0
	h := handle.Adopt(newBlob([]byte("x"), &destroyed))
	h.Close()
	assert.Equal(t, 1, destroyed)
	h.Close()
	assert.Equal(t, 1, destroyed)
}

func TestReset_ReleasesPrevious(t *testing.T) {
	d1, d2 := 0, 0
	h := handle.Adopt(newBlob([]byte("a"), &d1))
	h.Reset(newBlob([]byte("b"), &d2))
	assert.Equal(t, 1, d1)
	assert.Zero(t, d2)
	assert.Equal(t, []byte("b"), h.Get().data)
	h.Close()
	assert.Equal(t, 1, d2)
}

func TestAssign(t *testing.T) {
	d1, d2 := 0, 0
	a := handle.Adopt(newBlob([]byte("a"), &d1))
	b := handle.Adopt(newBlob([]byte("b"), &d2))

	a.Assign(b)
	assert.Equal(t, 1, d1, "previous object released")
	assert.True(t, a.Equal(b))
	assert.Equal(t, uint64(2), b.Count())

	// Same object: no-op.
	a.Assign(b)
	a.Assign(a)
	assert.Equal(t, uint64(2), b.Count())

	// Null source clears.
	a.Assign(handle.Adopt[*blob](nil))
	assert.False(t, a.Valid())
	assert.Equal(t, uint64(1), b.Count())
	b.Close()
	assert.Equal(t, 1, d2)
}

func TestTake(t *testing.T) {
	d1, d2 := 0, 0
	a := handle.Adopt(newBlob([]byte("a"), &d1))
	b := handle.Adopt(newBlob([]byte("b"), &d2))
	raw := b.Get()

	a.Take(b)
	assert.Equal(t, 1, d1)
	assert.False(t, b.Valid())
	assert.Same(t, raw, a.Get())
	assert.Equal(t, uint64(1), raw.Count())

	// Two owners of one object collapse into one.
	c := a.Clone()
	a.Take(c)
	assert.Equal(t, uint64(1), raw.Count())
	assert.False(t, c.Valid())
	a.Close()
	assert.Equal(t, 1, d2)
}

func TestQuery_Narrowing(t *testing.T) {
	b := newBlob([]byte("x"), nil)
	src := handle.Adopt(b)
	defer src.Close()

	base := &handle.Handle[apis.Ref]{}
	require.True(t, handle.Query(base, src, apis.MatchPointer))
	assert.True(t, handle.Same(base, src))
	assert.Equal(t, uint64(2), b.Count())

	back := &handle.Handle[*blob]{}
	require.True(t, handle.Query(back, base, apis.MatchName))
	assert.Same(t, b, back.Get())
	assert.Equal(t, uint64(3), b.Count())

	base.Close()
	back.Close()
	assert.Equal(t, uint64(1), b.Count())
}

func TestQuery_FailureLeavesDstNull(t *testing.T) {
	src := handle.Adopt(ref.New())
	defer src.Close()

	dst := handle.Share(newBlob([]byte("old"), nil))
	old := dst.Get()
	assert.False(t, handle.Query(dst, src, apis.MatchPointer))
	assert.False(t, dst.Valid())
	assert.Equal(t, uint64(1), old.Count(), "dst released its previous object")
	old.Dec()

	assert.False(t, handle.Query(dst, &handle.Handle[*ref.Object]{}, apis.MatchPointer))
}

func TestCopy_DeepCopies(t *testing.T) {
	b := newBlob([]byte("hello"), nil)
	src := handle.Adopt(b)
	defer src.Close()

	dst := &handle.Handle[*blob]{}
	require.True(t, handle.Copy(dst, src, apis.MatchName))
	defer dst.Close()

	assert.False(t, handle.Same(dst, src))
	assert.Equal(t, b.data, dst.Get().data)
	dst.Get().data[0] = 'j'
	assert.Equal(t, []byte("hello"), b.data)
	assert.Equal(t, uint64(1), b.Count())
	assert.Equal(t, uint64(1), dst.Count())
}

func TestQueryAndCopy_DefaultMode(t *testing.T) {
	b := newBlob([]byte("x"), nil)
	src := handle.Adopt(b)
	defer src.Close()

	q := &handle.Handle[*blob]{}
	require.True(t, handle.Query(q, src, apis.MatchDefault))
	assert.Same(t, b, q.Get())
	q.Close()

	c := &handle.Handle[*blob]{}
	require.True(t, handle.Copy(c, src, apis.MatchDefault))
	defer c.Close()
	assert.False(t, handle.Same(c, src))
	assert.Equal(t, uint64(1), b.Count())
}

func TestCopy_NotCopyable(t *testing.T) {
	src := handle.Adopt(ref.New())
	defer src.Close()

	dst := &handle.Handle[apis.Ref]{}
	assert.False(t, handle.Copy(dst, src, apis.MatchPointer))
	assert.False(t, dst.Valid())
}

func TestSame_NullHandles(t *testing.T) {
	var a, b handle.Handle[*blob]
	assert.True(t, handle.Same(&a, &b))
	c := handle.Adopt(newBlob(nil, nil))
	defer c.Close()
	assert.False(t, a.Equal(c))
}
